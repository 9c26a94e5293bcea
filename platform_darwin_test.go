//go:build darwin

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSharedLibraryNameNative(t *testing.T) {
	assert.True(t, IsSharedLibraryName("foo.dylib"))
	assert.True(t, IsSharedLibraryName("/usr/lib/libfoo.dylib"))

	assert.False(t, IsSharedLibraryName("foo.so"))
	assert.False(t, IsSharedLibraryName("foo.dll"))
}
