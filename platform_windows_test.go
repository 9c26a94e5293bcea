//go:build windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/sys/windows"
)

func TestIsSharedLibraryNameNative(t *testing.T) {
	assert.True(t, IsSharedLibraryName("foo.dll"))
	assert.True(t, IsSharedLibraryName(`C:\Windows\System32\foo.dll`))

	assert.False(t, IsSharedLibraryName("foo.so"))
	assert.False(t, IsSharedLibraryName("foo.dylib"))
}

func TestFiletimeDurationNanos(t *testing.T) {
	assert.Equal(t, uint64(0), filetimeDurationNanos(windows.Filetime{}))

	// One second of CPU time in 100ns units.
	assert.Equal(t, uint64(1000000000), filetimeDurationNanos(windows.Filetime{LowDateTime: 10000000}))

	// Durations crossing the 32-bit boundary must not wrap.
	assert.Equal(t, uint64(1<<32)*100, filetimeDurationNanos(windows.Filetime{HighDateTime: 1}))

	two := filetimeDurationNanos(windows.Filetime{LowDateTime: 20000000})
	one := filetimeDurationNanos(windows.Filetime{LowDateTime: 10000000})
	assert.Greater(t, two, one)
}

func TestGetWorkingDirectoryOfProcessUnavailable(t *testing.T) {
	// Not exposed on Windows, absence is signaled by an empty result.
	assert.Empty(t, GetWorkingDirectoryOfProcess(1))
}
