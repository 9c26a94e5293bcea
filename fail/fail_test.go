package fail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalErr(t *testing.T) {
	var buf bytes.Buffer
	var code int

	oldOut := out
	oldExit := exit
	out = &buf
	exit = func(c int) { code = c }
	defer func() {
		out = oldOut
		exit = oldExit
	}()

	FatalErr(LocalEnvironmentalError, errors.New("permission denied"), "can't get server pid from connection")
	assert.Equal(t, 36, code)
	assert.Equal(t, "Error: can't get server pid from connection: permission denied\n", buf.String())

	buf.Reset()
	FatalErr(InternalError, nil, "error reading the monotonic clock")
	assert.Equal(t, 37, code)
	assert.Equal(t, "Error: error reading the monotonic clock\n", buf.String())
}

func TestFatalf(t *testing.T) {
	var buf bytes.Buffer
	var code int

	oldOut := out
	oldExit := exit
	out = &buf
	exit = func(c int) { code = c }
	defer func() {
		out = oldOut
		exit = oldExit
	}()

	Fatalf(InternalError, "error calling %s", "proc_pidpath")
	assert.Equal(t, 37, code)
	assert.Equal(t, "Error: error calling proc_pidpath\n", buf.String())
}
