//go:build linux

package platform

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSharedLibraryNameNative(t *testing.T) {
	assert.True(t, IsSharedLibraryName("foo.so"))
	assert.True(t, IsSharedLibraryName("/usr/lib/libfoo.so"))

	assert.False(t, IsSharedLibraryName("foo.dylib"))
	assert.False(t, IsSharedLibraryName("foo.dll"))
}

func TestGetPeerProcessIDOfChild(t *testing.T) {
	dir, err := os.MkdirTemp("", "platform-test-")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(dir) }()

	sock := filepath.Join(dir, "sock")

	// Re-execute the test binary so the listening end of the socket is
	// held by a different process than ours.
	child := exec.Command(os.Args[0], "-test.run=TestHelperSocketListener", "--", sock)
	child.Env = append(os.Environ(), "PLATFORM_TEST_HELPER=listener")
	require.NoError(t, child.Start())
	defer func() {
		_ = child.Process.Kill()
		_ = child.Wait()
	}()

	var conn *net.UnixConn
	require.Eventually(t, func() bool {
		c, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: sock, Net: "unix"})
		if err != nil {
			return false
		}

		conn = c
		return true
	}, 5*time.Second, 10*time.Millisecond)
	defer func() { _ = conn.Close() }()

	assert.Equal(t, int32(child.Process.Pid), GetPeerProcessID(conn))
}

// TestHelperSocketListener is not a test. It is re-executed by
// TestGetPeerProcessIDOfChild to listen on a Unix socket from a child
// process.
func TestHelperSocketListener(t *testing.T) {
	if os.Getenv("PLATFORM_TEST_HELPER") != "listener" {
		return
	}

	listener, err := net.Listen("unix", os.Args[len(os.Args)-1])
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = listener.Close() }()

	conn, err := listener.Accept()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Hold the connection open until the parent kills us.
	time.Sleep(time.Minute)
}
