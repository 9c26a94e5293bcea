//go:build darwin

package platform

/*
#include <libproc.h>
#include <stdint.h>
#include <sys/proc_info.h>
*/
import "C"

import (
	"fmt"
	"net"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/anvil-build/platform/logger"
)

const sharedLibrarySuffix = ".dylib"

func warnFilesystemType(outputBase string) {
	var st unix.Statfs_t

	err := unix.Statfs(outputBase, &st)
	if err != nil {
		return
	}

	switch unix.ByteSliceToString(st.Fstypename[:]) {
	case "nfs", "smbfs", "webdav":
		logger.Warnf("Output base %q is on a network filesystem, build results may be unreliable", outputBase)
	}
}

func peerProcessID(conn *net.UnixConn) (int32, error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return 0, err
	}

	var pid int
	var sockErr error
	err = rawConn.Control(func(fd uintptr) {
		pid, sockErr = unix.GetsockoptInt(int(fd), unix.SOL_LOCAL, unix.LOCAL_PEERPID)
	})
	if err != nil {
		return 0, err
	}

	if sockErr != nil {
		return 0, sockErr
	}

	return int32(pid), nil
}

func selfExecutablePath() (string, error) {
	buf := make([]byte, C.PROC_PIDPATHINFO_MAXSIZE)

	n := C.proc_pidpath(C.int(unix.Getpid()), unsafe.Pointer(&buf[0]), C.uint32_t(len(buf)))
	if n <= 0 {
		return "", fmt.Errorf("error calling proc_pidpath")
	}

	return string(buf[:n]), nil
}

func monotonicClockNanos() (uint64, error) {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if err != nil {
		return 0, err
	}

	return uint64(ts.Nano()), nil
}

func processClockNanos() (uint64, error) {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts)
	if err != nil {
		// Fall back when per-process accounting is unavailable.
		return monotonicClockNanos()
	}

	return uint64(ts.Nano()), nil
}

func setSchedulingHints(batchCPU bool, ioNiceLevel int) {
	// Darwin has no batch scheduling class to opt into.
}

func processWorkingDirectory(pid int32) string {
	var info C.struct_proc_vnodepathinfo

	n := C.proc_pidinfo(C.int(pid), C.PROC_PIDVNODEPATHINFO, 0, unsafe.Pointer(&info), C.int(C.sizeof_struct_proc_vnodepathinfo))
	if n != C.sizeof_struct_proc_vnodepathinfo {
		return ""
	}

	return C.GoString(&info.pvi_cdir.vip_path[0])
}
