//go:build linux

package platform

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"

	"github.com/anvil-build/platform/logger"
)

const sharedLibrarySuffix = ".so"

// Network filesystem magic numbers (linux/magic.h).
const (
	superMagicNfs  = 0x6969
	superMagicSmb  = 0x517b
	superMagicCifs = 0xff534d42
	superMagicCoda = 0x73757245
)

func warnFilesystemType(outputBase string) {
	var st unix.Statfs_t

	err := unix.Statfs(outputBase, &st)
	if err != nil {
		return
	}

	switch uint32(st.Type) {
	case superMagicNfs, superMagicSmb, superMagicCifs, superMagicCoda:
		logger.Warnf("Output base %q is on a network filesystem, build results may be unreliable", outputBase)
	}
}

func peerProcessID(conn *net.UnixConn) (int32, error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return 0, err
	}

	var cred *unix.Ucred
	var credErr error
	err = rawConn.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	})
	if err != nil {
		return 0, err
	}

	if credErr != nil {
		return 0, credErr
	}

	return cred.Pid, nil
}

func selfExecutablePath() (string, error) {
	path, err := os.Readlink("/proc/self/exe")
	if err != nil {
		return "", fmt.Errorf("error reading /proc/self/exe: %w", err)
	}

	return path, nil
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
		// Kernel without per-process accounting.
		return monotonicClockNanos()
	}

	return uint64(ts.Nano()), nil
}

// IO priority constants from linux/ioprio.h, which has no wrapper in
// x/sys/unix.
const (
	ioprioWhoProcess = 1
	ioprioClassBE    = 2
	ioprioClassShift = 13
)

func setSchedulingHints(batchCPU bool, ioNiceLevel int) {
	if batchCPU {
		attr := unix.SchedAttr{
			Size:   unix.SizeofSchedAttr,
			Policy: unix.SCHED_BATCH,
		}

		err := unix.SchedSetAttr(0, &attr, 0)
		if err != nil {
			logger.Debugf("Unable to switch to batch scheduling: %v", err)
		}
	}

	if ioNiceLevel >= 0 {
		level := ioNiceLevel
		if level > 7 {
			level = 7
		}

		_, _, errno := unix.Syscall(unix.SYS_IOPRIO_SET, ioprioWhoProcess, 0, uintptr(ioprioClassBE<<ioprioClassShift|level))
		if errno != 0 {
			logger.Debugf("Unable to lower IO priority: %v", errno)
		}
	}
}

func processWorkingDirectory(pid int32) string {
	cwd, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", pid))
	if err != nil {
		return ""
	}

	return cwd
}
