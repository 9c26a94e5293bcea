//go:build windows

package platform

import (
	"errors"
	"net"

	"golang.org/x/sys/windows"

	"github.com/anvil-build/platform/logger"
)

const sharedLibrarySuffix = ".dll"

func warnFilesystemType(outputBase string) {
	// No known-problematic filesystem to detect here.
}

func peerProcessID(conn *net.UnixConn) (int32, error) {
	return 0, errors.New("socket peer identity is not available on Windows")
}

func selfExecutablePath() (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", err
		}

		// A full buffer means the path was truncated.
		if int(n) < len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}

		buf = make([]uint16, len(buf)*2)
	}
}

func monotonicClockNanos() (uint64, error) {
	freq := windows.QueryPerformanceFrequency()
	if freq == 0 {
		return 0, errors.New("QueryPerformanceFrequency returned zero")
	}

	counter := windows.QueryPerformanceCounter()

	// Split the conversion to avoid overflowing on large counter values.
	const nsPerSec = 1000000000
	return uint64(counter/freq)*nsPerSec + uint64(counter%freq)*nsPerSec/uint64(freq), nil
}

func processClockNanos() (uint64, error) {
	var creation, exit, kernel, user windows.Filetime

	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		// Fall back when per-process accounting is unavailable.
		return monotonicClockNanos()
	}

	return filetimeDurationNanos(kernel) + filetimeDurationNanos(user), nil
}

// filetimeDurationNanos converts a Filetime carrying a duration in 100ns
// units. Filetime.Nanoseconds() is unusable for these: it subtracts the
// 1601 epoch offset, which only makes sense for absolute timestamps, and
// overflows on anything else.
func filetimeDurationNanos(ft windows.Filetime) uint64 {
	return (uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)) * 100
}

// Background mode lowers both CPU and IO priority (processthreadsapi.h).
const processModeBackgroundBegin = 0x00100000

func setSchedulingHints(batchCPU bool, ioNiceLevel int) {
	if batchCPU {
		err := windows.SetPriorityClass(windows.CurrentProcess(), windows.BELOW_NORMAL_PRIORITY_CLASS)
		if err != nil {
			logger.Debugf("Unable to lower the process priority class: %v", err)
		}
	}

	if ioNiceLevel >= 0 {
		err := windows.SetPriorityClass(windows.CurrentProcess(), processModeBackgroundBegin)
		if err != nil {
			logger.Debugf("Unable to enter background processing mode: %v", err)
		}
	}
}

func processWorkingDirectory(pid int32) string {
	// Another process's working directory lives in its PEB and isn't
	// worth an NtQueryInformationProcess round trip for a best-effort
	// query.
	return ""
}
