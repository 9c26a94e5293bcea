// Package platform exposes the handful of operating system facts and
// actions the launcher needs, implemented once per supported operating
// system and selected at build time.
//
// Every function here is a one-shot wrapper around a single OS call: no
// retries, no internal state, no retained handles. Calls are safe from
// multiple goroutines without coordination. Primitives whose failure the
// launcher cannot recover from (resolving our own path, reading the
// clock, identifying the server at the other end of the socket) terminate
// the process through the fail package; primitives whose failure is an
// expected, harmless possibility degrade to a no-op or an empty result.
package platform

import (
	"net"
	"strings"

	"github.com/anvil-build/platform/fail"
)

// WarnIfProblematicFilesystem emits a diagnostic warning when outputBase
// sits on a filesystem known to cause correctness problems, such as a
// network filesystem. It never fails; paths that cannot be inspected
// simply produce no warning.
func WarnIfProblematicFilesystem(outputBase string) {
	warnFilesystemType(outputBase)
}

// GetPeerProcessID returns the process id of the process holding the
// remote end of conn. Terminates the process when the OS cannot report
// peer identity.
func GetPeerProcessID(conn *net.UnixConn) int32 {
	pid, err := peerProcessID(conn)
	if err != nil {
		fail.FatalErr(fail.LocalEnvironmentalError, err, "can't get server pid from connection")
	}

	return pid
}

// GetSelfExecutablePath returns the absolute path to the currently
// running executable. Terminates the process when the OS cannot resolve
// it.
func GetSelfExecutablePath() string {
	path, err := selfExecutablePath()
	if err != nil {
		fail.FatalErr(fail.InternalError, err, "unable to determine the location of this binary")
	}

	return path
}

// MonotonicClockNanos returns a nanosecond timestamp from a clock that
// never runs backward within the process lifetime. The epoch is
// arbitrary; only differences between two readings are meaningful.
// Terminates the process when the OS clock query fails.
func MonotonicClockNanos() uint64 {
	ns, err := monotonicClockNanos()
	if err != nil {
		fail.FatalErr(fail.InternalError, err, "error reading the monotonic clock")
	}

	return ns
}

// ProcessClockNanos returns the nanoseconds of execution time attributed
// to the calling process. Falls back to the monotonic clock on operating
// systems without per-process accounting. Terminates the process when the
// OS clock query fails.
func ProcessClockNanos() uint64 {
	ns, err := processClockNanos()
	if err != nil {
		fail.FatalErr(fail.InternalError, err, "error reading the process clock")
	}

	return ns
}

// SetSchedulingHints asks the OS scheduler to treat the calling process
// as a low priority batch workload. batchCPU requests the batch CPU
// scheduling class and ioNiceLevel, when non-negative, lowers the IO
// priority. Both are advisory: the call silently no-ops on operating
// systems without such controls and never fails.
func SetSchedulingHints(batchCPU bool, ioNiceLevel int) {
	setSchedulingHints(batchCPU, ioNiceLevel)
}

// GetWorkingDirectoryOfProcess returns the current working directory of
// the process with the given id, or "" when the OS cannot report it.
// Absence is not an error: the target may have exited, be owned by
// another user, or the OS may simply not expose this.
func GetWorkingDirectoryOfProcess(pid int32) string {
	return processWorkingDirectory(pid)
}

// IsSharedLibraryName reports whether filename carries the native shared
// library suffix of the running operating system.
func IsSharedLibraryName(filename string) bool {
	return strings.HasSuffix(filename, sharedLibrarySuffix)
}
