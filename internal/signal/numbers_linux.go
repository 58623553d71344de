//go:build linux && (amd64 || 386 || arm || arm64)

package signal

import "golang.org/x/sys/unix"

// SIGEMT and SIGLOST have no number on Linux.
var numbers = map[string]int{
	"SIGABRT":   int(unix.SIGABRT),
	"SIGALRM":   int(unix.SIGALRM),
	"SIGBUS":    int(unix.SIGBUS),
	"SIGCHLD":   int(unix.SIGCHLD),
	"SIGCLD":    int(unix.SIGCHLD),
	"SIGCONT":   int(unix.SIGCONT),
	"SIGFPE":    int(unix.SIGFPE),
	"SIGHUP":    int(unix.SIGHUP),
	"SIGILL":    int(unix.SIGILL),
	"SIGINFO":   int(unix.SIGPWR),
	"SIGINT":    int(unix.SIGINT),
	"SIGIO":     int(unix.SIGIO),
	"SIGIOT":    int(unix.SIGIOT),
	"SIGKILL":   int(unix.SIGKILL),
	"SIGPIPE":   int(unix.SIGPIPE),
	"SIGPOLL":   int(unix.SIGPOLL),
	"SIGPROF":   int(unix.SIGPROF),
	"SIGPWR":    int(unix.SIGPWR),
	"SIGQUIT":   int(unix.SIGQUIT),
	"SIGSEGV":   int(unix.SIGSEGV),
	"SIGSTKFLT": int(unix.SIGSTKFLT),
	"SIGSTOP":   int(unix.SIGSTOP),
	"SIGTSTP":   int(unix.SIGTSTP),
	"SIGSYS":    int(unix.SIGSYS),
	"SIGTERM":   int(unix.SIGTERM),
	"SIGTRAP":   int(unix.SIGTRAP),
	"SIGTTIN":   int(unix.SIGTTIN),
	"SIGTTOU":   int(unix.SIGTTOU),
	"SIGUNUSED": int(unix.SIGSYS),
	"SIGURG":    int(unix.SIGURG),
	"SIGUSR1":   int(unix.SIGUSR1),
	"SIGUSR2":   int(unix.SIGUSR2),
	"SIGVTALRM": int(unix.SIGVTALRM),
	"SIGXCPU":   int(unix.SIGXCPU),
	"SIGXFSZ":   int(unix.SIGXFSZ),
	"SIGWINCH":  int(unix.SIGWINCH),
}
