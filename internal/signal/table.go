package signal

import "lookup/internal/lookup"

// Descriptions follow the Linux man-pages 6.01 signal(7) wording.
var entries = []lookup.Entry{
	{Name: "SIGABRT", Description: "Abort signal from abort(3)"},
	{Name: "SIGALRM", Description: "Timer signal from alarm(2)"},
	{Name: "SIGBUS", Description: "Bus error (bad memory access)"},
	{Name: "SIGCHLD", Description: "Child stopped or terminated"},
	{Name: "SIGCLD", Alias: true, Description: "A synonym for SIGCHLD"},
	{Name: "SIGCONT", Description: "Continue if stopped"},
	{Name: "SIGEMT", Description: "Emulator trap"},
	{Name: "SIGFPE", Description: "Floating-point exception"},
	{Name: "SIGHUP", Description: "Hangup detected on controlling terminal or death of controlling process"},
	{Name: "SIGILL", Description: "Illegal Instruction"},
	{Name: "SIGINFO", Alias: true, Description: "A synonym for SIGPWR"},
	{Name: "SIGINT", Description: "Interrupt from keyboard"},
	{Name: "SIGIO", Description: "I/O now possible (4.2BSD)"},
	{Name: "SIGIOT", Alias: true, Description: "IOT trap. A synonym for SIGABRT"},
	{Name: "SIGKILL", Description: "Kill signal"},
	{Name: "SIGLOST", Description: "File lock lost (unused)"},
	{Name: "SIGPIPE", Description: "Broken pipe: write to pipe with no readers; see pipe(7)"},
	{Name: "SIGPOLL", Alias: true, Description: "Pollable event (Sys V); synonym for SIGIO"},
	{Name: "SIGPROF", Description: "Profiling timer expired"},
	{Name: "SIGPWR", Description: "Power failure (System V)"},
	{Name: "SIGQUIT", Description: "Quit from keyboard"},
	{Name: "SIGSEGV", Description: "Invalid memory reference"},
	{Name: "SIGSTKFLT", Description: "Stack fault on coprocessor (unused)"},
	{Name: "SIGSTOP", Description: "Stop process"},
	{Name: "SIGTSTP", Description: "Stop typed at terminal"},
	{Name: "SIGSYS", Description: "Bad system call (SVr4); see also seccomp(2)"},
	{Name: "SIGTERM", Description: "Termination signal"},
	{Name: "SIGTRAP", Description: "Trace/breakpoint trap"},
	{Name: "SIGTTIN", Description: "Terminal input for background process"},
	{Name: "SIGTTOU", Description: "Terminal output for background process"},
	{Name: "SIGUNUSED", Alias: true, Description: "Synonymous with SIGSYS"},
	{Name: "SIGURG", Description: "Urgent condition on socket (4.2BSD)"},
	{Name: "SIGUSR1", Description: "User-defined signal 1"},
	{Name: "SIGUSR2", Description: "User-defined signal 2"},
	{Name: "SIGVTALRM", Description: "Virtual alarm clock (4.2BSD)"},
	{Name: "SIGXCPU", Description: "CPU time limit exceeded (4.2BSD); see setrlimit(2)"},
	{Name: "SIGXFSZ", Description: "File size limit exceeded (4.2BSD); see setrlimit(2)"},
	{Name: "SIGWINCH", Description: "Window resize signal (4.3BSD, Sun)"},
}
