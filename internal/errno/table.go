package errno

import "lookup/internal/lookup"

// Descriptions follow the Linux man-pages 6.01 errno(3) wording.
var entries = []lookup.Entry{
	{Name: "E2BIG", Description: "Argument list too long (POSIX.1-2001)."},
	{Name: "EACCES", Description: "Permission denied (POSIX.1-2001)."},
	{Name: "EADDRINUSE", Description: "Address already in use (POSIX.1-2001)."},
	{Name: "EADDRNOTAVAIL", Description: "Address not available (POSIX.1-2001)."},
	{Name: "EAFNOSUPPORT", Description: "Address family not supported (POSIX.1-2001)."},
	{Name: "EAGAIN", Description: "Resource temporarily unavailable (may be the same value as EWOULDBLOCK) (POSIX.1-2001)."},
	{Name: "EALREADY", Description: "Connection already in progress (POSIX.1-2001)."},
	{Name: "EBADE", Description: "Invalid exchange."},
	{Name: "EBADF", Description: "Bad file descriptor (POSIX.1-2001)."},
	{Name: "EBADFD", Description: "File descriptor in bad state."},
	{Name: "EBADMSG", Description: "Bad message (POSIX.1-2001)."},
	{Name: "EBADR", Description: "Invalid request descriptor."},
	{Name: "EBADRQC", Description: "Invalid request code."},
	{Name: "EBADSLT", Description: "Invalid slot."},
	{Name: "EBUSY", Description: "Device or resource busy (POSIX.1-2001)."},
	{Name: "ECANCELED", Description: "Operation canceled (POSIX.1-2001)."},
	{Name: "ECHILD", Description: "No child processes (POSIX.1-2001)."},
	{Name: "ECHRNG", Description: "Channel number out of range."},
	{Name: "ECOMM", Description: "Communication error on send."},
	{Name: "ECONNABORTED", Description: "Connection aborted (POSIX.1-2001)."},
	{Name: "ECONNREFUSED", Description: "Connection refused (POSIX.1-2001)."},
	{Name: "ECONNRESET", Description: "Connection reset (POSIX.1-2001)."},
	{Name: "EDEADLK", Description: "Resource deadlock avoided (POSIX.1-2001)."},
	{Name: "EDEADLOCK", Alias: true, Description: "On most architectures, a synonym for EDEADLK. On some architectures (e.g., Linux MIPS, PowerPC, SPARC), it is a separate error code \"File locking deadlock error\"."},
	{Name: "EDESTADDRREQ", Description: "Destination address required (POSIX.1-2001)."},
	{Name: "EDOM", Description: "Mathematics argument out of domain of function (POSIX.1, C99)."},
	{Name: "EDQUOT", Description: "Disk quota exceeded (POSIX.1-2001)."},
	{Name: "EEXIST", Description: "File exists (POSIX.1-2001)."},
	{Name: "EFAULT", Description: "Bad address (POSIX.1-2001)."},
	{Name: "EFBIG", Description: "File too large (POSIX.1-2001)."},
	{Name: "EHOSTDOWN", Description: "Host is down."},
	{Name: "EHOSTUNREACH", Description: "Host is unreachable (POSIX.1-2001)."},
	{Name: "EHWPOISON", Description: "Memory page has hardware error."},
	{Name: "EIDRM", Description: "Identifier removed (POSIX.1-2001)."},
	{Name: "EILSEQ", Description: "Invalid or incomplete multibyte or wide character (POSIX.1, C99). The text shown here is the glibc error description; in POSIX.1, this error is described as \"Illegal byte sequence\"."},
	{Name: "EINPROGRESS", Description: "Operation in progress (POSIX.1-2001)."},
	{Name: "EINTR", Description: "Interrupted function call (POSIX.1-2001); see signal(7)."},
	{Name: "EINVAL", Description: "Invalid argument (POSIX.1-2001)."},
	{Name: "EIO", Description: "Input/output error (POSIX.1-2001)."},
	{Name: "EISCONN", Description: "Socket is connected (POSIX.1-2001)."},
	{Name: "EISDIR", Description: "Is a directory (POSIX.1-2001)."},
	{Name: "EISNAM", Description: "Is a named type file."},
	{Name: "EKEYEXPIRED", Description: "Key has expired."},
	{Name: "EKEYREJECTED", Description: "Key was rejected by service."},
	{Name: "EKEYREVOKED", Description: "Key has been revoked."},
	{Name: "EL2HLT", Description: "Level 2 halted."},
	{Name: "EL2NSYNC", Description: "Level 2 not synchronized."},
	{Name: "EL3HLT", Description: "Level 3 halted."},
	{Name: "EL3RST", Description: "Level 3 reset."},
	{Name: "ELIBACC", Description: "Cannot access a needed shared library."},
	{Name: "ELIBBAD", Description: "Accessing a corrupted shared library."},
	{Name: "ELIBMAX", Description: "Attempting to link in too many shared libraries."},
	{Name: "ELIBSCN", Description: ".lib section in a.out corrupted"},
	{Name: "ELIBEXEC", Description: "Cannot exec a shared library directly."},
	{Name: "ELNRNG", Description: "Link number out of range."},
	{Name: "ELOOP", Description: "Too many levels of symbolic links (POSIX.1-2001)."},
	{Name: "EMEDIUMTYPE", Description: "Wrong medium type."},
	{Name: "EMFILE", Description: "Too many open files (POSIX.1-2001). Commonly caused by exceeding the RLIMIT_NOFILE resource limit described in getrlimit(2). Can also be caused by exceeding the limit specified in /proc/sys/fs/nr_open."},
	{Name: "EMLINK", Description: "Too many links (POSIX.1-2001)."},
	{Name: "EMSGSIZE", Description: "Message too long (POSIX.1-2001)."},
	{Name: "EMULTIHOP", Description: "Multihop attempted (POSIX.1-2001)."},
	{Name: "ENAMETOOLONG", Description: "Filename too long (POSIX.1-2001)."},
	{Name: "ENETDOWN", Description: "Network is down (POSIX.1-2001)."},
	{Name: "ENETRESET", Description: "Connection aborted by network (POSIX.1-2001)."},
	{Name: "ENETUNREACH", Description: "Network unreachable (POSIX.1-2001)."},
	{Name: "ENFILE", Description: "Too many open files in system (POSIX.1-2001). On Linux, this is probably a result of encountering the /proc/sys/fs/file-max limit (see proc(5))."},
	{Name: "ENOANO", Description: "No anode."},
	{Name: "ENOBUFS", Description: "No buffer space available (POSIX.1 (XSI STREAMS option))."},
	{Name: "ENODATA", Description: "The named attribute does not exist, or the process has no access to this attribute; see xattr(7). In POSIX.1-2001 (XSI STREAMS option), this error was described as \"No message is available on the STREAM head read queue\"."},
	{Name: "ENODEV", Description: "No such device (POSIX.1-2001)."},
	{Name: "ENOENT", Description: "No such file or directory (POSIX.1-2001). Typically, this error results when a specified pathname does not exist, or one of the components in the directory prefix of a pathname does not exist, or the specified pathname is a dangling symbolic link."},
	{Name: "ENOEXEC", Description: "Exec format error (POSIX.1-2001)."},
	{Name: "ENOKEY", Description: "Required key not available."},
	{Name: "ENOLCK", Description: "No locks available (POSIX.1-2001)."},
	{Name: "ENOLINK", Description: "Link has been severed (POSIX.1-2001)."},
	{Name: "ENOMEDIUM", Description: "No medium found."},
	{Name: "ENOMEM", Description: "Not enough space/cannot allocate memory (POSIX.1-2001)."},
	{Name: "ENOMSG", Description: "No message of the desired type (POSIX.1-2001)."},
	{Name: "ENONET", Description: "Machine is not on the network."},
	{Name: "ENOPKG", Description: "Package not installed."},
	{Name: "ENOPROTOOPT", Description: "Protocol not available (POSIX.1-2001)."},
	{Name: "ENOSPC", Description: "No space left on device (POSIX.1-2001)."},
	{Name: "ENOSR", Description: "No STREAM resources (POSIX.1 (XSI STREAMS option))."},
	{Name: "ENOSTR", Description: "Not a STREAM (POSIX.1 (XSI STREAMS option))."},
	{Name: "ENOSYS", Description: "Function not implemented (POSIX.1-2001)."},
	{Name: "ENOTBLK", Description: "Block device required."},
	{Name: "ENOTCONN", Description: "The socket is not connected (POSIX.1-2001)."},
	{Name: "ENOTDIR", Description: "Not a directory (POSIX.1-2001)."},
	{Name: "ENOTEMPTY", Description: "Directory not empty (POSIX.1-2001)."},
	{Name: "ENOTRECOVERABLE", Description: "State not recoverable (POSIX.1-2008)."},
	{Name: "ENOTSOCK", Description: "Not a socket (POSIX.1-2001)."},
	{Name: "ENOTSUP", Description: "Operation not supported (POSIX.1-2001)."},
	{Name: "ENOTTY", Description: "Inappropriate I/O control operation (POSIX.1-2001)."},
	{Name: "ENOTUNIQ", Description: "Name not unique on network."},
	{Name: "ENXIO", Description: "No such device or address (POSIX.1-2001)."},
	{Name: "EOPNOTSUPP", Alias: true, Description: "Operation not supported on socket (POSIX.1-2001). (ENOTSUP and EOPNOTSUPP have the same value on Linux, but according to POSIX.1 these error values should be distinct.)"},
	{Name: "EOVERFLOW", Description: "Value too large to be stored in data type (POSIX.1-2001)."},
	{Name: "EOWNERDEAD", Description: "Owner died (POSIX.1-2008)."},
	{Name: "EPERM", Description: "Operation not permitted (POSIX.1-2001)."},
	{Name: "EPFNOSUPPORT", Description: "Protocol family not supported."},
	{Name: "EPIPE", Description: "Broken pipe (POSIX.1-2001)."},
	{Name: "EPROTO", Description: "Protocol error (POSIX.1-2001)."},
	{Name: "EPROTONOSUPPORT", Description: "Protocol not supported (POSIX.1-2001)."},
	{Name: "EPROTOTYPE", Description: "Protocol wrong type for socket (POSIX.1-2001)."},
	{Name: "ERANGE", Description: "Result too large (POSIX.1, C99)."},
	{Name: "EREMCHG", Description: "Remote address changed."},
	{Name: "EREMOTE", Description: "Object is remote."},
	{Name: "EREMOTEIO", Description: "Remote I/O error."},
	{Name: "ERESTART", Description: "Interrupted system call should be restarted."},
	{Name: "ERFKILL", Description: "Operation not possible due to RF-kill."},
	{Name: "EROFS", Description: "Read-only filesystem (POSIX.1-2001)."},
	{Name: "ESHUTDOWN", Description: "Cannot send after transport endpoint shutdown."},
	{Name: "ESPIPE", Description: "Invalid seek (POSIX.1-2001)."},
	{Name: "ESOCKTNOSUPPORT", Description: "Socket type not supported."},
	{Name: "ESRCH", Description: "No such process (POSIX.1-2001)."},
	{Name: "ESTALE", Description: "Stale file handle (POSIX.1-2001). This error can occur for NFS and for other filesystems."},
	{Name: "ESTRPIPE", Description: "Streams pipe error."},
	{Name: "ETIME", Description: "Timer expired (POSIX.1 (XSI STREAMS option)). (POSIX.1 says \"STREAM ioctl(2) timeout\".)"},
	{Name: "ETIMEDOUT", Description: "Connection timed out (POSIX.1-2001)."},
	{Name: "ETOOMANYREFS", Description: "Too many references: cannot splice."},
	{Name: "ETXTBSY", Description: "Text file busy (POSIX.1-2001)."},
	{Name: "EUCLEAN", Description: "Structure needs cleaning."},
	{Name: "EUNATCH", Description: "Protocol driver not attached."},
	{Name: "EUSERS", Description: "Too many users."},
	{Name: "EWOULDBLOCK", Alias: true, Description: "Operation would block (may be same value as EAGAIN) (POSIX.1-2001)."},
	{Name: "EXDEV", Description: "Improper link (POSIX.1-2001)."},
	{Name: "EXFULL", Description: "Exchange full."},
}
