//go:build linux && (amd64 || 386 || arm || arm64)

package errno

import "golang.org/x/sys/unix"

var numbers = map[string]int{
	"E2BIG":           int(unix.E2BIG),
	"EACCES":          int(unix.EACCES),
	"EADDRINUSE":      int(unix.EADDRINUSE),
	"EADDRNOTAVAIL":   int(unix.EADDRNOTAVAIL),
	"EAFNOSUPPORT":    int(unix.EAFNOSUPPORT),
	"EAGAIN":          int(unix.EAGAIN),
	"EALREADY":        int(unix.EALREADY),
	"EBADE":           int(unix.EBADE),
	"EBADF":           int(unix.EBADF),
	"EBADFD":          int(unix.EBADFD),
	"EBADMSG":         int(unix.EBADMSG),
	"EBADR":           int(unix.EBADR),
	"EBADRQC":         int(unix.EBADRQC),
	"EBADSLT":         int(unix.EBADSLT),
	"EBUSY":           int(unix.EBUSY),
	"ECANCELED":       int(unix.ECANCELED),
	"ECHILD":          int(unix.ECHILD),
	"ECHRNG":          int(unix.ECHRNG),
	"ECOMM":           int(unix.ECOMM),
	"ECONNABORTED":    int(unix.ECONNABORTED),
	"ECONNREFUSED":    int(unix.ECONNREFUSED),
	"ECONNRESET":      int(unix.ECONNRESET),
	"EDEADLK":         int(unix.EDEADLK),
	"EDEADLOCK":       int(unix.EDEADLOCK),
	"EDESTADDRREQ":    int(unix.EDESTADDRREQ),
	"EDOM":            int(unix.EDOM),
	"EDQUOT":          int(unix.EDQUOT),
	"EEXIST":          int(unix.EEXIST),
	"EFAULT":          int(unix.EFAULT),
	"EFBIG":           int(unix.EFBIG),
	"EHOSTDOWN":       int(unix.EHOSTDOWN),
	"EHOSTUNREACH":    int(unix.EHOSTUNREACH),
	"EHWPOISON":       int(unix.EHWPOISON),
	"EIDRM":           int(unix.EIDRM),
	"EILSEQ":          int(unix.EILSEQ),
	"EINPROGRESS":     int(unix.EINPROGRESS),
	"EINTR":           int(unix.EINTR),
	"EINVAL":          int(unix.EINVAL),
	"EIO":             int(unix.EIO),
	"EISCONN":         int(unix.EISCONN),
	"EISDIR":          int(unix.EISDIR),
	"EISNAM":          int(unix.EISNAM),
	"EKEYEXPIRED":     int(unix.EKEYEXPIRED),
	"EKEYREJECTED":    int(unix.EKEYREJECTED),
	"EKEYREVOKED":     int(unix.EKEYREVOKED),
	"EL2HLT":          int(unix.EL2HLT),
	"EL2NSYNC":        int(unix.EL2NSYNC),
	"EL3HLT":          int(unix.EL3HLT),
	"EL3RST":          int(unix.EL3RST),
	"ELIBACC":         int(unix.ELIBACC),
	"ELIBBAD":         int(unix.ELIBBAD),
	"ELIBMAX":         int(unix.ELIBMAX),
	"ELIBSCN":         int(unix.ELIBSCN),
	"ELIBEXEC":        int(unix.ELIBEXEC),
	"ELNRNG":          int(unix.ELNRNG),
	"ELOOP":           int(unix.ELOOP),
	"EMEDIUMTYPE":     int(unix.EMEDIUMTYPE),
	"EMFILE":          int(unix.EMFILE),
	"EMLINK":          int(unix.EMLINK),
	"EMSGSIZE":        int(unix.EMSGSIZE),
	"EMULTIHOP":       int(unix.EMULTIHOP),
	"ENAMETOOLONG":    int(unix.ENAMETOOLONG),
	"ENETDOWN":        int(unix.ENETDOWN),
	"ENETRESET":       int(unix.ENETRESET),
	"ENETUNREACH":     int(unix.ENETUNREACH),
	"ENFILE":          int(unix.ENFILE),
	"ENOANO":          int(unix.ENOANO),
	"ENOBUFS":         int(unix.ENOBUFS),
	"ENODATA":         int(unix.ENODATA),
	"ENODEV":          int(unix.ENODEV),
	"ENOENT":          int(unix.ENOENT),
	"ENOEXEC":         int(unix.ENOEXEC),
	"ENOKEY":          int(unix.ENOKEY),
	"ENOLCK":          int(unix.ENOLCK),
	"ENOLINK":         int(unix.ENOLINK),
	"ENOMEDIUM":       int(unix.ENOMEDIUM),
	"ENOMEM":          int(unix.ENOMEM),
	"ENOMSG":          int(unix.ENOMSG),
	"ENONET":          int(unix.ENONET),
	"ENOPKG":          int(unix.ENOPKG),
	"ENOPROTOOPT":     int(unix.ENOPROTOOPT),
	"ENOSPC":          int(unix.ENOSPC),
	"ENOSR":           int(unix.ENOSR),
	"ENOSTR":          int(unix.ENOSTR),
	"ENOSYS":          int(unix.ENOSYS),
	"ENOTBLK":         int(unix.ENOTBLK),
	"ENOTCONN":        int(unix.ENOTCONN),
	"ENOTDIR":         int(unix.ENOTDIR),
	"ENOTEMPTY":       int(unix.ENOTEMPTY),
	"ENOTRECOVERABLE": int(unix.ENOTRECOVERABLE),
	"ENOTSOCK":        int(unix.ENOTSOCK),
	"ENOTSUP":         int(unix.ENOTSUP),
	"ENOTTY":          int(unix.ENOTTY),
	"ENOTUNIQ":        int(unix.ENOTUNIQ),
	"ENXIO":           int(unix.ENXIO),
	"EOPNOTSUPP":      int(unix.EOPNOTSUPP),
	"EOVERFLOW":       int(unix.EOVERFLOW),
	"EOWNERDEAD":      int(unix.EOWNERDEAD),
	"EPERM":           int(unix.EPERM),
	"EPFNOSUPPORT":    int(unix.EPFNOSUPPORT),
	"EPIPE":           int(unix.EPIPE),
	"EPROTO":          int(unix.EPROTO),
	"EPROTONOSUPPORT": int(unix.EPROTONOSUPPORT),
	"EPROTOTYPE":      int(unix.EPROTOTYPE),
	"ERANGE":          int(unix.ERANGE),
	"EREMCHG":         int(unix.EREMCHG),
	"EREMOTE":         int(unix.EREMOTE),
	"EREMOTEIO":       int(unix.EREMOTEIO),
	"ERESTART":        int(unix.ERESTART),
	"ERFKILL":         int(unix.ERFKILL),
	"EROFS":           int(unix.EROFS),
	"ESHUTDOWN":       int(unix.ESHUTDOWN),
	"ESPIPE":          int(unix.ESPIPE),
	"ESOCKTNOSUPPORT": int(unix.ESOCKTNOSUPPORT),
	"ESRCH":           int(unix.ESRCH),
	"ESTALE":          int(unix.ESTALE),
	"ESTRPIPE":        int(unix.ESTRPIPE),
	"ETIME":           int(unix.ETIME),
	"ETIMEDOUT":       int(unix.ETIMEDOUT),
	"ETOOMANYREFS":    int(unix.ETOOMANYREFS),
	"ETXTBSY":         int(unix.ETXTBSY),
	"EUCLEAN":         int(unix.EUCLEAN),
	"EUNATCH":         int(unix.EUNATCH),
	"EUSERS":          int(unix.EUSERS),
	"EWOULDBLOCK":     int(unix.EWOULDBLOCK),
	"EXDEV":           int(unix.EXDEV),
	"EXFULL":          int(unix.EXFULL),
}
