package trap

// Op is a semihosting operation number.
type Op uintptr

const (
	Open         Op = 0x01
	Close        Op = 0x02
	WriteC       Op = 0x03
	Write0       Op = 0x04
	Write        Op = 0x05
	Read         Op = 0x06
	ReadC        Op = 0x07
	IsError      Op = 0x08
	IsTTY        Op = 0x09
	Seek         Op = 0x0a
	Flen         Op = 0x0c
	TmpNam       Op = 0x0d
	Remove       Op = 0x0e
	Rename       Op = 0x0f
	Clock        Op = 0x10
	Time         Op = 0x11
	System       Op = 0x12
	Errno        Op = 0x13
	GetCmdline   Op = 0x15
	HeapInfo     Op = 0x16
	Exit         Op = 0x18 // angel_SWIreason_ReportException
	ExitExtended Op = 0x20
	Elapsed      Op = 0x30
	TickFreq     Op = 0x31
)

var opNames = map[Op]string{
	Open:         "SYS_OPEN",
	Close:        "SYS_CLOSE",
	WriteC:       "SYS_WRITEC",
	Write0:       "SYS_WRITE0",
	Write:        "SYS_WRITE",
	Read:         "SYS_READ",
	ReadC:        "SYS_READC",
	IsError:      "SYS_ISERROR",
	IsTTY:        "SYS_ISTTY",
	Seek:         "SYS_SEEK",
	Flen:         "SYS_FLEN",
	TmpNam:       "SYS_TMPNAM",
	Remove:       "SYS_REMOVE",
	Rename:       "SYS_RENAME",
	Clock:        "SYS_CLOCK",
	Time:         "SYS_TIME",
	System:       "SYS_SYSTEM",
	Errno:        "SYS_ERRNO",
	GetCmdline:   "SYS_GET_CMDLINE",
	HeapInfo:     "SYS_HEAPINFO",
	Exit:         "SYS_EXIT",
	ExitExtended: "SYS_EXIT_EXTENDED",
	Elapsed:      "SYS_ELAPSED",
	TickFreq:     "SYS_TICKFREQ",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "SYS_UNKNOWN"
}

// Mode is the access mode passed to Open. The values correspond to the fopen()
// mode strings in the comments.
type Mode uintptr

const (
	ModeR      Mode = iota // "r"
	ModeRB                 // "rb"
	ModeRPlus              // "r+"
	ModeRPlusB             // "r+b"
	ModeW                  // "w"
	ModeWB                 // "wb"
	ModeWPlus              // "w+"
	ModeWPlusB             // "w+b"
	ModeA                  // "a"
	ModeAB                 // "ab"
	ModeAPlus              // "a+"
	ModeAPlusB             // "a+b"
)

// TTY is the special path naming the debugger's own terminal. Opened with
// ModeR it's the host's stdin, with ModeW its stdout and with ModeA its stderr.
const TTY = ":tt"
