// Package logx is the logging front end. Host builds log through zerolog;
// MCU builds print compact "Level: msg key=val" lines without fmt.
package logx

// Level orders log severities.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "Debug"
	case WarnLevel:
		return "Warn"
	case ErrorLevel:
		return "Error"
	default:
		return "Info"
	}
}

// ParseLevel maps a lower-case name to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "trace":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

type fieldKind uint8

const (
	kindInt fieldKind = iota
	kindUint
	kindStr
)

// Field is one key/value pair attached to a log line.
type Field struct {
	Key  string
	kind fieldKind
	i    int64
	u    uint64
	s    string
}

func Int(key string, v int64) Field   { return Field{Key: key, kind: kindInt, i: v} }
func Uint(key string, v uint64) Field { return Field{Key: key, kind: kindUint, u: v} }
func Str(key, v string) Field         { return Field{Key: key, kind: kindStr, s: v} }

// Err attaches err under "error"; a nil err logs as "<nil>".
func Err(err error) Field {
	if err == nil {
		return Str("error", "<nil>")
	}
	return Str("error", err.Error())
}

func Debug(msg string, fields ...Field) { write(DebugLevel, msg, fields) }
func Info(msg string, fields ...Field)  { write(InfoLevel, msg, fields) }
func Warn(msg string, fields ...Field)  { write(WarnLevel, msg, fields) }
func Error(msg string, fields ...Field) { write(ErrorLevel, msg, fields) }
