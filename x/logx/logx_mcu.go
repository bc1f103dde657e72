//go:build rp2040 || rp2350

package logx

import (
	"io"

	"luxservo-go/x/conv"
)

var (
	level  = InfoLevel
	mirror io.Writer
	line   []byte
)

// SetOutput mirrors every printed line to w (e.g. a UART). nil disables it.
func SetOutput(w io.Writer) { mirror = w }

// SetLevel drops lines below l.
func SetLevel(l Level) { level = l }

// write runs on the single control goroutine; the shared line buffer is not
// guarded.
func write(l Level, msg string, fields []Field) {
	if l < level {
		return
	}
	line = append(line[:0], l.String()...)
	line = append(line, ": "...)
	line = append(line, msg...)
	for _, f := range fields {
		line = append(line, ' ')
		line = append(line, f.Key...)
		line = append(line, '=')
		switch f.kind {
		case kindInt:
			line = conv.AppendInt(line, f.i)
		case kindUint:
			line = conv.AppendUint(line, f.u)
		default:
			line = append(line, f.s...)
		}
	}
	println(string(line))
	if mirror != nil {
		line = append(line, '\r', '\n')
		_, _ = mirror.Write(line)
	}
}
