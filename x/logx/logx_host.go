//go:build !(rp2040 || rp2350)

package logx

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	level  = InfoLevel
	logger = zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	).With().Timestamp().Logger()
)

// SetOutput sends JSON lines to w. Passing nil restores the console writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel drops lines below l.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

func write(l Level, msg string, fields []Field) {
	mu.Lock()
	lg, floor := logger, level
	mu.Unlock()
	if l < floor {
		return
	}
	var ev *zerolog.Event
	switch l {
	case DebugLevel:
		ev = lg.Debug()
	case WarnLevel:
		ev = lg.Warn()
	case ErrorLevel:
		ev = lg.Error()
	default:
		ev = lg.Info()
	}
	for _, f := range fields {
		switch f.kind {
		case kindInt:
			ev = ev.Int64(f.Key, f.i)
		case kindUint:
			ev = ev.Uint64(f.Key, f.u)
		default:
			ev = ev.Str(f.Key, f.s)
		}
	}
	ev.Msg(msg)
}
