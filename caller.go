package ingestx

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// CallerInfo locates the code that built an error.
type CallerInfo struct {
	File     string
	Function string
	Line     int
}

// Caller returns the call site skip frames above the caller of Caller.
// Caller(0) describes the function calling Caller. The zero CallerInfo is
// returned when the frame cannot be resolved.
func Caller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	info := CallerInfo{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Function = fn.Name()
	}

	return info
}

// IsZero reports whether c carries no location.
func (c CallerInfo) IsZero() bool {
	return c == CallerInfo{}
}

func (c CallerInfo) String() string {
	if c.IsZero() {
		return "unknown caller"
	}
	if c.Function == "" {
		return fmt.Sprintf("%s:%d", filepath.Base(c.File), c.Line)
	}
	return fmt.Sprintf("%s:%d %s", filepath.Base(c.File), c.Line, c.Function)
}

// LogValue implements slog.LogValuer.
func (c CallerInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", c.File),
		slog.String("function", c.Function),
		slog.Int("line", c.Line),
	)
}
