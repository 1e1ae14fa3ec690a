package app

import (
	"fmt"
	"strings"

	"msgpanel/hal"
)

// lineLogger writes "LEVEL msg key=value ..." lines through the HAL logger. It is the
// logger on boards without a terminal library.
type lineLogger struct {
	out hal.Logger
}

func newLineLogger(out hal.Logger) lineLogger { return lineLogger{out: out} }

func (l lineLogger) Debug(msg interface{}, keyvals ...interface{}) { l.write("DEBU", msg, keyvals) }
func (l lineLogger) Info(msg interface{}, keyvals ...interface{})  { l.write("INFO", msg, keyvals) }
func (l lineLogger) Warn(msg interface{}, keyvals ...interface{})  { l.write("WARN", msg, keyvals) }
func (l lineLogger) Error(msg interface{}, keyvals ...interface{}) { l.write("ERRO", msg, keyvals) }

func (l lineLogger) write(level string, msg interface{}, keyvals []interface{}) {
	if l.out == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteByte(' ')
	fmt.Fprint(&sb, msg)
	for i := 0; i < len(keyvals); i += 2 {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, keyvals[i])
		sb.WriteByte('=')
		if i+1 < len(keyvals) {
			fmt.Fprint(&sb, keyvals[i+1])
		} else {
			sb.WriteString("MISSING")
		}
	}
	l.out.WriteLineString(sb.String())
}
