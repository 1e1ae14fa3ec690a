package app

import (
	"fmt"
	"strings"

	"msgpanel/kernel"
	"msgpanel/panel/charset"
)

// onPanic stops the foreground loop, logs the report and leaves it on the display with
// the status LED lit.
func (s *System) onPanic(info kernel.PanicInfo) {
	s.err = fmt.Errorf("task %d panicked at tick %d: %v", info.TaskID, info.Tick, info.Value)
	s.log.Error("task panic", "task", info.TaskID, "tick", info.Tick, "panic", info.Value)
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line != "" {
			s.log.Debug(line)
		}
	}

	s.h.LED().High()
	if s.disp == nil {
		return
	}
	s.disp.Clear()
	s.disp.SetCursor(0, 0, false)
	s.disp.WriteAt(0, 0, charset.Encode(fmt.Sprintf("PANIC task %d", info.TaskID)))
	s.disp.WriteAt(0, 1, charset.Encode(fmt.Sprint(info.Value)))
}
