package kernel

// PanicInfo describes a recovered task panic.
type PanicInfo struct {
	TaskID TaskID
	Tick   uint64
	Value  any
	Stack  []byte
}

// SetPanicHandler installs fn as the handler for task panics. It is invoked at most once,
// for the first panic, from the foreground goroutine. It must not panic.
func (k *Kernel) SetPanicHandler(fn func(PanicInfo)) {
	k.onPanic = fn
}

// Panicked reports whether any task has panicked. A panicked task is never stepped again.
func (k *Kernel) Panicked() bool {
	return k.panicked.Load()
}

func (k *Kernel) triggerPanic(info PanicInfo) {
	if k.panicked.Swap(true) {
		return
	}
	info.Stack = captureStack()
	if k.onPanic != nil {
		k.onPanic(info)
	}
}
