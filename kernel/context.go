package kernel

// Context provides task-local access to kernel state.
type Context struct {
	k      *Kernel
	taskID TaskID
	now    uint64
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// Now returns the tick at which this step was scheduled.
func (c *Context) Now() uint64 { return c.now }

// NowTick returns the latest tick, which may have advanced during the step.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.NowTick()
}
