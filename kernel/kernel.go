// Package kernel runs the panel's two timing domains: tick hooks in the interrupt
// domain and periodic cooperative tasks in the foreground.
package kernel

import (
	"sync/atomic"
)

const (
	maxTasks = 8
	maxHooks = 8
)

type TaskID uint8

// Task is a cooperative unit of foreground work.
type Task interface {
	Step(*Context)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(*Context)

func (f TaskFunc) Step(ctx *Context) { f(ctx) }

// TickFunc runs in the interrupt domain. It must not block or allocate.
type TickFunc func(seq uint64)

type hook struct {
	every uint64
	fn    TickFunc
}

type taskState struct {
	task   Task
	period uint64
	last   uint64
	ran    bool
	dead   bool
}

// Kernel is a tick counter plus a periodic cooperative scheduler.
//
// Hooks and tasks must be registered before the tick source starts. TickTo is called
// from a single goroutine; Step from a single (possibly different) goroutine.
type Kernel struct {
	tick atomic.Uint64

	hooks     [maxHooks]hook
	hookCount int

	tasks     [maxTasks]taskState
	taskCount TaskID

	panicked atomic.Bool
	onPanic  func(PanicInfo)
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// OnTick registers fn to run on every tick whose sequence number is a multiple of every.
func (k *Kernel) OnTick(every uint64, fn TickFunc) bool {
	if fn == nil || k.hookCount >= maxHooks {
		return false
	}
	if every == 0 {
		every = 1
	}
	k.hooks[k.hookCount] = hook{every: every, fn: fn}
	k.hookCount++
	return true
}

// AddTask registers a task that runs at most once per period ticks. A zero period runs
// the task on every Step.
func (k *Kernel) AddTask(t Task, period uint64) (TaskID, bool) {
	if t == nil || k.taskCount >= maxTasks {
		return 0, false
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, period: period}
	return id, true
}

// TickTo advances the tick counter to seq, running hooks for every tick in between.
func (k *Kernel) TickTo(seq uint64) {
	for s := k.tick.Load() + 1; s <= seq; s++ {
		for i := 0; i < k.hookCount; i++ {
			if h := &k.hooks[i]; s%h.every == 0 {
				h.fn(s)
			}
		}
		k.tick.Store(s)
	}
}

// NowTick returns the last completed tick.
func (k *Kernel) NowTick() uint64 {
	return k.tick.Load()
}

// Step runs every task whose period has elapsed and reports how many ran.
func (k *Kernel) Step() int {
	now := k.tick.Load()
	ran := 0
	for id := TaskID(0); id < k.taskCount; id++ {
		st := &k.tasks[id]
		if st.task == nil || st.dead {
			continue
		}
		if st.ran && now-st.last < st.period {
			continue
		}
		st.ran = true
		st.last = now
		k.run(id, now)
		ran++
	}
	return ran
}

func (k *Kernel) run(id TaskID, now uint64) {
	st := &k.tasks[id]
	defer func() {
		if r := recover(); r != nil {
			st.dead = true
			k.triggerPanic(PanicInfo{TaskID: id, Tick: now, Value: r})
		}
	}()
	st.task.Step(&Context{k: k, taskID: id, now: now})
}
