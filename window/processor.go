package window

import (
	"time"

	"github.com/AstroTheRabbit/quixel/event"
)

// ControlFlow tells the dispatcher how to wait for the next event. It is
// reset to Wait at the start of every cycle; a processor that wants Poll or
// Exit must set it again from OnUpdate (or OnRenderError).
type ControlFlow int32

const (
	// Wait blocks until the platform delivers an event.
	Wait ControlFlow = iota
	// Poll drains pending events without blocking, so idle cycles run
	// continuously.
	Poll
	// Exit ends the loop.
	Exit
)

func (f ControlFlow) String() string {
	switch f {
	case Wait:
		return "wait"
	case Poll:
		return "poll"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Processor receives every lifecycle, input, and render notification from
// the dispatcher. All methods are called on the loop's goroutine; a method
// that blocks stalls input and redraw processing.
type Processor interface {
	// OnStart runs once, before the first event is waited on.
	OnStart(win *Window, surf *Surface)
	// OnUpdate runs once per idle cycle, after all pending events have
	// been dispatched. dt is the time elapsed since the previous idle
	// cycle. flow may be set to Poll or Exit to change what the
	// dispatcher does next.
	OnUpdate(win *Window, flow *ControlFlow, dt time.Duration)
	// OnRender runs once per requested redraw, just before the surface
	// is presented.
	OnRender(win *Window, surf *Surface)
	// OnRenderError reports a failed presentation. Setting flow to Exit
	// ends the loop; otherwise it continues.
	OnRenderError(err error, flow *ControlFlow)

	OnInput(key event.Key)
	OnClick(btn event.MouseButton)
	OnScroll(wheel event.Wheel)
	OnCursorMove(x, y float64)
	OnCursorInWindow(inside bool)
	OnResize(width, height int32)
	OnFocus(gained bool)
	// OnClose is a hook for hosts that tear the window down themselves;
	// the dispatcher reports shutdown through OnQuit.
	OnClose()
	// OnQuit fires exactly once, when the loop is ending. No further
	// callbacks are dispatched after it.
	OnQuit()
	// OnMisc receives events outside the named categories, unchanged.
	OnMisc(ev event.Event)
}
