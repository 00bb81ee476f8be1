package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AstroTheRabbit/quixel/event"
	"github.com/AstroTheRabbit/quixel/internal/platform"
	"github.com/AstroTheRabbit/quixel/util"
)

// App owns the window, the pixel surface, the event source, and the
// processor. Create builds it; Run consumes it.
type App struct {
	drv       platform.Driver
	win       *Window
	surface   *Surface
	events    platform.EventSource
	processor Processor
	flow      ControlFlow
	quitSent  bool
}

// Window returns the wrapped native window, e.g. for setting the title
// before Run.
func (a *App) Window() *Window {
	return a.win
}

// Surface returns the pixel surface.
func (a *App) Surface() *Surface {
	return a.surface
}

// Run blocks, dispatching platform events to the processor until the loop
// control is set to Exit, then releases the window and surface. It must be
// called from the goroutine that called Create; the OS thread is locked for
// the duration of the loop.
func (a *App) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer a.destroy()

	a.processor.OnStart(a.win, a.surface)

	prev := time.Now()
	first := true
	for {
		// Gather events. The flow set during the previous idle cycle
		// picks the wait strategy; the first cycle never blocks so the
		// initial update and render happen immediately.
		if a.flow == Wait && !first {
			a.dispatch(a.events.Wait())
		}
		first = false
		for a.flow != Exit {
			ev, ok := a.events.Poll()
			if !ok {
				break
			}
			a.dispatch(ev)
		}
		if a.flow == Exit {
			break
		}

		// Idle cycle: all pending events are drained.
		a.flow = Wait
		a.processor.OnUpdate(a.win, &a.flow, time.Since(prev))
		a.win.RequestRedraw()
		prev = time.Now()
		if a.flow == Exit {
			break
		}

		if a.win.takeRedraw() {
			a.processor.OnRender(a.win, a.surface)
			if err := a.surface.present(); err != nil {
				a.processor.OnRenderError(err, &a.flow)
			}
		}
		if a.flow == Exit {
			break
		}
	}

	a.notifyQuit()
}

// dispatch forwards one event to exactly one processor method.
func (a *App) dispatch(ev event.Event) {
	switch e := ev.(type) {
	case event.Resized:
		a.resize(e.Width, e.Height)
	case event.CloseRequested:
		a.notifyQuit()
	case event.Destroyed:
		a.notifyQuit()
	case event.FocusChanged:
		a.processor.OnFocus(e.Gained)
	case event.Key:
		a.processor.OnInput(e)
	case event.CursorMoved:
		a.processor.OnCursorMove(e.X, e.Y)
	case event.CursorEntered:
		a.processor.OnCursorInWindow(true)
	case event.CursorLeft:
		a.processor.OnCursorInWindow(false)
	case event.Wheel:
		a.processor.OnScroll(e)
	case event.MouseButton:
		a.processor.OnClick(e)
	default:
		a.processor.OnMisc(ev)
	}
}

func (a *App) resize(width, height int32) {
	util.Trace("resize to %dx%d", width, height)
	if err := a.surface.resize(width, height); err != nil {
		// The buffer must match the window size and the platform gives
		// no recovery path once the window has already changed.
		panic(fmt.Sprintf("quixel: %v", err))
	}
	a.win.RequestRedraw()
	a.processor.OnResize(width, height)
}

// notifyQuit sets the loop control to Exit and fires OnQuit. OnQuit fires
// at most once, whether the exit came from a close event, a callback, or
// loop teardown.
func (a *App) notifyQuit() {
	a.flow = Exit
	if a.quitSent {
		return
	}
	a.quitSent = true
	util.Trace("quit")
	a.processor.OnQuit()
}

func (a *App) destroy() {
	a.surface.destroy()
	a.win.destroy()
	a.drv.Quit()
}
