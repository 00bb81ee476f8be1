package window

import "github.com/AstroTheRabbit/quixel/internal/platform"

// Window wraps the native window handle. It is owned by the dispatcher and
// lent to the processor during the callbacks that receive it.
type Window struct {
	drv          platform.Window
	redrawWanted bool
}

func newWindow(drv platform.Window) *Window {
	return &Window{drv: drv}
}

// Size returns the window's current size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.drv.Size()
}

func (w *Window) SetTitle(title string) {
	w.drv.SetTitle(title)
}

// RequestRedraw schedules one render + present at the end of the current
// cycle. Multiple requests within a cycle coalesce into a single redraw.
func (w *Window) RequestRedraw() {
	w.redrawWanted = true
}

// takeRedraw consumes the pending redraw request, if any.
func (w *Window) takeRedraw() bool {
	wanted := w.redrawWanted
	w.redrawWanted = false
	return wanted
}

func (w *Window) destroy() {
	w.drv.Destroy()
}
