package window

import (
	"fmt"
	"time"

	"github.com/AstroTheRabbit/quixel/event"
	"github.com/AstroTheRabbit/quixel/internal/platform"
)

// Fake platform implementations so the dispatcher can be driven without a
// native toolkit.

type fakeWindow struct {
	width, height int32
	title         string
	destroyed     bool
}

func (w *fakeWindow) Size() (int32, int32) { return w.width, w.height }
func (w *fakeWindow) SetTitle(t string)    { w.title = t }
func (w *fakeWindow) Destroy()             { w.destroyed = true }

type fakePresenter struct {
	calls       []string
	outputErr   error
	textureErr  error
	presentErrs []error // consumed in order; nil entry = success
	destroyed   bool
}

func (p *fakePresenter) ResizeOutput(width, height int32) error {
	p.calls = append(p.calls, fmt.Sprintf("output %dx%d", width, height))
	return p.outputErr
}

func (p *fakePresenter) ResizeTexture(width, height int32) error {
	p.calls = append(p.calls, fmt.Sprintf("texture %dx%d", width, height))
	return p.textureErr
}

func (p *fakePresenter) Present(pix []byte, width, height int32) error {
	p.calls = append(p.calls, fmt.Sprintf("present %dx%d", width, height))
	if len(p.presentErrs) == 0 {
		return nil
	}
	err := p.presentErrs[0]
	p.presentErrs = p.presentErrs[1:]
	return err
}

func (p *fakePresenter) Destroy() { p.destroyed = true }

// fakeEvents serves a scripted queue. An exhausted Wait reports Destroyed,
// which is what the platform does when the event subsystem goes away.
type fakeEvents struct {
	queue []event.Event
}

func (s *fakeEvents) Wait() event.Event {
	if len(s.queue) == 0 {
		return event.Destroyed{}
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev
}

func (s *fakeEvents) Poll() (event.Event, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

type fakeDriver struct {
	win        *fakeWindow
	pres       *fakePresenter
	events     *fakeEvents
	initErr    error
	windowErr  error
	surfaceErr error
	quitCalled bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		win:    &fakeWindow{},
		pres:   &fakePresenter{},
		events: &fakeEvents{},
	}
}

func (d *fakeDriver) Init() error { return d.initErr }
func (d *fakeDriver) Quit()       { d.quitCalled = true }

func (d *fakeDriver) CreateWindow(conf platform.Config) (platform.Window, error) {
	if d.windowErr != nil {
		return nil, d.windowErr
	}
	// A preset size stands in for the platform adjusting the request.
	if d.win.width == 0 && d.win.height == 0 {
		d.win.width, d.win.height = conf.Width, conf.Height
	}
	d.win.title = conf.Title
	return d.win, nil
}

func (d *fakeDriver) CreateSurface(win platform.Window, width, height int32) (platform.Presenter, error) {
	if d.surfaceErr != nil {
		return nil, d.surfaceErr
	}
	return d.pres, nil
}

func (d *fakeDriver) Events() platform.EventSource { return d.events }

// recorder implements Processor and records every callback in order.
type recorder struct {
	calls       []string
	dts         []time.Duration
	renderSizes [][2]int32
	resizes     [][2]int32
	renderErrs  []error
	quitCount   int

	// stopAfter ends the loop after that many updates; until then the
	// recorder keeps the loop in Poll so scripted queues drain without
	// blocking.
	stopAfter int

	updateHook    func(win *Window, flow *ControlFlow, dt time.Duration)
	renderErrHook func(err error, flow *ControlFlow)
}

func (r *recorder) OnStart(win *Window, surf *Surface) {
	r.calls = append(r.calls, "start")
}

func (r *recorder) OnUpdate(win *Window, flow *ControlFlow, dt time.Duration) {
	r.calls = append(r.calls, "update")
	r.dts = append(r.dts, dt)
	if r.updateHook != nil {
		r.updateHook(win, flow, dt)
		return
	}
	if len(r.dts) >= r.stopAfter {
		*flow = Exit
	} else {
		*flow = Poll
	}
}

func (r *recorder) OnRender(win *Window, surf *Surface) {
	r.calls = append(r.calls, "render")
	w, h := surf.Size()
	r.renderSizes = append(r.renderSizes, [2]int32{w, h})
}

func (r *recorder) OnRenderError(err error, flow *ControlFlow) {
	r.calls = append(r.calls, "rendererror")
	r.renderErrs = append(r.renderErrs, err)
	if r.renderErrHook != nil {
		r.renderErrHook(err, flow)
	}
}

func (r *recorder) OnInput(key event.Key) {
	r.calls = append(r.calls, fmt.Sprintf("input %d %v", key.Code, key.Pressed))
}

func (r *recorder) OnClick(btn event.MouseButton) {
	r.calls = append(r.calls, fmt.Sprintf("click %d %v", btn.Button, btn.Pressed))
}

func (r *recorder) OnScroll(wheel event.Wheel) {
	r.calls = append(r.calls, fmt.Sprintf("scroll %v %v", wheel.DeltaX, wheel.DeltaY))
}

func (r *recorder) OnCursorMove(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("cursor %v %v", x, y))
}

func (r *recorder) OnCursorInWindow(inside bool) {
	r.calls = append(r.calls, fmt.Sprintf("inwindow %v", inside))
}

func (r *recorder) OnResize(width, height int32) {
	r.calls = append(r.calls, fmt.Sprintf("resize %dx%d", width, height))
	r.resizes = append(r.resizes, [2]int32{width, height})
}

func (r *recorder) OnFocus(gained bool) {
	r.calls = append(r.calls, fmt.Sprintf("focus %v", gained))
}

func (r *recorder) OnClose() {
	r.calls = append(r.calls, "close")
}

func (r *recorder) OnQuit() {
	r.calls = append(r.calls, "quit")
	r.quitCount++
}

func (r *recorder) OnMisc(ev event.Event) {
	r.calls = append(r.calls, fmt.Sprintf("misc %T", ev))
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}
