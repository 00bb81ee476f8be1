// Package platform abstracts the native windowing toolkit behind small
// interfaces so the dispatcher can be driven by fakes in tests. The SDL2
// implementation lives in sdl.go.
package platform

import "github.com/AstroTheRabbit/quixel/event"

type Config struct {
	Title         string
	Width, Height int32
	X, Y          int32
	Resizable     bool
}

// Driver creates native resources and owns toolkit-wide init/teardown.
type Driver interface {
	Init() error
	Quit()
	CreateWindow(conf Config) (Window, error)
	CreateSurface(win Window, width, height int32) (Presenter, error)
	Events() EventSource
}

// Window is a native window handle.
type Window interface {
	Size() (int32, int32)
	SetTitle(title string)
	Destroy()
}

// Presenter is the presentation side of a pixel surface: it owns the
// toolkit objects that carry a CPU pixel buffer onto the screen.
type Presenter interface {
	// ResizeOutput resizes the presentation target to the window's new
	// physical size.
	ResizeOutput(width, height int32) error
	// ResizeTexture resizes the backing store the pixel buffer is
	// uploaded into.
	ResizeTexture(width, height int32) error
	// Present uploads pix (4 bytes per pixel, width*height*4 long) and
	// shows it.
	Present(pix []byte, width, height int32) error
	Destroy()
}

// EventSource yields converted platform events. Wait blocks until an event
// arrives; Poll never blocks.
type EventSource interface {
	Wait() event.Event
	Poll() (event.Event, bool)
}
