package window

import (
	"fmt"

	"github.com/AstroTheRabbit/quixel/constant"
	"github.com/AstroTheRabbit/quixel/internal/platform"
)

// Config describes the window to create. Zero-value Width/Height fall back
// to the defaults in the constant package; zero X/Y lets the platform place
// the window.
type Config struct {
	Title         string
	Width, Height int32
	X, Y          int32
	Resizable     bool
}

// CreationErrorKind distinguishes which stage of Create failed.
type CreationErrorKind int

const (
	// KindWindow means the platform refused to create the native window.
	KindWindow CreationErrorKind = iota
	// KindSurface means the pixel surface could not be built for the
	// created window.
	KindSurface
)

func (k CreationErrorKind) String() string {
	if k == KindWindow {
		return "window"
	}
	return "surface"
}

// CreationError is returned by Create. It wraps the underlying platform
// error.
type CreationError struct {
	Kind CreationErrorKind
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Kind, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Create builds a native window and a pixel surface matching its physical
// size, and returns an App ready to Run. On error nothing is retained: the
// returned *CreationError tells whether the window or the surface stage
// failed, and any partially created resources have been released.
func Create(conf Config, proc Processor) (*App, error) {
	return create(platform.NewSDL(), conf, proc)
}

func create(drv platform.Driver, conf Config, proc Processor) (*App, error) {
	if conf.Title == "" {
		conf.Title = constant.DEFAULT_WINDOW_TITLE
	}
	if conf.Width == 0 && conf.Height == 0 {
		conf.Width = constant.DEFAULT_WINDOW_WIDTH
		conf.Height = constant.DEFAULT_WINDOW_HEIGHT
	}

	if err := drv.Init(); err != nil {
		return nil, &CreationError{Kind: KindWindow, Err: err}
	}

	win, err := drv.CreateWindow(platform.Config{
		Title:     conf.Title,
		Width:     conf.Width,
		Height:    conf.Height,
		X:         conf.X,
		Y:         conf.Y,
		Resizable: conf.Resizable,
	})
	if err != nil {
		drv.Quit()
		return nil, &CreationError{Kind: KindWindow, Err: err}
	}

	// The platform may have adjusted the requested size; the surface must
	// match what the window actually got.
	width, height := win.Size()
	pres, err := drv.CreateSurface(win, width, height)
	if err != nil {
		win.Destroy()
		drv.Quit()
		return nil, &CreationError{Kind: KindSurface, Err: err}
	}

	return &App{
		drv:       drv,
		win:       newWindow(win),
		surface:   newSurface(pres, width, height),
		events:    drv.Events(),
		processor: proc,
	}, nil
}
