package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/AstroTheRabbit/quixel/event"
)

// SDL is the go-sdl2 implementation of Driver.
type SDL struct{}

func NewSDL() *SDL {
	return &SDL{}
}

func (d *SDL) Init() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func (d *SDL) Quit() {
	sdl.Quit()
}

func (d *SDL) CreateWindow(conf Config) (Window, error) {
	x, y := conf.X, conf.Y
	if x == 0 && y == 0 {
		x, y = sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED
	}
	var flags uint32 = sdl.WINDOW_SHOWN
	if conf.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	win, err := sdl.CreateWindow(conf.Title, x, y, conf.Width, conf.Height, flags)
	if err != nil {
		return nil, err
	}
	return &sdlWindow{win: win}, nil
}

func (d *SDL) CreateSurface(win Window, width, height int32) (Presenter, error) {
	sw := win.(*sdlWindow)
	renderer, err := sdl.CreateRenderer(sw.win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		width,
		height,
	)
	if err != nil {
		renderer.Destroy()
		return nil, err
	}
	return &sdlPresenter{renderer: renderer, texture: texture}, nil
}

func (d *SDL) Events() EventSource {
	return &sdlEvents{}
}

type sdlWindow struct {
	win *sdl.Window
}

func (w *sdlWindow) Size() (int32, int32) {
	return w.win.GetSize()
}

func (w *sdlWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *sdlWindow) Destroy() {
	w.win.Destroy()
}

type sdlPresenter struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func (p *sdlPresenter) ResizeOutput(width, height int32) error {
	// The renderer's output tracks the window; nothing to reallocate here.
	return nil
}

func (p *sdlPresenter) ResizeTexture(width, height int32) error {
	texture, err := p.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		width,
		height,
	)
	if err != nil {
		return err
	}
	p.texture.Destroy()
	p.texture = texture
	return nil
}

func (p *sdlPresenter) Present(pix []byte, width, height int32) error {
	dst, _, err := p.texture.Lock(nil)
	if err != nil {
		return err
	}
	copy(dst, pix)
	p.texture.Unlock()

	if err := p.renderer.Clear(); err != nil {
		return err
	}
	if err := p.renderer.Copy(p.texture, nil, nil); err != nil {
		return err
	}
	p.renderer.Present()
	return nil
}

func (p *sdlPresenter) Destroy() {
	p.texture.Destroy()
	p.renderer.Destroy()
}

type sdlEvents struct{}

func (s *sdlEvents) Wait() event.Event {
	for {
		raw := sdl.WaitEvent()
		if raw == nil {
			// WaitEvent only fails when the event subsystem is gone.
			return event.Destroyed{}
		}
		if ev := convert(raw); ev != nil {
			return ev
		}
	}
}

func (s *sdlEvents) Poll() (event.Event, bool) {
	for {
		raw := sdl.PollEvent()
		if raw == nil {
			return nil, false
		}
		if ev := convert(raw); ev != nil {
			return ev, true
		}
	}
}
