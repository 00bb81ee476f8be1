// Command demo opens a quixel window and renders a scrolling gradient with
// a white square following the cursor. Escape or closing the window exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/AstroTheRabbit/quixel/event"
	"github.com/AstroTheRabbit/quixel/util"
	"github.com/AstroTheRabbit/quixel/window"
)

type demo struct {
	offset     float64
	cursorX    float64
	cursorY    float64
	inWindow   bool
	escapeHeld bool
	frames     int
}

func (d *demo) OnStart(win *window.Window, surf *window.Surface) {
	w, h := surf.Size()
	log.Printf("started with a %dx%d surface", w, h)
}

func (d *demo) OnUpdate(win *window.Window, flow *window.ControlFlow, dt time.Duration) {
	if d.escapeHeld {
		*flow = window.Exit
		return
	}
	*flow = window.Poll
	d.offset += 60 * dt.Seconds()
}

func (d *demo) OnRender(win *window.Window, surf *window.Surface) {
	width, height := surf.Size()
	pix := surf.Frame()
	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			i := (int(y)*int(width) + int(x)) * 4
			pix[i+0] = uint8(int(d.offset) + int(x)) // b
			pix[i+1] = uint8(y)                      // g
			pix[i+2] = 0x40                          // r
			pix[i+3] = 0xff                          // a
		}
	}
	if d.inWindow {
		d.drawCursorBox(surf)
	}
	d.frames++
}

func (d *demo) drawCursorBox(surf *window.Surface) {
	width, height := surf.Size()
	pix := surf.Frame()
	cx, cy := int32(d.cursorX), int32(d.cursorY)
	for y := cy - 4; y <= cy+4; y++ {
		for x := cx - 4; x <= cx+4; x++ {
			if x < 0 || y < 0 || x >= width || y >= height {
				continue
			}
			i := (int(y)*int(width) + int(x)) * 4
			pix[i+0] = 0xff
			pix[i+1] = 0xff
			pix[i+2] = 0xff
			pix[i+3] = 0xff
		}
	}
}

func (d *demo) OnRenderError(err error, flow *window.ControlFlow) {
	log.Printf("present failed: %v", err)
	*flow = window.Exit
}

func (d *demo) OnInput(key event.Key) {
	if key.Code == int32(sdl.K_ESCAPE) {
		d.escapeHeld = key.Pressed
	}
}

func (d *demo) OnClick(btn event.MouseButton) {
	util.Trace("click button=%d pressed=%v", btn.Button, btn.Pressed)
}

func (d *demo) OnScroll(wheel event.Wheel) {
	d.offset += float64(wheel.DeltaY) * 10
}

func (d *demo) OnCursorMove(x, y float64) {
	d.cursorX, d.cursorY = x, y
}

func (d *demo) OnCursorInWindow(inside bool) {
	d.inWindow = inside
}

func (d *demo) OnResize(width, height int32) {
	log.Printf("resized to %dx%d", width, height)
}

func (d *demo) OnFocus(gained bool) {
	util.Trace("focus gained=%v", gained)
}

func (d *demo) OnClose() {}

func (d *demo) OnQuit() {
	log.Printf("quit after %d frames", d.frames)
}

func (d *demo) OnMisc(ev event.Event) {
	util.Trace("misc event %T", ev)
}

func run() error {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	trace := flag.Bool("trace", false, "log dispatch tracing")
	flag.Parse()
	if *trace {
		util.EnableTrace()
	}

	app, err := window.Create(window.Config{
		Title:     fmt.Sprintf("quixel demo (%dx%d)", *width, *height),
		Width:     int32(*width),
		Height:    int32(*height),
		Resizable: true,
	}, &demo{})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
