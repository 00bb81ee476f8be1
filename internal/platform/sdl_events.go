package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/AstroTheRabbit/quixel/event"
)

// convert maps a raw SDL event to its event package variant. Window
// sub-events outside the handled set are dropped (nil); any other SDL event
// is passed through wrapped in event.Unknown.
func convert(raw sdl.Event) event.Event {
	switch e := raw.(type) {
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return event.Resized{Width: e.Data1, Height: e.Data2}
		case sdl.WINDOWEVENT_RESIZED:
			// SIZE_CHANGED always precedes RESIZED; deliver only once.
			return nil
		case sdl.WINDOWEVENT_CLOSE:
			return event.CloseRequested{}
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return event.FocusChanged{Gained: true}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return event.FocusChanged{Gained: false}
		case sdl.WINDOWEVENT_ENTER:
			return event.CursorEntered{}
		case sdl.WINDOWEVENT_LEAVE:
			return event.CursorLeft{}
		default:
			return nil
		}
	case *sdl.QuitEvent:
		return event.Destroyed{}
	case *sdl.KeyboardEvent:
		return event.Key{
			Code:     int32(e.Keysym.Sym),
			Scancode: uint32(e.Keysym.Scancode),
			Mod:      e.Keysym.Mod,
			Pressed:  e.Type == sdl.KEYDOWN,
			Repeat:   e.Repeat != 0,
		}
	case *sdl.MouseMotionEvent:
		return event.CursorMoved{X: float64(e.X), Y: float64(e.Y)}
	case *sdl.MouseWheelEvent:
		return event.Wheel{
			DeltaX:    float32(e.X),
			DeltaY:    float32(e.Y),
			Direction: e.Direction,
		}
	case *sdl.MouseButtonEvent:
		return event.MouseButton{
			Button:  e.Button,
			Pressed: e.State == sdl.PRESSED,
			Clicks:  e.Clicks,
			X:       e.X,
			Y:       e.Y,
		}
	default:
		return event.Unknown{Raw: raw}
	}
}
