// Package event defines the window event variants delivered to a
// window.Processor. It is separate from the window package so that the
// platform layer can produce events without a dependency cycle.
package event

// Event is one of the variant structs below. Handlers inspect it with a
// type switch; variants not listed here only ever appear wrapped in Unknown.
type Event interface{}

// Resized reports the window's new physical pixel size.
type Resized struct {
	Width, Height int32
}

// CloseRequested is sent when the user asks the window to close.
type CloseRequested struct{}

// Destroyed is sent when the platform tears the event loop down.
type Destroyed struct{}

type FocusChanged struct {
	Gained bool
}

// Key carries a raw keyboard event. Code and Scancode are the platform's
// key and scan codes, forwarded unchanged.
type Key struct {
	Code     int32
	Scancode uint32
	Mod      uint16
	Pressed  bool
	Repeat   bool
}

// CursorMoved carries the cursor position in window coordinates.
type CursorMoved struct {
	X, Y float64
}

type CursorEntered struct{}

type CursorLeft struct{}

// Wheel carries a scroll delta. Direction is the platform's scroll
// direction value (normal or flipped), forwarded unchanged.
type Wheel struct {
	DeltaX, DeltaY float32
	Direction      uint32
}

// MouseButton carries a button press or release.
type MouseButton struct {
	Button  uint8
	Pressed bool
	Clicks  uint8
	X, Y    int32
}

// Unknown wraps a platform event outside the named categories. Raw holds
// the platform's own event value for processor-defined handling.
type Unknown struct {
	Raw interface{}
}
