package window

import (
	"fmt"

	"github.com/AstroTheRabbit/quixel/constant"
	"github.com/AstroTheRabbit/quixel/internal/platform"
)

// Surface is the CPU pixel buffer bound to the window's presentation
// mechanism. Its size always matches the window's physical size; the
// dispatcher resizes it whenever the window reports a size change.
type Surface struct {
	pres          platform.Presenter
	pix           []byte
	width, height int32
}

func newSurface(pres platform.Presenter, width, height int32) *Surface {
	return &Surface{
		pres:   pres,
		pix:    make([]byte, int(width)*int(height)*constant.BYTES_PER_PIXEL),
		width:  width,
		height: height,
	}
}

// Size returns the buffer's dimensions in pixels.
func (s *Surface) Size() (int32, int32) {
	return s.width, s.height
}

// Frame returns the pixel buffer: 4 bytes per pixel in B, G, R, A order,
// rows top to bottom with no padding. Writes become visible at the next
// presentation.
func (s *Surface) Frame() []byte {
	return s.pix
}

// Fill sets every pixel to the given color.
func (s *Surface) Fill(r, g, b, a byte) {
	for i := 0; i < len(s.pix); i += constant.BYTES_PER_PIXEL {
		s.pix[i+0] = b
		s.pix[i+1] = g
		s.pix[i+2] = r
		s.pix[i+3] = a
	}
}

// resize grows or shrinks the surface to the window's new physical size.
// The presentation output is resized before the buffer so writes always
// target the new size. Contents are not preserved.
func (s *Surface) resize(width, height int32) error {
	if err := s.pres.ResizeOutput(width, height); err != nil {
		return fmt.Errorf("resize output to %dx%d: %w", width, height, err)
	}
	if err := s.pres.ResizeTexture(width, height); err != nil {
		return fmt.Errorf("resize texture to %dx%d: %w", width, height, err)
	}
	s.pix = make([]byte, int(width)*int(height)*constant.BYTES_PER_PIXEL)
	s.width = width
	s.height = height
	return nil
}

// present uploads the buffer and shows it.
func (s *Surface) present() error {
	return s.pres.Present(s.pix, s.width, s.height)
}

func (s *Surface) destroy() {
	s.pres.Destroy()
}
