package constant

const (
	DEFAULT_WINDOW_TITLE  = "quixel"
	DEFAULT_WINDOW_WIDTH  = 800
	DEFAULT_WINDOW_HEIGHT = 600
	BYTES_PER_PIXEL       = 4
)
