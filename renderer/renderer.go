package renderer

type Renderer interface {
	// Render frame.
	Render() error

	// Get the frame buffer holding the last rendered frame.
	Frame() *FrameBuffer

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
