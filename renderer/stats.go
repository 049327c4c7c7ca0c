package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The number of rendered rows and the percentage of total frame area it represents.
	BlockH       uint32
	FramePercent float32

	// Render time for assigned rows
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
