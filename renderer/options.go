package renderer

import "runtime"

type Options struct {
	// Frame width. The frame height is derived from the camera aspect ratio.
	FrameW uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Max number of bounces per path.
	MaxDepth uint32

	// Number of cpu tracers. Values <= 0 select runtime.NumCPU().
	NumWorkers int

	// The frame seed. A zero value selects a random seed per frame; any
	// other value makes renders reproducible.
	Seed uint64

	// Use a BVH for intersection tests instead of a linear scan.
	UseBvh bool
}

// Get the default render options.
func DefaultOptions() Options {
	return Options{
		FrameW:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		UseBvh:          true,
	}
}

// Get the number of tracers that will be attached for these options.
func (o Options) Workers() int {
	if o.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return o.NumWorkers
}
