package tracer

import "github.com/achilleasa/spheretrace/types"

type ChangeType uint8

const (
	// Replace the intersectable world (a scene.Hittable).
	SetWorld ChangeType = iota

	// Replace the camera (a *scene.Camera).
	SetCamera
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// The max number of bounces per path.
	MaxDepth uint32

	// The frame seed. Each row derives its own random stream from the
	// frame seed and its row index.
	Seed uint64

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block (in nanoseconds)
	BlockTime int64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline (single cpu core) implementation.
	SpeedEstimate() float32

	// Setup the tracer to write into the supplied frame buffer.
	Setup(frameW, frameH uint32, frameBuffer []types.Vec3) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Append a change to the tracer's update buffer.
	AppendChange(ChangeType, interface{})

	// Apply all pending changes from the update buffer.
	ApplyPendingChanges() error

	// Retrieve last frame statistics.
	Stats() *Stats
}
