package renderer

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/achilleasa/spheretrace/tracer/cpu"
	"github.com/achilleasa/spheretrace/types"
)

// Stream id used for seeding the BVH axis selection. Row streams use the
// row index so this value lies outside any frame height.
const bvhSeedStream = 1<<64 - 1

// The default renderer splits each frame into rows and distributes them to a
// pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	sync.Mutex

	// The scene and the camera generating primary rays.
	scene  *scene.Scene
	camera *scene.Camera

	// Attached tracers and the scheduler assigning rows to them.
	tracers   []tracer.Tracer
	scheduler tracer.BlockScheduler

	options     Options
	frameBuffer *FrameBuffer

	// Statistics for the last rendered frame.
	stats FrameStats
}

// Create a new default renderer for the scene using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera.AspectRatio <= 0 || sc.Camera.VFov <= 0 || sc.Camera.LookFrom == sc.Camera.LookAt {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW == 0 {
		return nil, ErrInvalidFrameSize
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrNoSamples
	}
	if scheduler == nil {
		scheduler = tracer.NewRoundRobinScheduler()
	}

	camera := scene.NewCamera(sc.Camera, opts.FrameW)
	r := &defaultRenderer{
		logger:      log.New("renderer"),
		scene:       sc,
		camera:      camera,
		scheduler:   scheduler,
		options:     opts,
		frameBuffer: NewFrameBuffer(camera.FrameW, camera.FrameH),
	}

	bvhRnd := types.NewRandomSource(opts.Seed, bvhSeedStream)
	if opts.Seed == 0 {
		bvhRnd = types.NewRandomSource(rand.Uint64(), rand.Uint64())
	}
	world := sc.World(opts.UseBvh, bvhRnd)

	for index := 0; index < opts.Workers(); index++ {
		tr := cpu.NewTracer(fmt.Sprintf("cpu-%d", index))
		err := tr.Setup(camera.FrameW, camera.FrameH, r.frameBuffer.Pixels)
		if err != nil {
			r.logger.Warningf("skipping tracer %s due to setup error: %s", tr.Id(), err.Error())
			tr.Close()
			continue
		}

		tr.AppendChange(tracer.SetWorld, world)
		tr.AppendChange(tracer.SetCamera, camera)
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	r.logger.Infof(
		"attached %d tracers; frame: %dx%d, spp: %d, max depth: %d, objects: %d, bvh: %t",
		len(r.tracers), camera.FrameW, camera.FrameH, opts.SamplesPerPixel, opts.MaxDepth, len(sc.Objects), opts.UseBvh,
	)
	return r, nil
}

// Render a frame. It returns once every row has been traced or after the
// first tracer error.
func (r *defaultRenderer) Render() error {
	r.Lock()
	defer r.Unlock()

	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	start := time.Now()
	for _, tr := range r.tracers {
		if err := tr.ApplyPendingChanges(); err != nil {
			return err
		}
	}

	seed := r.options.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r.logger.Debugf("frame seed: %d", seed)

	frameH := r.camera.FrameH
	assignment := r.scheduler.Schedule(r.tracers, frameH)

	doneChan := make(chan uint32, frameH)
	errChan := make(chan error, frameH)
	for index, tr := range r.tracers {
		for _, y := range assignment[index] {
			tr.Enqueue(tracer.BlockRequest{
				BlockY:          y,
				BlockH:          1,
				SamplesPerPixel: r.options.SamplesPerPixel,
				MaxDepth:        r.options.MaxDepth,
				Seed:            seed,
				DoneChan:        doneChan,
				ErrChan:         errChan,
			})
		}
	}

	// Wait for all rows to complete
	var rowsDone, lastPercent uint32
	logProgress := log.IsEnabled(log.Info)
	for rowsDone < frameH {
		select {
		case rows := <-doneChan:
			rowsDone += rows
			if !logProgress {
				continue
			}
			if percent := 100 * rowsDone / frameH; percent/10 > lastPercent/10 {
				r.logger.Infof("rendered %d/%d rows (%d%%)", rowsDone, frameH, percent)
				lastPercent = percent
			}
		case err := <-errChan:
			return err
		}
	}

	r.stats.RenderTime = time.Since(start)
	r.stats.Tracers = make([]TracerStat, len(r.tracers))
	for index, tr := range r.tracers {
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       uint32(len(assignment[index])),
			FramePercent: 100.0 * float32(len(assignment[index])) / float32(frameH),
		}
		if stat.BlockH > 0 {
			stat.RenderTime = time.Duration(tr.Stats().BlockTime)
		}
		r.stats.Tracers[index] = stat
	}

	r.logger.Noticef("rendered %dx%d frame in %s", r.camera.FrameW, frameH, r.stats.RenderTime)
	return nil
}

// Get the frame buffer.
func (r *defaultRenderer) Frame() *FrameBuffer {
	return r.frameBuffer
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	r.Lock()
	defer r.Unlock()

	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get last frame stats.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}
