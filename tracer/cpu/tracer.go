package cpu

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/achilleasa/spheretrace/types"
)

var (
	ErrNotSetup       = errors.New("cpu tracer: tracer has not been setup")
	ErrNoWorld        = errors.New("cpu tracer: no world data")
	ErrNoCamera       = errors.New("cpu tracer: no camera data")
	ErrBlockOutOfView = errors.New("cpu tracer: block request exceeds frame bounds")
	ErrNoSamples      = errors.New("cpu tracer: block request has no samples per pixel")
)

type cpuTracer struct {
	logger log.Logger

	// Guards the worker lifecycle.
	sync.Mutex
	wg sync.WaitGroup

	// Guards the frame buffer, the update buffer and the committed scene
	// data which are read by the worker.
	dataMutex sync.RWMutex

	// The tracer id.
	id string

	// The frame dimensions and the shared frame buffer. Each request only
	// writes to the rows it covers.
	frameW      uint32
	frameH      uint32
	frameBuffer []types.Vec3

	// A buffer for queuing updates. Updates are grouped by type and
	// latest updates always overwrite the previous ones.
	updateBuffer map[tracer.ChangeType]interface{}

	// The committed scene data.
	world  scene.Hittable
	camera *scene.Camera

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for the current frame.
	stats *tracer.Stats
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		updateBuffer: make(map[tracer.ChangeType]interface{}, 0),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Each cpu tracer drives a single core.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach the frame buffer and start the worker.
func (tr *cpuTracer) Setup(frameW, frameH uint32, frameBuffer []types.Vec3) error {
	tr.Lock()
	defer tr.Unlock()

	if frameW == 0 || frameH == 0 {
		return fmt.Errorf("cpu tracer: invalid frame dimensions %dx%d", frameW, frameH)
	}
	if len(frameBuffer) != int(frameW*frameH) {
		return fmt.Errorf("cpu tracer: frame buffer size %d does not match frame dimensions %dx%d", len(frameBuffer), frameW, frameH)
	}

	// Shut down a worker from a previous setup so the queue can be resized.
	tr.stopWorker()

	tr.dataMutex.Lock()
	tr.frameW = frameW
	tr.frameH = frameH
	tr.frameBuffer = frameBuffer
	tr.dataMutex.Unlock()

	tr.blockReqChan = make(chan tracer.BlockRequest, frameH)
	tr.startWorker()

	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.stopWorker()
	tr.blockReqChan = nil

	tr.dataMutex.Lock()
	tr.world = nil
	tr.camera = nil
	tr.frameBuffer = nil
	tr.dataMutex.Unlock()
}

// Enqueue block request. The queue holds a full frame worth of rows.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	if tr.blockReqChan == nil {
		blockReq.ErrChan <- ErrNotSetup
		return
	}
	tr.blockReqChan <- blockReq
}

// Append a change to the tracer's update buffer.
func (tr *cpuTracer) AppendChange(changeType tracer.ChangeType, data interface{}) {
	tr.dataMutex.Lock()
	defer tr.dataMutex.Unlock()

	tr.updateBuffer[changeType] = data
}

// Commit queued changes and reset the frame statistics. It must not be
// called while a frame is being rendered.
func (tr *cpuTracer) ApplyPendingChanges() error {
	tr.dataMutex.Lock()
	defer tr.dataMutex.Unlock()

	for changeType, data := range tr.updateBuffer {
		switch changeType {
		case tracer.SetWorld:
			world, ok := data.(scene.Hittable)
			if !ok {
				return fmt.Errorf("cpu tracer: expected scene.Hittable for world change; got %T", data)
			}
			tr.world = world
		case tracer.SetCamera:
			camera, ok := data.(*scene.Camera)
			if !ok {
				return fmt.Errorf("cpu tracer: expected *scene.Camera for camera change; got %T", data)
			}
			tr.camera = camera
		default:
			return fmt.Errorf("cpu tracer: unsupported change type %d", changeType)
		}
	}

	tr.updateBuffer = make(map[tracer.ChangeType]interface{}, 0)
	tr.stats.BlockH = 0
	tr.stats.BlockTime = 0
	return nil
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests. This method is
// meant to be called while holding tr.Lock()
func (tr *cpuTracer) startWorker() {
	// Worker already running
	if tr.closeChan != nil {
		return
	}

	tr.closeChan = make(chan struct{}, 0)
	readyChan := make(chan struct{}, 0)
	blockReqChan := tr.blockReqChan
	closeChan := tr.closeChan
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		var startTime time.Time
		var err error
		close(readyChan)
		for {
			select {
			case blockReq = <-blockReqChan:
				startTime = time.Now()

				// Render block and reply with our completion status
				err = tr.renderBlock(&blockReq)
				if err != nil {
					tr.logger.Errorf("failed to render rows [%d, %d): %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, err.Error())
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockH += blockReq.BlockH
				tr.stats.BlockTime += time.Since(startTime).Nanoseconds()

				blockReq.DoneChan <- blockReq.BlockH
			case <-closeChan:
				// Ack close
				closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Stop the worker if it is running. This method is meant to be called while
// holding tr.Lock()
func (tr *cpuTracer) stopWorker() {
	if tr.closeChan == nil {
		return
	}

	tr.closeChan <- struct{}{}

	// wait for worker to ack close and shutdown channel
	<-tr.closeChan
	close(tr.closeChan)
	tr.wg.Wait()
	tr.closeChan = nil
}

// Render block.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) error {
	tr.dataMutex.RLock()
	world, camera, frameBuffer := tr.world, tr.camera, tr.frameBuffer
	frameW, frameH := tr.frameW, tr.frameH
	tr.dataMutex.RUnlock()

	switch {
	case frameBuffer == nil:
		return ErrNotSetup
	case world == nil:
		return ErrNoWorld
	case camera == nil:
		return ErrNoCamera
	case blockReq.SamplesPerPixel == 0:
		return ErrNoSamples
	case blockReq.BlockY+blockReq.BlockH > frameH:
		return ErrBlockOutOfView
	}

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		row := frameBuffer[y*frameW : (y+1)*frameW]
		RenderRow(row, y, camera, world, blockReq.SamplesPerPixel, blockReq.MaxDepth, blockReq.Seed)
	}

	return nil
}

// Render frame row y into row. The row uses a private random stream derived
// from (seed, y) so its contents do not depend on which tracer renders it.
func RenderRow(row []types.Vec3, y uint32, camera *scene.Camera, world scene.Hittable, samplesPerPixel, maxDepth uint32, seed uint64) {
	rnd := types.NewRandomSource(seed, uint64(y))
	scale := 1.0 / float64(samplesPerPixel)

	for x := range row {
		var color types.Vec3
		for sample := uint32(0); sample < samplesPerPixel; sample++ {
			ray := camera.GetRay(uint32(x), y, rnd)
			color = color.Add(RayColor(ray, world, maxDepth, rnd))
		}
		row[x] = LinearToGamma(color.Mul(scale))
	}
}
