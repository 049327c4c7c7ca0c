package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Assign the frame rows to the pool of tracers. This function returns,
	// for each tracer in the input list, the rows it should render in
	// ascending order. Every row is assigned to exactly one tracer.
	Schedule(tracers []Tracer, frameH uint32) [][]uint32
}

// The round-robin scheduler assigns row y to tracer y mod len(tracers).
type roundRobinScheduler struct{}

// Create a new round-robin scheduler instance.
func NewRoundRobinScheduler() BlockScheduler {
	return roundRobinScheduler{}
}

func (roundRobinScheduler) Schedule(tracers []Tracer, frameH uint32) [][]uint32 {
	assignment := make([][]uint32, len(tracers))
	if len(tracers) == 0 {
		return assignment
	}

	for y := uint32(0); y < frameH; y++ {
		idx := int(y) % len(tracers)
		assignment[idx] = append(assignment[idx], y)
	}
	return assignment
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	rowQuota []uint32
}

// Create a new perfect scheduler instance
func NewPerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Assign rows using feedback collected from previous frames.
//
// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
//
// Otherwise the tracer speed estimates are used. Rows are interleaved so
// that every tracer samples all parts of the frame.
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) [][]uint32 {
	assignment := make([][]uint32, len(tracers))
	if len(tracers) == 0 || frameH == 0 {
		return assignment
	}

	weights := make([]float64, len(tracers))
	useStats := len(sch.rowQuota) == len(tracers)
	for idx, tr := range tracers {
		stats := tr.Stats()
		if stats == nil || stats.BlockH == 0 || stats.BlockTime <= 0 {
			useStats = false
			break
		}
		weights[idx] = float64(stats.BlockH) / float64(stats.BlockTime)
	}
	if !useStats {
		for idx, tr := range tracers {
			weights[idx] = math.Max(float64(tr.SpeedEstimate()), 0)
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return NewRoundRobinScheduler().Schedule(tracers, frameH)
	}

	scaler := float64(frameH) / total
	sch.rowQuota = make([]uint32, len(tracers))
	var scheduledRows uint32
	for idx, w := range weights {
		sch.rowQuota[idx] = uint32(math.Floor(w * scaler))
		scheduledRows += sch.rowQuota[idx]
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	sch.rowQuota[0] += frameH - scheduledRows

	// Deal rows in turns skipping tracers that have used up their quota.
	remaining := append([]uint32(nil), sch.rowQuota...)
	idx := 0
	for y := uint32(0); y < frameH; y++ {
		for remaining[idx] == 0 {
			idx = (idx + 1) % len(tracers)
		}
		assignment[idx] = append(assignment[idx], y)
		remaining[idx]--
		idx = (idx + 1) % len(tracers)
	}

	return assignment
}
