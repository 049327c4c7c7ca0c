package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrNoSamples        = errors.New("renderer: samples per pixel must be at least 1")
	ErrInvalidFrameSize = errors.New("renderer: frame width must be at least 1")
)
