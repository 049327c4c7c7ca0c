package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/spheretrace/types"
)

// Camera settings as supplied by the scene description.
type CameraConfig struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	VFov float64

	AspectRatio float64

	// Aperture cone angle in degrees; values <= 0 disable depth of field.
	DefocusAngle float64

	// Distance to the plane of perfect focus. If <= 0, the distance
	// between LookFrom and LookAt is used.
	FocusDist float64
}

// The camera type generates primary rays for a frame of a particular size.
type Camera struct {
	Config CameraConfig

	FrameW uint32
	FrameH uint32

	// Camera frame basis vectors.
	U, V, W types.Vec3

	// Location of the center of pixel (0, 0) which is the top-left pixel.
	Pixel00 types.Vec3

	// Offsets to the pixel to the right and to the pixel below.
	PixelDeltaU types.Vec3
	PixelDeltaV types.Vec3

	// Defocus disk horizontal and vertical radius.
	DefocusDiskU types.Vec3
	DefocusDiskV types.Vec3
}

// Get the frame height for a frame of the given width and aspect ratio.
func FrameHeight(frameW uint32, aspectRatio float64) uint32 {
	frameH := uint32(float64(frameW) / aspectRatio)
	if frameH < 1 {
		frameH = 1
	}
	return frameH
}

// Create a camera that renders frames of width frameW. The frame height is
// derived from the configured aspect ratio.
func NewCamera(cfg CameraConfig, frameW uint32) *Camera {
	c := &Camera{
		Config: cfg,
		FrameW: frameW,
		FrameH: FrameHeight(frameW, cfg.AspectRatio),
	}
	c.Update()
	return c
}

// Recalculate the camera basis and viewport from the camera config.
func (c *Camera) Update() {
	cfg := c.Config

	focusDist := cfg.FocusDist
	if focusDist <= 0 {
		focusDist = cfg.LookFrom.Sub(cfg.LookAt).Len()
	}

	theta := degToRad(cfg.VFov)
	viewportH := 2 * math.Tan(theta/2) * focusDist
	viewportW := viewportH * float64(c.FrameW) / float64(c.FrameH)

	c.W = cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	c.U = cfg.Up.Cross(c.W).Normalize()
	c.V = c.W.Cross(c.U)

	// Viewport edges; V points down the image rows.
	viewportU := c.U.Mul(viewportW)
	viewportV := c.V.Neg().Mul(viewportH)

	c.PixelDeltaU = viewportU.Div(float64(c.FrameW))
	c.PixelDeltaV = viewportV.Div(float64(c.FrameH))

	viewportUpperLeft := cfg.LookFrom.
		Sub(c.W.Mul(focusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.Pixel00 = viewportUpperLeft.Add(c.PixelDeltaU.Add(c.PixelDeltaV).Mul(0.5))

	defocusRadius := focusDist * math.Tan(degToRad(cfg.DefocusAngle/2))
	c.DefocusDiskU = c.U.Mul(defocusRadius)
	c.DefocusDiskV = c.V.Mul(defocusRadius)
}

// Generate a ray through a random point inside pixel (x, y). The ray
// originates from the camera eye or, when depth of field is enabled, from a
// random point on the defocus disk.
func (c *Camera) GetRay(x, y uint32, rnd types.RandomSource) Ray {
	offsetX := rnd.Float64() - 0.5
	offsetY := rnd.Float64() - 0.5
	sample := c.Pixel00.
		Add(c.PixelDeltaU.Mul(float64(x) + offsetX)).
		Add(c.PixelDeltaV.Mul(float64(y) + offsetY))

	origin := c.Config.LookFrom
	if c.Config.DefocusAngle > 0 {
		p := types.RandomInUnitDisk(rnd)
		origin = origin.Add(c.DefocusDiskU.Mul(p[0])).Add(c.DefocusDiskV.Mul(p[1]))
	}

	return Ray{
		Origin: origin,
		Dir:    sample.Sub(origin),
		Time:   rnd.Float64(),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera %dx%d:\nEye   : (%3.3f, %3.3f, %3.3f)\nU     : (%3.3f, %3.3f, %3.3f)\nV     : (%3.3f, %3.3f, %3.3f)\nW     : (%3.3f, %3.3f, %3.3f)",
		c.FrameW, c.FrameH,
		c.Config.LookFrom[0], c.Config.LookFrom[1], c.Config.LookFrom[2],
		c.U[0], c.U[1], c.U[2],
		c.V[0], c.V[1], c.V[2],
		c.W[0], c.W[1], c.W[2],
	)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
