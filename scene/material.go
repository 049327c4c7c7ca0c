package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/spheretrace/types"
)

type MaterialType uint8

const (
	LambertianMaterial MaterialType = iota
	MetalMaterial
	DielectricMaterial
)

func (t MaterialType) String() string {
	switch t {
	case LambertianMaterial:
		return "Lambertian"
	case MetalMaterial:
		return "Metal"
	case DielectricMaterial:
		return "Dielectric"
	}
	return fmt.Sprintf("MaterialType(%d)", uint8(t))
}

// Defines a scene material. The set of material types is closed; which
// fields are meaningful depends on Type.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Diffuse/reflective color (lambertian and metal materials).
	Albedo types.Vec3

	// Reflection perturbation (metal materials only).
	Fuzz float64

	// Index of refraction (dielectric materials only).
	IOR float64
}

// The outcome of a successful scatter event.
type ScatterResult struct {
	Attenuation types.Vec3
	Ray         Ray
}

// Create a diffuse material.
func NewLambertian(albedo types.Vec3) Material {
	return Material{Type: LambertianMaterial, Albedo: albedo}
}

// Create a reflective material.
func NewMetal(albedo types.Vec3, fuzz float64) Material {
	return Material{Type: MetalMaterial, Albedo: albedo, Fuzz: fuzz}
}

// Create a refractive material.
func NewDielectric(ior float64) Material {
	return Material{Type: DielectricMaterial, IOR: ior}
}

// Scatter an incoming ray off a surface. It returns false if the ray was
// absorbed.
func (m *Material) Scatter(rnd types.RandomSource, rayIn Ray, hit *HitRecord) (ScatterResult, bool) {
	switch m.Type {
	case LambertianMaterial:
		return m.scatterLambertian(rnd, rayIn, hit)
	case MetalMaterial:
		return m.scatterMetal(rnd, rayIn, hit)
	case DielectricMaterial:
		return m.scatterDielectric(rnd, rayIn, hit)
	}
	panic(fmt.Sprintf("material: unsupported material type %d", uint8(m.Type)))
}

func (m *Material) scatterLambertian(rnd types.RandomSource, rayIn Ray, hit *HitRecord) (ScatterResult, bool) {
	dir := hit.Normal.Add(types.RandomUnitVector(rnd))

	// Catch degenerate scatter direction
	if dir.NearZero() {
		dir = hit.Normal
	}

	return ScatterResult{
		Attenuation: m.Albedo,
		Ray:         Ray{Origin: hit.Point, Dir: dir, Time: rayIn.Time},
	}, true
}

func (m *Material) scatterMetal(rnd types.RandomSource, rayIn Ray, hit *HitRecord) (ScatterResult, bool) {
	dir := Reflect(rayIn.Dir.Normalize(), hit.Normal)
	if m.Fuzz != 0 {
		dir = dir.Add(types.RandomUnitVector(rnd).Mul(m.Fuzz))
	}

	if dir.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Attenuation: m.Albedo,
		Ray:         Ray{Origin: hit.Point, Dir: dir, Time: rayIn.Time},
	}, true
}

func (m *Material) scatterDielectric(rnd types.RandomSource, rayIn Ray, hit *HitRecord) (ScatterResult, bool) {
	ratio := m.IOR
	if hit.FrontFace {
		ratio = 1.0 / m.IOR
	}

	unitDir := rayIn.Dir.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ratio*sinTheta > 1.0 || Reflectance(cosTheta, ratio) > rnd.Float64() {
		dir = Reflect(unitDir, hit.Normal)
	} else {
		dir = Refract(unitDir, hit.Normal, ratio)
	}

	return ScatterResult{
		Attenuation: types.XYZ(1, 1, 1),
		Ray:         Ray{Origin: hit.Point, Dir: dir, Time: rayIn.Time},
	}, true
}

// Reflect v about the normal n.
func Reflect(v, n types.Vec3) types.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract the unit vector uv through a surface with normal n using Snell's
// law. etaRatio is the ratio of the incident to the transmitted medium IOR.
func Refract(uv, n types.Vec3, etaRatio float64) types.Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	perp := uv.Add(n.Mul(cosTheta)).Mul(etaRatio)
	parallel := n.Mul(-math.Sqrt(math.Abs(1.0 - perp.LenSq())))
	return perp.Add(parallel)
}

// Calculate Fresnel reflectance using Schlick's approximation.
func Reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
