package scene

import (
	"github.com/achilleasa/spheretrace/types"
)

// Build the random spheres showcase: a large ground sphere, a grid of small
// spheres with random materials (diffuse ones bounce upwards during the
// exposure) and three large feature spheres.
func Generate(rnd types.RandomSource) *Document {
	doc := &Document{
		Camera: CameraDoc{
			LookFrom:     Vec3{13, 2, 3},
			LookAt:       Vec3{0, 0, 0},
			Vup:          Vec3{0, 1, 0},
			VFov:         20,
			AspectRatio:  16.0 / 9.0,
			DefocusAngle: 0.6,
			FocusDist:    10,
		},
	}

	doc.addSphere(Vec3{0, -1000, 0}, nil, 1000, lambertian(Vec3{0.5, 0.5, 0.5}))

	clearance := types.XYZ(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rnd.Float64()
			center := types.XYZ(float64(a)+0.9*rnd.Float64(), 0.2, float64(b)+0.9*rnd.Float64())
			if center.Sub(clearance).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := types.RandomVec3(rnd, 0, 1).MulVec(types.RandomVec3(rnd, 0, 1))
				center2 := Vec3(center.Add(types.XYZ(0, types.RandomRange(rnd, 0, 0.5), 0)))
				doc.addSphere(Vec3(center), &center2, 0.2, lambertian(Vec3(albedo)))
			case chooseMat < 0.95:
				albedo := types.RandomVec3(rnd, 0.5, 1)
				fuzz := types.RandomRange(rnd, 0, 0.5)
				doc.addSphere(Vec3(center), nil, 0.2, MaterialDoc{Metal: &MetalDoc{Albedo: Vec3(albedo), Fuzz: fuzz}})
			default:
				doc.addSphere(Vec3(center), nil, 0.2, dielectric(1.5))
			}
		}
	}

	doc.addSphere(Vec3{0, 1, 0}, nil, 1.0, dielectric(1.5))
	doc.addSphere(Vec3{-4, 1, 0}, nil, 1.0, lambertian(Vec3{0.4, 0.2, 0.1}))
	doc.addSphere(Vec3{4, 1, 0}, nil, 1.0, MaterialDoc{Metal: &MetalDoc{Albedo: Vec3{0.7, 0.6, 0.5}, Fuzz: 0}})

	return doc
}

func (d *Document) addSphere(center Vec3, center2 *Vec3, radius float64, mat MaterialDoc) {
	d.Objects = append(d.Objects, SphereDoc{
		Center:   &center,
		Center2:  center2,
		Radius:   radius,
		Material: mat,
	})
}

func lambertian(albedo Vec3) MaterialDoc {
	return MaterialDoc{Lambertian: &LambertianDoc{Albedo: albedo}}
}

func dielectric(ior float64) MaterialDoc {
	return MaterialDoc{Dielectric: &DielectricDoc{IndexOfRefraction: ior}}
}
