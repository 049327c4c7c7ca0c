package scene

import (
	"fmt"

	"github.com/achilleasa/spheretrace/types"
)

type Scene struct {
	Camera CameraConfig

	Objects []Sphere
}

func NewScene(camera CameraConfig) *Scene {
	return &Scene{
		Camera:  camera,
		Objects: make([]Sphere, 0),
	}
}

// Add a sphere to the scene.
func (s *Scene) AddSphere(sphere Sphere) error {
	if sphere.Radius < 0 {
		return fmt.Errorf("scene: sphere radius must not be negative; got %f", sphere.Radius)
	}
	s.Objects = append(s.Objects, sphere)
	return nil
}

// Get a Hittable for the scene objects. If useBvh is true a BVH is built using
// rnd for selecting split axes; otherwise the objects are tested linearly.
// Scenes without objects always use the linear list.
func (s *Scene) World(useBvh bool, rnd types.RandomSource) Hittable {
	if useBvh && len(s.Objects) > 0 {
		return BuildBvh(s.Objects, rnd)
	}
	return SphereList(s.Objects)
}

// Count the scene objects per material type.
func (s *Scene) MaterialCounts() map[MaterialType]int {
	counts := make(map[MaterialType]int)
	for index := range s.Objects {
		counts[s.Objects[index].Material.Type]++
	}
	return counts
}
