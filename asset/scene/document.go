package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	core "github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoObjects        = errors.New("scene: document does not define any objects")
	ErrMissingCenter    = errors.New("scene: sphere does not define a center")
	ErrAmbiguousCenter  = errors.New("scene: sphere defines both center and origin")
	ErrNoMaterial       = errors.New("scene: sphere does not define a material")
	ErrMultipleMaterial = errors.New("scene: sphere defines more than one material")
)

// A vector that can be written either as [x, y, z] or as {x: , y: , z: }.
type Vec3 types.Vec3

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		return v.fromSlice(arr)
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
		Z *float64 `json:"z"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("vector: expected [x, y, z] or {x, y, z}: %w", err)
	}
	return v.fromComponents(obj.X, obj.Y, obj.Z)
}

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr []float64
		if err := node.Decode(&arr); err != nil {
			return err
		}
		return v.fromSlice(arr)
	case yaml.MappingNode:
		var obj struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
			Z *float64 `yaml:"z"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		return v.fromComponents(obj.X, obj.Y, obj.Z)
	}
	return fmt.Errorf("vector: line %d: expected [x, y, z] or {x, y, z}", node.Line)
}

// Vectors are emitted as flow sequences.
func (v Vec3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(c, 'f', -1, 64),
		})
	}
	return node, nil
}

func (v *Vec3) fromSlice(arr []float64) error {
	if len(arr) != 3 {
		return fmt.Errorf("vector: expected 3 components; got %d", len(arr))
	}
	*v = Vec3{arr[0], arr[1], arr[2]}
	return nil
}

func (v *Vec3) fromComponents(x, y, z *float64) error {
	if x == nil || y == nil || z == nil {
		return errors.New("vector: expected x, y and z components")
	}
	*v = Vec3{*x, *y, *z}
	return nil
}

type CameraDoc struct {
	LookFrom     Vec3    `json:"look_from" yaml:"look_from"`
	LookAt       Vec3    `json:"look_at" yaml:"look_at"`
	Vup          Vec3    `json:"vup" yaml:"vup"`
	VFov         float64 `json:"vfov" yaml:"vfov"`
	AspectRatio  float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
	DefocusAngle float64 `json:"defocus_angle,omitempty" yaml:"defocus_angle,omitempty"`
	FocusDist    float64 `json:"focus_dist,omitempty" yaml:"focus_dist,omitempty"`
}

type LambertianDoc struct {
	Albedo Vec3 `json:"albedo" yaml:"albedo"`
}

type MetalDoc struct {
	Albedo Vec3    `json:"albedo" yaml:"albedo"`
	Fuzz   float64 `json:"fuzz" yaml:"fuzz"`
}

type DielectricDoc struct {
	IndexOfRefraction float64 `json:"index_of_refraction" yaml:"index_of_refraction"`
}

// An externally tagged material; exactly one variant must be set.
type MaterialDoc struct {
	Lambertian *LambertianDoc `json:"Lambertian,omitempty" yaml:"Lambertian,omitempty"`
	Metal      *MetalDoc      `json:"Metal,omitempty" yaml:"Metal,omitempty"`
	Dielectric *DielectricDoc `json:"Dielectric,omitempty" yaml:"Dielectric,omitempty"`
}

// A sphere definition. Origin is accepted as an alias for Center. Spheres
// with a Center2 move from Center to Center2 over the shutter interval.
type SphereDoc struct {
	Center   *Vec3       `json:"center,omitempty" yaml:"center,omitempty"`
	Origin   *Vec3       `json:"origin,omitempty" yaml:"origin,omitempty"`
	Center2  *Vec3       `json:"center2,omitempty" yaml:"center2,omitempty"`
	Radius   float64     `json:"radius" yaml:"radius"`
	Material MaterialDoc `json:"material" yaml:"material"`
}

// The serialized form of a scene.
type Document struct {
	Camera  CameraDoc   `json:"camera" yaml:"camera"`
	Objects []SphereDoc `json:"objects" yaml:"objects"`
}

// Decode a JSON document. Unknown fields are rejected.
func DecodeJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Decode a YAML document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoObjects
		}
		return nil, err
	}
	return &doc, nil
}

// Encode the document as indented JSON.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Encode the document as YAML.
func (d *Document) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// Check the document for values that cannot be rendered.
func (d *Document) Validate() error {
	if err := d.Camera.Validate(); err != nil {
		return err
	}
	if len(d.Objects) == 0 {
		return ErrNoObjects
	}
	for index := range d.Objects {
		if err := d.Objects[index].Validate(); err != nil {
			return fmt.Errorf("objects[%d]: %w", index, err)
		}
	}
	return nil
}

func (c *CameraDoc) Validate() error {
	switch {
	case c.AspectRatio <= 0:
		return fmt.Errorf("camera: aspect ratio must be positive; got %f", c.AspectRatio)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("camera: vertical fov must be in (0, 180); got %f", c.VFov)
	case types.Vec3(c.Vup).NearZero():
		return errors.New("camera: vup must not be the zero vector")
	case c.LookFrom == c.LookAt:
		return errors.New("camera: look_from and look_at must differ")
	case types.Vec3(c.Vup).Cross(types.Vec3(c.LookFrom).Sub(types.Vec3(c.LookAt))).NearZero():
		return errors.New("camera: vup must not be parallel to the view direction")
	case c.DefocusAngle < 0:
		return fmt.Errorf("camera: defocus angle must not be negative; got %f", c.DefocusAngle)
	case c.FocusDist < 0:
		return fmt.Errorf("camera: focus distance must not be negative; got %f", c.FocusDist)
	}
	return nil
}

func (s *SphereDoc) Validate() error {
	if _, err := s.centerPoint(); err != nil {
		return err
	}
	if s.Radius < 0 {
		return fmt.Errorf("scene: sphere radius must not be negative; got %f", s.Radius)
	}
	return s.Material.Validate()
}

func (s *SphereDoc) centerPoint() (types.Vec3, error) {
	switch {
	case s.Center != nil && s.Origin != nil:
		return types.Vec3{}, ErrAmbiguousCenter
	case s.Center != nil:
		return types.Vec3(*s.Center), nil
	case s.Origin != nil:
		return types.Vec3(*s.Origin), nil
	}
	return types.Vec3{}, ErrMissingCenter
}

func (m *MaterialDoc) Validate() error {
	variants := 0
	if m.Lambertian != nil {
		variants++
	}
	if m.Metal != nil {
		variants++
		if m.Metal.Fuzz < 0 {
			return fmt.Errorf("scene: metal fuzz must not be negative; got %f", m.Metal.Fuzz)
		}
	}
	if m.Dielectric != nil {
		variants++
		if m.Dielectric.IndexOfRefraction <= 0 {
			return fmt.Errorf("scene: index of refraction must be positive; got %f", m.Dielectric.IndexOfRefraction)
		}
	}

	switch variants {
	case 0:
		return ErrNoMaterial
	case 1:
		return nil
	}
	return ErrMultipleMaterial
}

// Convert a validated material definition.
func (m *MaterialDoc) Material() core.Material {
	switch {
	case m.Lambertian != nil:
		return core.NewLambertian(types.Vec3(m.Lambertian.Albedo))
	case m.Metal != nil:
		return core.NewMetal(types.Vec3(m.Metal.Albedo), m.Metal.Fuzz)
	}
	return core.NewDielectric(m.Dielectric.IndexOfRefraction)
}

// Validate the document and convert it into a renderable scene.
func (d *Document) Scene() (*core.Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	sc := core.NewScene(core.CameraConfig{
		LookFrom:     types.Vec3(d.Camera.LookFrom),
		LookAt:       types.Vec3(d.Camera.LookAt),
		Up:           types.Vec3(d.Camera.Vup),
		VFov:         d.Camera.VFov,
		AspectRatio:  d.Camera.AspectRatio,
		DefocusAngle: d.Camera.DefocusAngle,
		FocusDist:    d.Camera.FocusDist,
	})

	for index := range d.Objects {
		obj := &d.Objects[index]
		center, _ := obj.centerPoint()

		var sphere core.Sphere
		if obj.Center2 != nil {
			sphere = core.NewMovingSphere(center, types.Vec3(*obj.Center2), obj.Radius, obj.Material.Material())
		} else {
			sphere = core.NewSphere(center, obj.Radius, obj.Material.Material())
		}
		if err := sc.AddSphere(sphere); err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", index, err)
		}
	}
	return sc, nil
}

// Convert a scene into its serialized form.
func FromScene(sc *core.Scene) *Document {
	cfg := sc.Camera
	d := &Document{
		Camera: CameraDoc{
			LookFrom:     Vec3(cfg.LookFrom),
			LookAt:       Vec3(cfg.LookAt),
			Vup:          Vec3(cfg.Up),
			VFov:         cfg.VFov,
			AspectRatio:  cfg.AspectRatio,
			DefocusAngle: cfg.DefocusAngle,
			FocusDist:    cfg.FocusDist,
		},
		Objects: make([]SphereDoc, len(sc.Objects)),
	}

	for index := range sc.Objects {
		s := &sc.Objects[index]
		center := Vec3(s.Center)
		obj := SphereDoc{Center: &center, Radius: s.Radius}
		if s.Moving {
			center2 := Vec3(s.CenterAt(1))
			obj.Center2 = &center2
		}

		switch s.Material.Type {
		case core.LambertianMaterial:
			obj.Material.Lambertian = &LambertianDoc{Albedo: Vec3(s.Material.Albedo)}
		case core.MetalMaterial:
			obj.Material.Metal = &MetalDoc{Albedo: Vec3(s.Material.Albedo), Fuzz: s.Material.Fuzz}
		case core.DielectricMaterial:
			obj.Material.Dielectric = &DielectricDoc{IndexOfRefraction: s.Material.IOR}
		}
		d.Objects[index] = obj
	}
	return d
}
