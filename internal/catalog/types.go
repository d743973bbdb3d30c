package catalog

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"space-lab/internal/vmath"
)

// Kind is the 3D primitive a part is drawn with.
type Kind string

const (
	KindBox      Kind = "box"
	KindCylinder Kind = "cylinder"
	KindSphere   Kind = "sphere"
	KindCapsule  Kind = "capsule"
)

// ModelType groups models for the sidebar glyph and the inspector's educational note.
type ModelType string

const (
	TypeDrone   ModelType = "drone"
	TypeCubeSat ModelType = "cubesat"
	TypeCanSat  ModelType = "cansat"
)

// GeometryDescriptor describes how a part is drawn and where it sits in both layouts.
// Dimensions depend on Kind:
//
//	box:              width, height, depth
//	cylinder/capsule: top radius, bottom radius, height, radial segments
//	sphere:           radius, width segments, height segments
type GeometryDescriptor struct {
	Kind       Kind        `yaml:"kind" validate:"required,oneof=box cylinder sphere capsule"`
	Dimensions []float32   `yaml:"dimensions" validate:"required,dive,gt=0"`
	Color      string      `yaml:"color" validate:"required"`
	Position   vmath.Vec3  `yaml:"position"`
	Exploded   *vmath.Vec3 `yaml:"exploded,omitempty"`
	Rotation   *vmath.Vec3 `yaml:"rotation,omitempty"`
}

// RestRotation returns the resting orientation (Euler XYZ, radians); zero when unset.
func (g GeometryDescriptor) RestRotation() vmath.Vec3 {
	if g.Rotation == nil {
		return vmath.Vec3{}
	}
	return *g.Rotation
}

// HasExploded reports whether the part moves when the model is dismantled.
func (g GeometryDescriptor) HasExploded() bool {
	return g.Exploded != nil
}

// Spec is one label/value row of a part's technical specifications.
type Spec struct {
	Label string
	Value string
}

// Specs keeps specification rows in catalog order.
type Specs []Spec

// UnmarshalYAML decodes a YAML mapping, preserving key order. Values are kept as
// their literal text so "14.8V (4S)" and "28%" survive untouched.
func (s *Specs) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: specs must be a mapping", n.Line)
	}
	out := make(Specs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: spec entries must be scalar", k.Line)
		}
		out = append(out, Spec{Label: k.Value, Value: v.Value})
	}
	*s = out
	return nil
}

// Part is one labeled component of a model.
type Part struct {
	ID          string              `yaml:"id" validate:"required"`
	Template    string              `yaml:"template,omitempty"`
	Name        string              `yaml:"name" validate:"required"`
	Description string              `yaml:"description"`
	IconName    string              `yaml:"icon"`
	Color       string              `yaml:"color"`
	Specs       Specs               `yaml:"specs,omitempty"`
	Geometry    *GeometryDescriptor `yaml:"geometry,omitempty"`
}

// Model is a trainable vehicle with its ordered parts.
type Model struct {
	ID          string    `yaml:"id" validate:"required"`
	Name        string    `yaml:"name" validate:"required"`
	Type        ModelType `yaml:"type" validate:"required,oneof=drone cubesat cansat"`
	Description string    `yaml:"description"`
	Image       string    `yaml:"image"`
	Parts       []Part    `yaml:"parts" validate:"required,min=1,dive"`
}

// CourseModule is one curriculum entry on the course page.
type CourseModule struct {
	ID       string   `yaml:"id" validate:"required"`
	Title    string   `yaml:"title" validate:"required"`
	Duration string   `yaml:"duration"`
	Topics   []string `yaml:"topics"`
}

// Feature is a highlight card on the course page.
type Feature struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text"`
}

// Portal holds the static course page copy.
type Portal struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Headline string    `yaml:"headline"`
	Intro    string    `yaml:"intro"`
	Footer   string    `yaml:"footer"`
	Features []Feature `yaml:"features" validate:"dive"`
}

// Catalog is the full static content set. It is built once and never mutated.
type Catalog struct {
	Portal    Portal          `yaml:"portal"`
	Templates map[string]Part `yaml:"templates,omitempty" validate:"-"`
	Courses   []CourseModule  `yaml:"courses" validate:"dive"`
	Models    []Model         `yaml:"models" validate:"required,min=1,dive"`
}

// Model looks up a model by id.
func (c *Catalog) Model(id string) (*Model, bool) {
	for i := range c.Models {
		if c.Models[i].ID == id {
			return &c.Models[i], true
		}
	}
	return nil, false
}

// First returns the model the viewer opens with.
func (c *Catalog) First() *Model {
	return &c.Models[0]
}

// Part looks up a part by id within the model.
func (m *Model) Part(id string) (*Part, bool) {
	for i := range m.Parts {
		if m.Parts[i].ID == id {
			return &m.Parts[i], true
		}
	}
	return nil, false
}

// Arity is the number of dimensions a kind takes, and whether the kind is known.
func Arity(k Kind) (int, bool) {
	switch k {
	case KindBox, KindSphere:
		return 3, true
	case KindCylinder, KindCapsule:
		return 4, true
	}
	return 0, false
}

// FallbackExploded is where a part without geometry floats when dismantled.
var FallbackExploded = vmath.V3(0, 2, 0)

// Descriptor returns the part's geometry, or a small box in the part's UI color
// sitting at the origin when the catalog gives it none.
func (p *Part) Descriptor() GeometryDescriptor {
	if p.Geometry != nil {
		return *p.Geometry
	}
	exploded := FallbackExploded
	return GeometryDescriptor{
		Kind:       KindBox,
		Dimensions: []float32{0.5, 0.5, 0.5},
		Color:      p.Color,
		Exploded:   &exploded,
	}
}
