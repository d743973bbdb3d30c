package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-lab/internal/vmath"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Models, 7)
	assert.Equal(t, "drone-1", c.First().ID)
	assert.Len(t, c.Courses, 4)
	assert.Len(t, c.Portal.Features, 3)

	quad, ok := c.Model("drone-1")
	require.True(t, ok)
	assert.Equal(t, TypeDrone, quad.Type)
	require.Len(t, quad.Parts, 8)

	fc := quad.Parts[0]
	assert.Equal(t, "p1", fc.ID)
	assert.Equal(t, "Flight Controller", fc.Name)
	require.NotNil(t, fc.Geometry)
	assert.Equal(t, KindBox, fc.Geometry.Kind)

	fl, ok := quad.Part("p3")
	require.True(t, ok)
	assert.Equal(t, "Brushless Motor (FL)", fl.Name)
	assert.Equal(t, "Provides thrust. High efficiency and durability.", fl.Description)
	assert.Equal(t, "Fan", fl.IconName)
	require.NotNil(t, fl.Geometry.Exploded)
	assert.Equal(t, float32(-2.5), fl.Geometry.Exploded.X())

	hex, ok := c.Model("drone-2")
	require.True(t, ok)
	require.Len(t, hex.Parts, 10)
	gimbal, ok := hex.Part("p8")
	require.True(t, ok)
	assert.Nil(t, gimbal.Geometry, "hexacopter gimbal uses the fallback mesh")
	assert.Equal(t, "Motor 6", hex.Parts[9].Name)

	// Aliased part lists decode to value-equal copies.
	racer, ok := c.Model("drone-4")
	require.True(t, ok)
	assert.Equal(t, quad.Parts, racer.Parts)
}

func TestSpecsKeepCatalogOrder(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	quad, _ := c.Model("drone-1")
	battery, _ := quad.Part("p2")
	assert.Equal(t, Specs{
		{"Capacity", "5000mAh"},
		{"Voltage", "14.8V (4S)"},
		{"C-Rating", "60C"},
		{"Weight", "450g"},
	}, battery.Specs)
}

func TestTemplateCopiesAreIndependent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	quad, _ := c.Model("drone-1")
	a, _ := quad.Part("p3")
	b, _ := quad.Part("p4")
	a.Specs[0].Value = "changed"
	assert.Equal(t, "2300KV", b.Specs[0].Value)
	assert.Equal(t, "2300KV", c.Templates["motor"].Specs[0].Value)
}

const minimalModel = `
models:
  - id: m
    name: M
    type: drone
    parts:
      - id: a
        name: A
        specs: {Voltage: "14.8V"}
%s
`

func parseWith(t *testing.T, geometry string) (*Catalog, error) {
	t.Helper()
	return Parse([]byte(strings.Replace(minimalModel, "%s", geometry, 1)))
}

func TestSingleSpecRow(t *testing.T) {
	c, err := parseWith(t, "")
	require.NoError(t, err)
	p := c.First().Parts[0]
	require.Len(t, p.Specs, 1)
	assert.Equal(t, Spec{Label: "Voltage", Value: "14.8V"}, p.Specs[0])
	assert.Nil(t, p.Geometry)
}

func TestValidateArity(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
		wantErr  string
	}{
		{"box ok", `        geometry: {kind: box, dimensions: [1, 1, 1], color: "#fff"}`, ""},
		{"sphere ok", `        geometry: {kind: sphere, dimensions: [0.3, 16, 16], color: "#fff"}`, ""},
		{"capsule ok", `        geometry: {kind: capsule, dimensions: [0.2, 0.2, 1, 12], color: "#fff"}`, ""},
		{"box short", `        geometry: {kind: box, dimensions: [1, 1], color: "#fff"}`, "want 3 values"},
		{"cylinder short", `        geometry: {kind: cylinder, dimensions: [0.3, 0.3, 0.2], color: "#fff"}`, "want 4 values"},
		{"sphere long", `        geometry: {kind: sphere, dimensions: [0.3, 16, 16, 1], color: "#fff"}`, "want 3 values"},
		{"fractional segments", `        geometry: {kind: cylinder, dimensions: [0.3, 0.3, 0.2, 7.5], color: "#fff"}`, "segment count"},
		{"too few segments", `        geometry: {kind: sphere, dimensions: [0.3, 2, 16], color: "#fff"}`, "segment count"},
		{"unknown kind", `        geometry: {kind: torus, dimensions: [1, 1, 1], color: "#fff"}`, "not one of"},
		{"negative size", `        geometry: {kind: box, dimensions: [1, -1, 1], color: "#fff"}`, "must be > 0"},
		{"no color", `        geometry: {kind: box, dimensions: [1, 1, 1]}`, "color: required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWith(t, tt.geometry)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "models[0].parts[0].geometry")
		})
	}
}

func TestValidateDuplicatesAndTypes(t *testing.T) {
	data := `
models:
  - id: m
    name: M
    type: rover
    parts:
      - {id: a, name: A}
      - {id: a, name: B}
  - id: m
    name: Other
    type: cubesat
    parts:
      - {id: x, name: X}
`
	_, err := Parse([]byte(data))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 3)
	assert.Contains(t, err.Error(), `model "m" part "a": duplicate id`)
	assert.Contains(t, err.Error(), `model "m": duplicate id`)
	assert.Contains(t, err.Error(), "rover is not one of")
}

func TestSpecsMustBeScalarMapping(t *testing.T) {
	_, err := Parse([]byte("models:\n  - id: m\n    name: M\n    type: drone\n    parts:\n      - id: a\n        name: A\n        specs: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "specs must be a mapping")

	_, err = Parse([]byte("models:\n  - id: m\n    name: M\n    type: drone\n    parts:\n      - id: a\n        name: A\n        specs:\n          Voltage: [3, 5]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec entries must be scalar")
}

func TestParseRejectsUnknownKeysAndTemplates(t *testing.T) {
	_, err := Parse([]byte("models:\n  - id: m\n    nmae: typo\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("models:\n  - id: m\n    name: M\n    type: drone\n    parts:\n      - template: ghost\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown template "ghost"`)

	_, err = Parse([]byte("models: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(minimalModel, "%s", "", 1)), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "m", c.First().ID)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "drone-1", c.First().ID)
}

func TestArity(t *testing.T) {
	n, ok := Arity(KindCapsule)
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	_, ok = Arity("torus")
	assert.False(t, ok)
}

func TestFallbackDescriptor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	hex, _ := c.Model("drone-2")
	gimbal, _ := hex.Part("p8")

	d := gimbal.Descriptor()
	assert.Equal(t, KindBox, d.Kind)
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, d.Dimensions)
	assert.Equal(t, gimbal.Color, d.Color)
	assert.Equal(t, vmath.Vec3{}, d.Position)
	require.True(t, d.HasExploded())
	assert.Equal(t, vmath.V3(0, 2, 0), *d.Exploded)

	d.Exploded[1] = 9
	assert.Equal(t, float32(2), FallbackExploded.Y(), "descriptors do not share the fallback vector")

	quad, _ := c.Model("drone-1")
	fc, _ := quad.Part("p1")
	assert.Equal(t, *fc.Geometry, fc.Descriptor())

	assert.Equal(t, vmath.Vec3{}, gimbal.Descriptor().RestRotation())
	assert.True(t, gimbal.Descriptor().HasExploded())
	rot := vmath.V3(0, 0, 1.5)
	tilted := GeometryDescriptor{Kind: KindBox, Dimensions: []float32{1, 1, 1}, Rotation: &rot}
	assert.Equal(t, rot, tilted.RestRotation())
	assert.False(t, tilted.HasExploded())
}
