package catalog

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Default parses and validates the catalog compiled into the binary.
func Default() (*Catalog, error) {
	c, err := Parse(embedded)
	if err != nil {
		return nil, errors.Wrap(err, "embedded catalog")
	}
	return c, nil
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes a YAML catalog, expands part templates, and runs Validate.
// Unknown keys are rejected so typos fail at startup rather than rendering oddly.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if err := expandTemplates(&c); err != nil {
		return nil, err
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// expandTemplates replaces every part that names a template with a deep copy of
// the template overlaid by the part's own non-empty fields. A part's geometry, when
// given, replaces the template's geometry as a whole.
func expandTemplates(c *Catalog) error {
	for mi := range c.Models {
		m := &c.Models[mi]
		for pi := range m.Parts {
			p := m.Parts[pi]
			if p.Template == "" {
				continue
			}
			tpl, ok := c.Templates[p.Template]
			if !ok {
				return errors.Errorf("model %q part %d: unknown template %q", m.ID, pi, p.Template)
			}
			merged, err := overlay(tpl, p)
			if err != nil {
				return errors.Wrapf(err, "model %q part %d", m.ID, pi)
			}
			m.Parts[pi] = merged
		}
	}
	return nil
}

func overlay(tpl, p Part) (Part, error) {
	var out Part
	if err := copier.CopyWithOption(&out, &tpl, copier.Option{DeepCopy: true}); err != nil {
		return Part{}, errors.Wrap(err, "copy template")
	}
	if err := copier.CopyWithOption(&out, &p, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Part{}, errors.Wrap(err, "apply overrides")
	}
	if p.Geometry != nil {
		g := *p.Geometry
		g.Dimensions = append([]float32(nil), p.Geometry.Dimensions...)
		out.Geometry = &g
	}
	out.Template = ""
	return out, nil
}
