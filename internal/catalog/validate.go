package catalog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// segment dimension indices and their minimum counts per kind.
var segmentMins = map[Kind]map[int]float32{
	KindCylinder: {3: 3},
	KindCapsule:  {3: 3},
	KindSphere:   {1: 3, 2: 2},
}

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report YAML names so messages point at the catalog file's keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(geometryArity, GeometryDescriptor{})
	return v
}

// geometryArity enforces the dimension count for the descriptor's kind and that
// segment counts are whole numbers at or above their minimum.
func geometryArity(sl validator.StructLevel) {
	g, ok := sl.Current().Interface().(GeometryDescriptor)
	if !ok {
		return
	}
	want, known := Arity(g.Kind)
	if !known {
		return
	}
	if len(g.Dimensions) != want {
		sl.ReportError(g.Dimensions, "dimensions", "Dimensions", "arity", strconv.Itoa(want))
		return
	}
	for i, least := range segmentMins[g.Kind] {
		d := g.Dimensions[i]
		if d < least || d != float32(int(d)) {
			sl.ReportError(d, "dimensions["+strconv.Itoa(i)+"]", "Dimensions", "segments", strconv.Itoa(int(least)))
		}
	}
}

// Validate checks struct constraints, geometry arity, and id uniqueness. It returns
// a *ValidationError naming every offending entry, or nil.
func Validate(c *Catalog) error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	var problems []string

	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "validate catalog")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	models := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if m.ID != "" && models[m.ID] {
			problems = append(problems, fmt.Sprintf("model %q: duplicate id", m.ID))
		}
		models[m.ID] = true
		parts := make(map[string]bool, len(m.Parts))
		for _, p := range m.Parts {
			if p.ID != "" && parts[p.ID] {
				problems = append(problems, fmt.Sprintf("model %q part %q: duplicate id", m.ID, p.ID))
			}
			parts[p.ID] = true
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.Namespace(), "Catalog.")
	switch fe.Tag() {
	case "required":
		return ns + ": required"
	case "oneof":
		return fmt.Sprintf("%s: %v is not one of [%s]", ns, fe.Value(), fe.Param())
	case "arity":
		return fmt.Sprintf("%s: want %s values", ns, fe.Param())
	case "segments":
		return fmt.Sprintf("%s: segment count must be a whole number >= %s", ns, fe.Param())
	case "gt":
		return fmt.Sprintf("%s: must be > %s", ns, fe.Param())
	case "min":
		return fmt.Sprintf("%s: needs at least %s entries", ns, fe.Param())
	}
	return fmt.Sprintf("%s: failed %s", ns, fe.Tag())
}
