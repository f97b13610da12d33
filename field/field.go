// Package field provides the finite element field surface consumed by
// the connectivity computations. A field is defined per mesh within a
// region; element node lists are resolved through the field's local
// node template.
package field

import (
	"fmt"

	"github.com/notargets/meshconn/mesh"
)

// Field is a named finite element field over a region
type Field struct {
	name           string
	componentCount int
	region         *mesh.Region
	finiteElement  bool
	typeCoordinate bool
	defined        map[int]bool // mesh dimension -> defined
}

// NewFiniteElement creates a finite element field with the given name
// and component count on the region
func NewFiniteElement(r *mesh.Region, name string, componentCount int) (*Field, error) {
	if r == nil {
		return nil, fmt.Errorf("field: nil region")
	}
	if componentCount < 1 {
		return nil, fmt.Errorf("field: component count %d < 1", componentCount)
	}
	return &Field{
		name:           name,
		componentCount: componentCount,
		region:         r,
		finiteElement:  true,
		defined:        make(map[int]bool),
	}, nil
}

// NewCoordinateField creates a finite element field flagged as a
// coordinate field, with the conventional name "coordinates" when name
// is empty
func NewCoordinateField(r *mesh.Region, name string, componentCount int) (*Field, error) {
	if name == "" {
		name = "coordinates"
	}
	f, err := NewFiniteElement(r, name, componentCount)
	if err != nil {
		return nil, err
	}
	f.typeCoordinate = true
	return f, nil
}

// Name returns the field name
func (f *Field) Name() string {
	return f.name
}

// NumComponents returns the field's component count
func (f *Field) NumComponents() int {
	return f.componentCount
}

// Region returns the owning region
func (f *Field) Region() *mesh.Region {
	return f.region
}

// IsFiniteElement reports whether the field is finite-element typed
func (f *Field) IsFiniteElement() bool {
	return f != nil && f.finiteElement
}

// IsTypeCoordinate reports whether the field is a coordinate field
func (f *Field) IsTypeCoordinate() bool {
	return f.typeCoordinate
}

// DefineOnMesh defines the field over the mesh of the given dimension
// with the standard linear node template
func (f *Field) DefineOnMesh(dimension int) error {
	if f.region.FindMeshByDimension(dimension) == nil {
		return fmt.Errorf("field: no mesh of dimension %d", dimension)
	}
	f.defined[dimension] = true
	return nil
}

// IsDefinedOnMesh reports whether the field is defined over the mesh of
// the given dimension
func (f *Field) IsDefinedOnMesh(dimension int) bool {
	return f != nil && f.defined[dimension]
}

// ElementNodes returns the global node identifiers used by the element's
// local field template, in local node order. The linear template uses
// the element's defining vertices.
func (f *Field) ElementNodes(el mesh.Element) []int {
	if !f.IsFiniteElement() {
		return nil
	}
	return append([]int(nil), el.Nodes...)
}
