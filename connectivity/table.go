// Package connectivity discovers connected components over a mesh's
// element-to-node adjacency graph. Two connectivity definitions are
// supported: elements sharing at least one node, and elements sharing a
// sub-entity of a chosen dimension (a face or edge), the latter grown
// through the mesh group's add-adjacent primitive.
package connectivity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/notargets/meshconn/field"
	"github.com/notargets/meshconn/mesh"
)

var (
	// ErrInvalidField indicates the field is not finite-element typed or
	// is not defined over the queried mesh
	ErrInvalidField = errors.New("connectivity: invalid field for mesh")

	// ErrSeedNotFound indicates a seeded query named an element
	// identifier that does not exist in the mesh
	ErrSeedNotFound = errors.New("connectivity: seed element not found")
)

// ElementNodeTable holds a mesh in list form: parallel slices of element
// identifiers and their node identifier lists, in mesh iteration order.
// The slice index is the canonical element index for component
// computations. The table is a snapshot; mutating the mesh outside the
// table's own operations invalidates it.
type ElementNodeTable struct {
	Identifiers []int
	Nodes       [][]int
}

// NewElementNodeTable extracts the element and node identifier lists
// from the mesh through the field's element templates
func NewElementNodeTable(m *mesh.Mesh, f *field.Field) (*ElementNodeTable, error) {
	if m == nil {
		return nil, fmt.Errorf("connectivity: nil mesh")
	}
	if !f.IsFiniteElement() || !f.IsDefinedOnMesh(m.Dimension()) {
		return nil, ErrInvalidField
	}

	t := &ElementNodeTable{}
	for _, el := range m.Elements() {
		t.Identifiers = append(t.Identifiers, el.ID)
		t.Nodes = append(t.Nodes, f.ElementNodes(el))
	}
	return t, nil
}

// Len returns the number of elements in the table
func (t *ElementNodeTable) Len() int {
	return len(t.Identifiers)
}

// findDuplicates returns the indices of elements whose sorted node
// identifier list matches an earlier element's, in descending index
// order so callers can delete by index without reindexing. The first
// element of each duplicate group is retained.
func (t *ElementNodeTable) findDuplicates() []int {
	groups := make(map[string][]int)
	order := make([]string, 0, len(t.Nodes))
	for index, nodes := range t.Nodes {
		sorted := append([]int(nil), nodes...)
		sort.Ints(sorted)
		key := fmt.Sprintf("%v", sorted)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], index)
	}

	var duplicates []int
	for _, key := range order {
		if indices := groups[key]; len(indices) > 1 {
			duplicates = append(duplicates, indices[1:]...)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(duplicates)))
	return duplicates
}

// RemoveRepeated destroys every element whose node set duplicates an
// earlier element's, keeping the first encountered in iteration order.
// The table is filtered in lockstep with the mesh deletions so it stays
// a faithful snapshot. Running it twice is a no-op the second time.
func (t *ElementNodeTable) RemoveRepeated(m *mesh.Mesh) error {
	return mesh.ChangeManager(m.Region(), func() error {
		for _, index := range t.findDuplicates() {
			if err := m.DestroyElement(t.Identifiers[index]); err != nil {
				return err
			}
			t.Identifiers = append(t.Identifiers[:index], t.Identifiers[index+1:]...)
			t.Nodes = append(t.Nodes[:index], t.Nodes[index+1:]...)
		}
		return nil
	})
}
