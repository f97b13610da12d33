package mesh

import (
	"fmt"
	"sort"
)

// Element is a mesh cell referencing an ordered list of global node
// identifiers. The node order follows the element type's local vertex
// numbering.
type Element struct {
	ID    int
	Type  ElementType
	Nodes []int
}

// Mesh holds the elements of one topological dimension within a region.
// Element iteration order is creation order and defines the canonical
// index space used by connectivity computations.
type Mesh struct {
	dimension int
	region    *Region
	elements  []Element
	nextID    int

	// Sub-entity indexes keyed by dimension, then by canonical sorted
	// vertex key, mapping to the identifiers of elements sharing that
	// sub-entity. Built by DefineAllFaces, invalidated on mutation.
	subentities map[int]map[string][]int
}

// Dimension returns the topological dimension of the mesh
func (m *Mesh) Dimension() int {
	return m.dimension
}

// Region returns the owning region
func (m *Mesh) Region() *Region {
	return m.region
}

// Size returns the number of live elements
func (m *Mesh) Size() int {
	return len(m.elements)
}

// Elements returns the live elements in iteration order. The returned
// slice is owned by the mesh and must not be modified.
func (m *Mesh) Elements() []Element {
	return m.elements
}

// CreateElement adds an element of the given type referencing the given
// global node identifiers and returns its identifier. Identifiers are
// assigned sequentially from 1.
func (m *Mesh) CreateElement(etype ElementType, nodes []int) (int, error) {
	if etype.Dimension() != m.dimension {
		return 0, fmt.Errorf("mesh: %s element is %dD, mesh is %dD",
			etype, etype.Dimension(), m.dimension)
	}
	if len(nodes) != etype.NumVertices() {
		return 0, fmt.Errorf("mesh: %s element needs %d nodes, got %d",
			etype, etype.NumVertices(), len(nodes))
	}
	id := m.nextID
	m.nextID++
	m.elements = append(m.elements, Element{
		ID:    id,
		Type:  etype,
		Nodes: append([]int(nil), nodes...),
	})
	m.invalidateSubentities()
	return id, nil
}

// FindElementByIdentifier returns the element with the given identifier
func (m *Mesh) FindElementByIdentifier(id int) (Element, bool) {
	for _, el := range m.elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// DestroyElement removes the element with the given identifier from the
// mesh. Later elements shift down one index position.
func (m *Mesh) DestroyElement(id int) error {
	for i, el := range m.elements {
		if el.ID == id {
			m.elements = append(m.elements[:i], m.elements[i+1:]...)
			m.invalidateSubentities()
			return nil
		}
	}
	return fmt.Errorf("mesh: element %d not found", id)
}

// DefineAllFaces builds the sub-entity indexes for every dimension below
// the mesh dimension. Adjacency queries rebuild these lazily, so calling
// this is an optimization, not a requirement.
func (m *Mesh) DefineAllFaces() {
	for dim := 0; dim < m.dimension; dim++ {
		m.ensureSubentities(dim)
	}
}

// subentityIndex returns the canonical-key index for sub-entities of the
// given dimension, building it if needed
func (m *Mesh) subentityIndex(dim int) (map[string][]int, error) {
	if dim < 0 || dim >= m.dimension {
		return nil, fmt.Errorf("mesh: shared dimension %d invalid for %dD mesh",
			dim, m.dimension)
	}
	m.ensureSubentities(dim)
	return m.subentities[dim], nil
}

func (m *Mesh) ensureSubentities(dim int) {
	if m.subentities != nil {
		if _, ok := m.subentities[dim]; ok {
			return
		}
	} else {
		m.subentities = make(map[int]map[string][]int)
	}

	index := make(map[string][]int)
	for _, el := range m.elements {
		for _, key := range elementSubentityKeys(el, dim) {
			index[key] = append(index[key], el.ID)
		}
	}
	m.subentities[dim] = index
}

func (m *Mesh) invalidateSubentities() {
	m.subentities = nil
}

// AdjacentElements returns the identifiers of elements sharing a
// sub-entity of the given dimension with the element, excluding the
// element itself. Results follow mesh iteration order.
func (m *Mesh) AdjacentElements(id int, sharedDimension int) ([]int, error) {
	el, ok := m.FindElementByIdentifier(id)
	if !ok {
		return nil, fmt.Errorf("mesh: element %d not found", id)
	}
	index, err := m.subentityIndex(sharedDimension)
	if err != nil {
		return nil, err
	}

	seen := map[int]struct{}{id: {}}
	for _, key := range elementSubentityKeys(el, sharedDimension) {
		for _, neighbor := range index[key] {
			seen[neighbor] = struct{}{}
		}
	}

	neighbors := make([]int, 0, len(seen)-1)
	for _, other := range m.elements {
		if other.ID == id {
			continue
		}
		if _, ok := seen[other.ID]; ok {
			neighbors = append(neighbors, other.ID)
		}
	}
	return neighbors, nil
}

// elementSubentityKeys returns the canonical keys of the element's
// sub-entities of the given dimension. Keys are order-independent:
// the global node identifiers of each sub-entity, sorted.
func elementSubentityKeys(el Element, dim int) []string {
	entities := SubentityVertices(el.Type, dim)
	keys := make([]string, 0, len(entities))
	for _, local := range entities {
		verts := make([]int, len(local))
		for i, li := range local {
			verts[i] = el.Nodes[li]
		}
		sort.Ints(verts)
		keys = append(keys, fmt.Sprintf("%v", verts))
	}
	return keys
}
