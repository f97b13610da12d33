package mesh

import (
	"fmt"
	"sort"
)

// Group is a mutable subset of a mesh's elements. Groups support the
// region-growing primitive used for sub-entity connectivity: repeatedly
// adding all elements adjacent to the current members via a shared
// sub-entity of a chosen dimension.
type Group struct {
	mesh    *Mesh
	members map[int]struct{}
}

// NewGroup creates an empty element group on the given mesh
func NewGroup(m *Mesh) *Group {
	return &Group{
		mesh:    m,
		members: make(map[int]struct{}),
	}
}

// Size returns the number of member elements
func (g *Group) Size() int {
	return len(g.members)
}

// Contains reports whether the element identifier is a member
func (g *Group) Contains(id int) bool {
	_, ok := g.members[id]
	return ok
}

// AddElement adds the element with the given identifier to the group
func (g *Group) AddElement(id int) error {
	if _, ok := g.mesh.FindElementByIdentifier(id); !ok {
		return fmt.Errorf("group: element %d not in mesh", id)
	}
	g.members[id] = struct{}{}
	return nil
}

// AddAdjacentElements adds every element of the mesh that shares a
// sub-entity of the given dimension with a current member. One call adds
// one ring of neighbors; callers grow a region by iterating to a fixed
// point of Size.
func (g *Group) AddAdjacentElements(sharedDimension int) error {
	index, err := g.mesh.subentityIndex(sharedDimension)
	if err != nil {
		return err
	}

	var additions []int
	for id := range g.members {
		el, ok := g.mesh.FindElementByIdentifier(id)
		if !ok {
			// Member destroyed since it was added; skip it.
			continue
		}
		for _, key := range elementSubentityKeys(el, sharedDimension) {
			for _, neighbor := range index[key] {
				if !g.Contains(neighbor) {
					additions = append(additions, neighbor)
				}
			}
		}
	}
	for _, id := range additions {
		g.members[id] = struct{}{}
	}
	return nil
}

// ElementIdentifiers returns the member identifiers in ascending order,
// matching mesh group iteration order.
func (g *Group) ElementIdentifiers() []int {
	ids := make([]int, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
