package connectivity

import (
	"github.com/notargets/meshconn/field"
	"github.com/notargets/meshconn/mesh"
)

// FindConnectedByNodes returns the connected components of the mesh of
// the given dimension, where two elements are connected if they share at
// least one node identifier. Each inner slice is one component, as
// element identifiers. With removeRepeated set, elements reusing an
// earlier element's node set are destroyed first.
func FindConnectedByNodes(f *field.Field, meshDimension int, removeRepeated bool) ([][]int, error) {
	m, t, err := tableForField(f, meshDimension)
	if err != nil {
		return nil, err
	}
	if removeRepeated {
		if err := t.RemoveRepeated(m); err != nil {
			return nil, err
		}
	}
	return t.ConnectedSets(), nil
}

// FindConnectedBySharedEntity returns the connected components of the
// mesh of the given dimension under the stricter sub-entity relation:
// two elements are connected only if they share a sub-entity of
// sharedDimension (2 for faces, 1 for edges, 0 for vertices). Components
// are found by seeding from the remaining pool and growing each region
// to a fixed point.
func FindConnectedBySharedEntity(f *field.Field, meshDimension int, removeRepeated bool,
	sharedDimension int) ([][]int, error) {

	m, t, err := tableForField(f, meshDimension)
	if err != nil {
		return nil, err
	}
	if removeRepeated {
		if err := t.RemoveRepeated(m); err != nil {
			return nil, err
		}
	}
	m.DefineAllFaces()

	remainder := append([]int(nil), t.Identifiers...)
	var sets [][]int
	for len(remainder) > 0 {
		seed := remainder[0]
		remainder = remainder[1:]

		connected, err := growConnectedElements(m, seed, sharedDimension)
		if err != nil {
			return nil, err
		}
		sets = append(sets, connected)
		remainder = removeAll(remainder, connected)
	}
	return sets, nil
}

// FindComponentContaining returns the single connected component holding
// the seed element, under the shared sub-entity relation
func FindComponentContaining(f *field.Field, meshDimension int, seedIdentifier int,
	sharedDimension int) ([]int, error) {

	m, _, err := tableForField(f, meshDimension)
	if err != nil {
		return nil, err
	}
	m.DefineAllFaces()
	return growConnectedElements(m, seedIdentifier, sharedDimension)
}

// growConnectedElements grows a group from the seed element by
// repeatedly adding adjacent elements sharing a sub-entity of the given
// dimension until the group size stops changing. The growth happens
// inside one batch change scope on the region.
func growConnectedElements(m *mesh.Mesh, seedIdentifier, sharedDimension int) ([]int, error) {
	if _, ok := m.FindElementByIdentifier(seedIdentifier); !ok {
		return nil, ErrSeedNotFound
	}

	var ids []int
	err := mesh.ChangeManager(m.Region(), func() error {
		group := mesh.NewGroup(m)
		oldSize := group.Size()
		if err := group.AddElement(seedIdentifier); err != nil {
			return err
		}
		newSize := group.Size()

		for newSize > oldSize {
			oldSize = newSize
			if err := group.AddAdjacentElements(sharedDimension); err != nil {
				return err
			}
			newSize = group.Size()
		}

		ids = group.ElementIdentifiers()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func tableForField(f *field.Field, meshDimension int) (*mesh.Mesh, *ElementNodeTable, error) {
	if !f.IsFiniteElement() {
		return nil, nil, ErrInvalidField
	}
	m := f.Region().FindMeshByDimension(meshDimension)
	t, err := NewElementNodeTable(m, f)
	if err != nil {
		return nil, nil, err
	}
	return m, t, nil
}

// removeAll filters ids, dropping every identifier present in exclude
// while preserving order
func removeAll(ids, exclude []int) []int {
	drop := make(map[int]struct{}, len(exclude))
	for _, id := range exclude {
		drop[id] = struct{}{}
	}
	kept := ids[:0]
	for _, id := range ids {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	return kept
}
