package mesh

import (
	"testing"
)

func buildTetStrip(t *testing.T) *Mesh {
	t.Helper()
	region := NewRegion()
	m := region.FindMeshByDimension(3)

	// Three tets chained by shared faces, plus one isolated tet.
	for _, nodes := range [][]int{
		{1, 2, 3, 4},
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{10, 11, 12, 13},
	} {
		if _, err := m.CreateElement(Tet, nodes); err != nil {
			t.Fatalf("CreateElement failed: %v", err)
		}
	}
	return m
}

func TestGroupAddElement(t *testing.T) {
	m := buildTetStrip(t)
	g := NewGroup(m)

	if g.Size() != 0 {
		t.Fatalf("New group should be empty, size %d", g.Size())
	}
	if err := g.AddElement(1); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	if err := g.AddElement(1); err != nil {
		t.Fatalf("Re-adding a member should succeed: %v", err)
	}
	if g.Size() != 1 {
		t.Fatalf("Expected size 1, got %d", g.Size())
	}
	if err := g.AddElement(99); err == nil {
		t.Fatalf("Expected error adding unknown element")
	}
}

func TestGroupAddAdjacentElements(t *testing.T) {
	m := buildTetStrip(t)
	g := NewGroup(m)
	if err := g.AddElement(1); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	// One ring: element 2 shares face {2,3,4} with element 1.
	if err := g.AddAdjacentElements(2); err != nil {
		t.Fatalf("AddAdjacentElements failed: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Expected 2 members after first ring, got %d", g.Size())
	}

	// Second ring reaches element 3; the isolated tet never joins.
	if err := g.AddAdjacentElements(2); err != nil {
		t.Fatalf("AddAdjacentElements failed: %v", err)
	}
	ids := g.ElementIdentifiers()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("Expected members [1 2 3] in ascending order, got %v", ids)
	}

	// Fixed point: a further ring adds nothing.
	if err := g.AddAdjacentElements(2); err != nil {
		t.Fatalf("AddAdjacentElements failed: %v", err)
	}
	if g.Size() != 3 {
		t.Fatalf("Expected fixed point at 3 members, got %d", g.Size())
	}
}

func TestGroupAddAdjacentInvalidDimension(t *testing.T) {
	m := buildTetStrip(t)
	g := NewGroup(m)
	if err := g.AddElement(1); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	if err := g.AddAdjacentElements(3); err == nil {
		t.Fatalf("Expected error for shared dimension equal to mesh dimension")
	}
	if err := g.AddAdjacentElements(-1); err == nil {
		t.Fatalf("Expected error for negative shared dimension")
	}
}
