package connectivity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/meshconn/field"
	"github.com/notargets/meshconn/mesh"
)

func TestElementNodeTableExtraction(t *testing.T) {
	elementNodes := [][]int{
		{1, 2, 3},
		{3, 2, 4},
		{4, 5, 6},
	}
	m, f := buildTriangleMesh(t, elementNodes)

	table, err := NewElementNodeTable(m, f)
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}
	require.Equal(t, 3, table.Len())
	require.Equal(t, []int{1, 2, 3}, table.Identifiers)
	require.Equal(t, elementNodes, table.Nodes)
}

func TestElementNodeTableInvalidField(t *testing.T) {
	region := mesh.NewRegion()
	m := region.FindMeshByDimension(2)

	f, err := field.NewFiniteElement(region, "coordinates", 3)
	if err != nil {
		t.Fatalf("Failed to create field: %v", err)
	}
	// Field never defined over the 2D mesh.
	_, err = NewElementNodeTable(m, f)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestRemoveRepeatedElements(t *testing.T) {
	// Elements 2 and 3 reuse element 1's node set, element 3 in a
	// different local order. Grouping is order-independent.
	m, f := buildTriangleMesh(t, [][]int{
		{1, 2, 3},
		{1, 2, 3},
		{3, 1, 2},
		{4, 5, 6},
	})

	table, err := NewElementNodeTable(m, f)
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}
	if err := table.RemoveRepeated(m); err != nil {
		t.Fatalf("RemoveRepeated failed: %v", err)
	}

	require.Equal(t, []int{1, 4}, table.Identifiers)
	require.Equal(t, 2, m.Size())
	if _, ok := m.FindElementByIdentifier(2); ok {
		t.Fatalf("Element 2 should have been destroyed")
	}
	if _, ok := m.FindElementByIdentifier(3); ok {
		t.Fatalf("Element 3 should have been destroyed")
	}
}

func TestRemoveRepeatedIdempotent(t *testing.T) {
	m, f := buildTriangleMesh(t, [][]int{
		{1, 2, 3},
		{1, 2, 3},
		{4, 5, 6},
	})

	table, err := NewElementNodeTable(m, f)
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}
	if err := table.RemoveRepeated(m); err != nil {
		t.Fatalf("First RemoveRepeated failed: %v", err)
	}
	idsAfterFirst := append([]int(nil), table.Identifiers...)
	sizeAfterFirst := m.Size()

	if err := table.RemoveRepeated(m); err != nil {
		t.Fatalf("Second RemoveRepeated failed: %v", err)
	}
	require.Equal(t, idsAfterFirst, table.Identifiers)
	require.Equal(t, sizeAfterFirst, m.Size())
}

func TestFindConnectedByNodesRemoveRepeated(t *testing.T) {
	m, f := buildTriangleMesh(t, [][]int{
		{1, 2, 3},
		{1, 2, 3},
	})

	sets, err := FindConnectedByNodes(f, 2, true)
	if err != nil {
		t.Fatalf("FindConnectedByNodes failed: %v", err)
	}
	require.Equal(t, [][]int{{1}}, sets)
	require.Equal(t, 1, m.Size())
}
