package partitions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/meshconn/mesh"
)

// buildTriangleStrip creates a 2D mesh of n triangles where consecutive
// triangles share an edge
func buildTriangleStrip(t *testing.T, n int) *mesh.Mesh {
	t.Helper()
	region := mesh.NewRegion()
	m := region.FindMeshByDimension(2)
	for i := 0; i < n; i++ {
		// Triangles (1,2,3), (2,3,4), (3,4,5), ... share edges.
		if _, err := m.CreateElement(mesh.Triangle, []int{i + 1, i + 2, i + 3}); err != nil {
			t.Fatalf("CreateElement failed: %v", err)
		}
	}
	return m
}

func TestBuilderValidation(t *testing.T) {
	m := buildTriangleStrip(t, 4)

	if _, err := NewBuilder(nil, DefaultConfig(2)); err == nil {
		t.Fatalf("Expected error for nil mesh")
	}
	if _, err := NewBuilder(m, DefaultConfig(0)); err == nil {
		t.Fatalf("Expected error for zero partitions")
	}

	b, err := NewBuilder(m, &Config{NumPartitions: 8, Strategy: BlockPartition})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatalf("Expected error for more partitions than elements")
	}
}

func TestBlockPartition(t *testing.T) {
	m := buildTriangleStrip(t, 6)
	b, err := NewBuilder(m, &Config{NumPartitions: 2, Strategy: BlockPartition})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	layout, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	require.Equal(t, []int{0, 0, 0, 1, 1, 1}, layout.EToP)
	require.Equal(t, 2, layout.NumPartitions)
	require.Equal(t, 3, layout.KpartMax)
	require.Equal(t, []int{1, 2, 3}, layout.Partitions[0].Elements)
	require.Equal(t, []int{4, 5, 6}, layout.Partitions[1].Elements)
	require.NoError(t, layout.Validate())
}

func TestRoundRobinPartition(t *testing.T) {
	m := buildTriangleStrip(t, 5)
	b, err := NewBuilder(m, &Config{NumPartitions: 2, Strategy: RoundRobin})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	layout, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	require.Equal(t, []int{0, 1, 0, 1, 0}, layout.EToP)
	require.Equal(t, 3, layout.Partitions[0].NumElements)
	require.Equal(t, 2, layout.Partitions[1].NumElements)
	require.NoError(t, layout.Validate())
}

func TestGraphPartitionSinglePart(t *testing.T) {
	// One partition short-circuits before reaching METIS.
	m := buildTriangleStrip(t, 4)
	b, err := NewBuilder(m, DefaultConfig(1))
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	layout, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	require.Equal(t, []int{0, 0, 0, 0}, layout.EToP)
	require.NoError(t, layout.Validate())
}

func TestBuildMetisGraph(t *testing.T) {
	m := buildTriangleStrip(t, 3)
	b, err := NewBuilder(m, DefaultConfig(2))
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	xadj, adjncy, vwgt, err := b.buildMetisGraph()
	if err != nil {
		t.Fatalf("buildMetisGraph failed: %v", err)
	}

	// Strip adjacency: 0-1, 1-2.
	require.Equal(t, []int32{0, 1, 3, 4}, xadj)
	require.Equal(t, []int32{1, 0, 2, 1}, adjncy)
	require.Equal(t, []int32{3, 3, 3}, vwgt)
}

func TestLayoutStatistics(t *testing.T) {
	m := buildTriangleStrip(t, 5)
	b, err := NewBuilder(m, &Config{NumPartitions: 2, Strategy: BlockPartition})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	layout, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	stats := layout.Statistics()
	require.Equal(t, 2, stats.NumPartitions)
	require.Equal(t, 2, stats.MinElements)
	require.Equal(t, 3, stats.MaxElements)
	require.InDelta(t, 2.5, stats.AvgElements, 1e-12)
	require.InDelta(t, 1.2, stats.Imbalance, 1e-12)
}

func TestLayoutValidateCatchesCorruption(t *testing.T) {
	m := buildTriangleStrip(t, 4)
	b, err := NewBuilder(m, &Config{NumPartitions: 2, Strategy: BlockPartition})
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	layout, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	layout.EToP[0] = 7
	require.Error(t, layout.Validate())
}
