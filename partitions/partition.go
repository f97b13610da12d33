// Package partitions decomposes a mesh's element set into balanced
// groups using the element adjacency graph. It layers on the
// connectivity collaborators: adjacency comes from shared sub-entity
// queries on the mesh.
package partitions

import (
	"fmt"
	"math"
)

// Partition is one group of elements in a layout
type Partition struct {
	// Unique identifier for this partition
	ID int

	// Element identifiers in this partition, in mesh iteration order
	Elements    []int
	NumElements int
}

// Layout is the complete decomposition of a mesh's elements
type Layout struct {
	Partitions []Partition

	// Global sizing information
	KpartMax      int // max(NumElements) across all partitions
	TotalElements int
	NumPartitions int

	// Element index (mesh iteration order) to partition mapping
	EToP []int
}

// GetPartition returns the partition containing the element at the given
// mesh iteration index, or -1 when out of range
func (l *Layout) GetPartition(elementIndex int) int {
	if elementIndex < 0 || elementIndex >= len(l.EToP) {
		return -1
	}
	return l.EToP[elementIndex]
}

// Validate checks layout consistency: every element assigned exactly
// once, partition sizes consistent with EToP, KpartMax correct.
func (l *Layout) Validate() error {
	total := 0
	actualMax := 0
	for _, p := range l.Partitions {
		if p.NumElements != len(p.Elements) {
			return fmt.Errorf("partition %d: NumElements %d != len(Elements) %d",
				p.ID, p.NumElements, len(p.Elements))
		}
		total += p.NumElements
		if p.NumElements > actualMax {
			actualMax = p.NumElements
		}
	}
	if total != l.TotalElements {
		return fmt.Errorf("partitions hold %d elements, layout expects %d",
			total, l.TotalElements)
	}
	if actualMax != l.KpartMax {
		return fmt.Errorf("computed KpartMax %d != stored KpartMax %d",
			actualMax, l.KpartMax)
	}
	if len(l.EToP) != l.TotalElements {
		return fmt.Errorf("EToP length %d != TotalElements %d",
			len(l.EToP), l.TotalElements)
	}
	for i, p := range l.EToP {
		if p < 0 || p >= l.NumPartitions {
			return fmt.Errorf("element %d assigned to invalid partition %d", i, p)
		}
	}
	return nil
}

// Statistics computes load balance metrics for the layout
func (l *Layout) Statistics() Stats {
	stats := Stats{
		NumPartitions: l.NumPartitions,
		MinElements:   math.MaxInt32,
		MaxElements:   0,
		AvgElements:   float64(l.TotalElements) / float64(l.NumPartitions),
	}

	for _, p := range l.Partitions {
		if p.NumElements < stats.MinElements {
			stats.MinElements = p.NumElements
		}
		if p.NumElements > stats.MaxElements {
			stats.MaxElements = p.NumElements
		}
	}

	stats.Imbalance = float64(stats.MaxElements) / stats.AvgElements

	return stats
}

// Stats holds layout load balance metrics
type Stats struct {
	NumPartitions int
	MinElements   int
	MaxElements   int
	AvgElements   float64
	Imbalance     float64 // MaxElements / AvgElements
}
