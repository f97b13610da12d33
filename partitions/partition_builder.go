package partitions

import (
	"fmt"
	"log"
	"math"

	metis "github.com/notargets/go-metis"

	"github.com/notargets/meshconn/mesh"
)

// Strategy defines how elements are grouped into partitions
type Strategy int

const (
	BlockPartition Strategy = iota // Consecutive elements
	RoundRobin                     // Distribute cyclically
	GraphPartition                 // METIS k-way over the adjacency graph
)

// Config holds partitioning parameters
type Config struct {
	NumPartitions    int32
	Strategy         Strategy
	ImbalanceFactor  float32 // e.g. 1.05 for 5% imbalance (graph strategy)
	UseVertexWeights bool    // weight elements by node count (graph strategy)
	Objective        string  // "cut" or "vol" (graph strategy)
	Verbose          bool    // log partition analysis after building
}

// DefaultConfig returns the default graph-partitioning configuration
func DefaultConfig(nparts int32) *Config {
	return &Config{
		NumPartitions:    nparts,
		Strategy:         GraphPartition,
		ImbalanceFactor:  1.05,
		UseVertexWeights: true,
		Objective:        "cut",
	}
}

// Builder constructs a partition layout from a mesh's element adjacency.
// Adjacency is defined by shared sub-entities of codimension one (faces
// of a 3D mesh, edges of a 2D mesh).
type Builder struct {
	mesh   *mesh.Mesh
	config *Config
}

// NewBuilder creates a builder for the given mesh
func NewBuilder(m *mesh.Mesh, config *Config) (*Builder, error) {
	if m == nil {
		return nil, fmt.Errorf("partitions: nil mesh")
	}
	if config == nil || config.NumPartitions < 1 {
		return nil, fmt.Errorf("partitions: need at least one partition")
	}
	if m.Dimension() < 1 {
		return nil, fmt.Errorf("partitions: cannot partition a %dD mesh", m.Dimension())
	}
	return &Builder{mesh: m, config: config}, nil
}

// Build partitions the mesh elements and returns the validated layout
func (b *Builder) Build() (*Layout, error) {
	ne := b.mesh.Size()
	nparts := int(b.config.NumPartitions)
	if nparts > ne && ne > 0 {
		return nil, fmt.Errorf("partitions: %d partitions for %d elements", nparts, ne)
	}

	var eToP []int
	var err error
	switch b.config.Strategy {
	case RoundRobin:
		eToP = make([]int, ne)
		for i := 0; i < ne; i++ {
			eToP[i] = i % nparts
		}
	case GraphPartition:
		eToP, err = b.partitionGraph()
		if err != nil {
			return nil, err
		}
	default:
		// Block partitioning
		perPart := int(math.Ceil(float64(ne) / float64(nparts)))
		eToP = make([]int, ne)
		for i := 0; i < ne; i++ {
			eToP[i] = i / perPart
			if eToP[i] >= nparts {
				eToP[i] = nparts - 1
			}
		}
	}

	layout := b.createLayout(eToP, nparts)
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid partition layout: %w", err)
	}

	if b.config.Verbose {
		b.analyzeLayout(layout)
	}

	return layout, nil
}

// partitionGraph runs METIS k-way partitioning over the element
// adjacency graph
func (b *Builder) partitionGraph() ([]int, error) {
	ne := b.mesh.Size()
	if int(b.config.NumPartitions) == 1 {
		return make([]int, ne), nil
	}

	xadj, adjncy, vwgt, err := b.buildMetisGraph()
	if err != nil {
		return nil, err
	}

	opts := make([]int32, metis.NoOptions)
	if err := metis.SetDefaultOptions(opts); err != nil {
		return nil, fmt.Errorf("failed to set METIS options: %w", err)
	}
	if b.config.Objective == "vol" {
		opts[metis.OptionObjType] = metis.ObjTypeVol
	} else {
		opts[metis.OptionObjType] = metis.ObjTypeCut
	}

	ubvec := []float32{b.config.ImbalanceFactor}

	var vwgtPtr []int32
	if b.config.UseVertexWeights {
		vwgtPtr = vwgt
	}

	part, objval, err := metis.PartGraphKwayWeighted(
		xadj, adjncy, vwgtPtr, nil,
		b.config.NumPartitions, nil, ubvec, opts,
	)
	if err != nil {
		return nil, fmt.Errorf("METIS partitioning failed: %w", err)
	}
	if b.config.Verbose {
		log.Printf("METIS objective value: %d", objval)
	}

	eToP := make([]int, ne)
	for i := range eToP {
		eToP[i] = int(part[i])
	}
	return eToP, nil
}

// buildMetisGraph converts the mesh adjacency to CSR form for METIS.
// Graph vertices are element indices in mesh iteration order.
func (b *Builder) buildMetisGraph() (xadj, adjncy, vwgt []int32, err error) {
	elements := b.mesh.Elements()
	ne := len(elements)

	indexOf := make(map[int]int, ne)
	for i, el := range elements {
		indexOf[el.ID] = i
	}

	if b.config.UseVertexWeights {
		vwgt = make([]int32, ne)
		for i, el := range elements {
			vwgt[i] = int32(len(el.Nodes))
		}
	}

	sharedDim := b.mesh.Dimension() - 1
	xadj = make([]int32, ne+1)
	for i, el := range elements {
		neighbors, aerr := b.mesh.AdjacentElements(el.ID, sharedDim)
		if aerr != nil {
			return nil, nil, nil, aerr
		}
		for _, id := range neighbors {
			adjncy = append(adjncy, int32(indexOf[id]))
		}
		xadj[i+1] = int32(len(adjncy))
	}

	return xadj, adjncy, vwgt, nil
}

// createLayout builds partition structures from element assignments
func (b *Builder) createLayout(eToP []int, nparts int) *Layout {
	elements := b.mesh.Elements()

	parts := make([]Partition, nparts)
	for i := range parts {
		parts[i] = Partition{ID: i}
	}
	for i, p := range eToP {
		parts[p].Elements = append(parts[p].Elements, elements[i].ID)
		parts[p].NumElements++
	}

	kpartMax := 0
	for _, p := range parts {
		if p.NumElements > kpartMax {
			kpartMax = p.NumElements
		}
	}

	return &Layout{
		Partitions:    parts,
		KpartMax:      kpartMax,
		TotalElements: len(elements),
		NumPartitions: nparts,
		EToP:          eToP,
	}
}

// analyzeLayout reports cut edges and load balance
func (b *Builder) analyzeLayout(layout *Layout) {
	elements := b.mesh.Elements()
	indexOf := make(map[int]int, len(elements))
	for i, el := range elements {
		indexOf[el.ID] = i
	}

	sharedDim := b.mesh.Dimension() - 1
	cutEdges := 0
	for i, el := range elements {
		neighbors, err := b.mesh.AdjacentElements(el.ID, sharedDim)
		if err != nil {
			continue
		}
		for _, id := range neighbors {
			j := indexOf[id]
			if j > i && layout.EToP[i] != layout.EToP[j] {
				cutEdges++
			}
		}
	}

	stats := layout.Statistics()
	log.Printf("Partition analysis:")
	log.Printf("  Cut edges: %d", cutEdges)
	log.Printf("  Load range: [%d, %d], avg: %.1f",
		stats.MinElements, stats.MaxElements, stats.AvgElements)
	log.Printf("  Imbalance: %.2f", stats.Imbalance)
}
