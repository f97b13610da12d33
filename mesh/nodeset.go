package mesh

import (
	"fmt"
	"sort"
)

// Nodeset stores the region's nodes. Elements reference nodes purely by
// identifier; coordinates are only needed by geometric operations such
// as the node transform helpers.
type Nodeset struct {
	coords map[int][]float64
	nextID int
}

func newNodeset() *Nodeset {
	return &Nodeset{
		coords: make(map[int][]float64),
		nextID: 1,
	}
}

// Size returns the number of nodes with coordinates
func (ns *Nodeset) Size() int {
	return len(ns.coords)
}

// CreateNode adds a node with the given coordinates and returns its
// identifier. Identifiers are assigned sequentially from 1.
func (ns *Nodeset) CreateNode(coordinates []float64) int {
	id := ns.nextID
	ns.nextID++
	ns.coords[id] = append([]float64(nil), coordinates...)
	return id
}

// SetCoordinates assigns coordinates to the node with the given
// identifier, creating it if needed
func (ns *Nodeset) SetCoordinates(id int, coordinates []float64) {
	ns.coords[id] = append([]float64(nil), coordinates...)
	if id >= ns.nextID {
		ns.nextID = id + 1
	}
}

// Coordinates returns the coordinates of the node with the given
// identifier
func (ns *Nodeset) Coordinates(id int) ([]float64, error) {
	c, ok := ns.coords[id]
	if !ok {
		return nil, fmt.Errorf("nodeset: node %d not found", id)
	}
	return append([]float64(nil), c...), nil
}

// Identifiers returns all node identifiers in ascending order
func (ns *Nodeset) Identifiers() []int {
	ids := make([]int, 0, len(ns.coords))
	for id := range ns.coords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
