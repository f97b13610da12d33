package mesh

// Region owns the meshes of each topological dimension and the node set
// shared between them, mirroring the usual region/field-module ownership
// hierarchy of finite element packages.
type Region struct {
	meshes [4]*Mesh
	nodes  *Nodeset

	// Batch change nesting depth. While positive, derived structures
	// (sub-entity indexes) are not rebuilt eagerly.
	changeDepth int
}

// NewRegion creates a region with empty meshes for dimensions 0 through 3
func NewRegion() *Region {
	r := &Region{
		nodes: newNodeset(),
	}
	for dim := range r.meshes {
		r.meshes[dim] = &Mesh{
			dimension: dim,
			region:    r,
			nextID:    1,
		}
	}
	return r
}

// FindMeshByDimension returns the mesh of the given dimension, or nil if
// the dimension is outside 0..3
func (r *Region) FindMeshByDimension(dim int) *Mesh {
	if dim < 0 || dim >= len(r.meshes) {
		return nil
	}
	return r.meshes[dim]
}

// Nodes returns the region's node set
func (r *Region) Nodes() *Nodeset {
	return r.nodes
}

// BeginChange opens a batch change scope. Calls nest; every BeginChange
// must be paired with an EndChange.
func (r *Region) BeginChange() {
	r.changeDepth++
}

// EndChange closes a batch change scope
func (r *Region) EndChange() {
	if r.changeDepth > 0 {
		r.changeDepth--
	}
}

// ChangeManager runs fn inside a batch change scope on the region,
// guaranteeing the scope is released on every exit path.
func ChangeManager(r *Region, fn func() error) error {
	r.BeginChange()
	defer r.EndChange()
	return fn()
}
