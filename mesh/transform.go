package mesh

import (
	"github.com/notargets/gocfd/utils"

	"github.com/notargets/meshconn/vectorops"
)

// RotateNodes rotates every node in the region around the given point.
// The rotation matrix dimensions must match the node coordinate count.
func RotateNodes(r *Region, rotation utils.Matrix, point []float64) error {
	return transformNodes(r, func(x []float64) []float64 {
		return vectorops.Add(vectorops.MatVec(rotation, vectorops.Sub(x, point)), point)
	})
}

// TranslateNodes translates every node in the region by delta
func TranslateNodes(r *Region, delta []float64) error {
	return transformNodes(r, func(x []float64) []float64 {
		return vectorops.Add(x, delta)
	})
}

// ProjectNodes projects every node in the region onto the plane defined
// by a point on the plane and the plane's unit normal
func ProjectNodes(r *Region, planePoint, planeNormal []float64) error {
	return transformNodes(r, func(x []float64) []float64 {
		dist := vectorops.Dot(vectorops.Sub(x, planePoint), planeNormal)
		return vectorops.Sub(x, vectorops.Mult(planeNormal, dist))
	})
}

func transformNodes(r *Region, fn func([]float64) []float64) error {
	return ChangeManager(r, func() error {
		ns := r.Nodes()
		for _, id := range ns.Identifiers() {
			x, err := ns.Coordinates(id)
			if err != nil {
				return err
			}
			ns.SetCoordinates(id, fn(x))
		}
		return nil
	})
}
