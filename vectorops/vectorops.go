// Package vectorops provides small vector and matrix conveniences used
// by the geometric helpers. Plain float64 slices serve as vectors;
// anything with matrix shape goes through gonum.
package vectorops

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Magnitude returns the Euclidean length of v
func Magnitude(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Add returns u + v element-wise. Vectors must have equal length.
func Add(u, v []float64) []float64 {
	w := make([]float64, len(u))
	for i := range u {
		w[i] = u[i] + v[i]
	}
	return w
}

// Sub returns u - v element-wise
func Sub(u, v []float64) []float64 {
	w := make([]float64, len(u))
	for i := range u {
		w[i] = u[i] - v[i]
	}
	return w
}

// Dot returns the inner product of u and v
func Dot(u, v []float64) float64 {
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}
	return s
}

// ElMult returns the element-wise product of u and v
func ElMult(u, v []float64) []float64 {
	w := make([]float64, len(u))
	for i := range u {
		w[i] = u[i] * v[i]
	}
	return w
}

// ElDiv returns the element-wise quotient u / v
func ElDiv(u, v []float64) []float64 {
	w := make([]float64, len(u))
	for i := range u {
		w[i] = u[i] / v[i]
	}
	return w
}

// Mult returns u scaled by c
func Mult(u []float64, c float64) []float64 {
	w := make([]float64, len(u))
	for i := range u {
		w[i] = u[i] * c
	}
	return w
}

// Div returns u scaled by 1/c
func Div(u []float64, c float64) []float64 {
	return Mult(u, 1/c)
}

// Normalize returns v scaled to unit length
func Normalize(v []float64) []float64 {
	return Div(v, Magnitude(v))
}

// Cross returns the cross product of two 3-vectors
func Cross(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// MatVec multiplies a matrix by a vector, returning a new vector of
// length equal to the matrix row count
func MatVec(m mat.Matrix, v []float64) []float64 {
	nr, nc := m.Dims()
	w := make([]float64, nr)
	for i := 0; i < nr; i++ {
		var s float64
		for j := 0; j < nc; j++ {
			s += m.At(i, j) * v[j]
		}
		w[i] = s
	}
	return w
}

// MatMul returns the matrix product a*b
func MatMul(a, b mat.Matrix) *mat.Dense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	c := mat.NewDense(ar, bc, nil)
	c.Mul(a, b)
	return c
}

// RotationMatrixFromQuaternion converts a rotation quaternion
// (w, x, y, z) into a 3x3 rotation matrix. The quaternion is normalized
// first.
func RotationMatrixFromQuaternion(q []float64) *mat.Dense {
	nq := Div(q, Magnitude(q))
	qw, qx, qy, qz := nq[0], nq[1], nq[2], nq[3]
	return mat.NewDense(3, 3, []float64{
		qw*qw + qx*qx - qy*qy - qz*qz, 2*qx*qy - 2*qw*qz, 2*qx*qz + 2*qw*qy,
		2*qx*qy + 2*qw*qz, qw*qw - qx*qx + qy*qy - qz*qz, 2*qy*qz - 2*qw*qx,
		2*qx*qz - 2*qw*qy, 2*qy*qz + 2*qw*qx, qw*qw - qx*qx - qy*qy + qz*qz,
	})
}

// RotationMatrixAboutAxis returns the 3x3 matrix rotating by angle
// radians about the given axis (right-hand rule). The axis need not be
// normalized.
func RotationMatrixAboutAxis(axis []float64, angle float64) *mat.Dense {
	half := angle / 2
	s := math.Sin(half)
	n := Normalize(axis)
	return RotationMatrixFromQuaternion([]float64{
		math.Cos(half), s * n[0], s * n[1], s * n[2],
	})
}
