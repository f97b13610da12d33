package mesh

// ElementType identifies the shape of an element
type ElementType int

const (
	// 3D element types
	Tet     ElementType = iota // Tetrahedron
	Hex                        // Hexahedron
	Prism                      // Triangular prism
	Pyramid                    // Square-based pyramid

	// 2D element types
	Triangle
	Quad

	// 1D element type
	Line
)

func (e ElementType) String() string {
	return [...]string{"Tet", "Hex", "Prism", "Pyramid", "Triangle", "Quad", "Line"}[e]
}

// Dimension returns the topological dimension of the element type
func (e ElementType) Dimension() int {
	switch e {
	case Tet, Hex, Prism, Pyramid:
		return 3
	case Triangle, Quad:
		return 2
	case Line:
		return 1
	}
	return 0
}

// NumVertices returns the number of defining vertices for the element type
func (e ElementType) NumVertices() int {
	switch e {
	case Tet:
		return 4
	case Hex:
		return 8
	case Prism:
		return 6
	case Pyramid:
		return 5
	case Triangle:
		return 3
	case Quad:
		return 4
	case Line:
		return 2
	}
	return 0
}

// elementFaces returns the codimension-1 boundary entities of each element
// type as local vertex index lists, in the conventional local face ordering.
func elementFaces(e ElementType) [][]int {
	switch e {
	case Tet:
		return [][]int{
			{0, 2, 1}, // Face 0
			{0, 1, 3}, // Face 1
			{1, 2, 3}, // Face 2
			{0, 3, 2}, // Face 3
		}
	case Hex:
		return [][]int{
			{0, 3, 2, 1}, // Face 0 (bottom)
			{4, 5, 6, 7}, // Face 1 (top)
			{0, 1, 5, 4}, // Face 2
			{1, 2, 6, 5}, // Face 3
			{2, 3, 7, 6}, // Face 4
			{3, 0, 4, 7}, // Face 5
		}
	case Prism:
		return [][]int{
			{0, 2, 1},    // Face 0 (bottom tri)
			{3, 4, 5},    // Face 1 (top tri)
			{0, 1, 4, 3}, // Face 2 (quad)
			{1, 2, 5, 4}, // Face 3 (quad)
			{2, 0, 3, 5}, // Face 4 (quad)
		}
	case Pyramid:
		return [][]int{
			{0, 3, 2, 1}, // Face 0 (base quad)
			{0, 1, 4},    // Face 1 (tri)
			{1, 2, 4},    // Face 2 (tri)
			{2, 3, 4},    // Face 3 (tri)
			{3, 0, 4},    // Face 4 (tri)
		}
	case Triangle:
		return [][]int{{0, 1}, {1, 2}, {2, 0}}
	case Quad:
		return [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case Line:
		return [][]int{{0}, {1}}
	}
	return nil
}

// elementEdges returns the 1D boundary entities of each 3D element type.
// For 2D types the edges are the faces, so elementFaces applies instead.
func elementEdges(e ElementType) [][]int {
	switch e {
	case Tet:
		return [][]int{
			{0, 1}, {1, 2}, {0, 2},
			{0, 3}, {1, 3}, {2, 3},
		}
	case Hex:
		return [][]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
			{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
		}
	case Prism:
		return [][]int{
			{0, 1}, {1, 2}, {2, 0},
			{3, 4}, {4, 5}, {5, 3},
			{0, 3}, {1, 4}, {2, 5},
		}
	case Pyramid:
		return [][]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // base
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		}
	}
	return nil
}

// SubentityVertices returns the vertex index lists of all sub-entities of
// the given dimension for the element type. Dimension 0 yields one entity
// per vertex.
func SubentityVertices(e ElementType, dim int) [][]int {
	switch {
	case dim < 0 || dim >= e.Dimension():
		return nil
	case dim == 0:
		entities := make([][]int, e.NumVertices())
		for i := range entities {
			entities[i] = []int{i}
		}
		return entities
	case dim == e.Dimension()-1:
		return elementFaces(e)
	case dim == 1:
		return elementEdges(e)
	}
	return nil
}
