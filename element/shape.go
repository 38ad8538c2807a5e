package element

// Shape identifies a reference element shape. The set is closed: dispatch is
// by switch, and every table below is indexed by Shape.
type Shape int

const (
	Unknown Shape = iota
	Point
	Line
	Triangle
	Tet
)

func (s Shape) String() string {
	names := []string{"Unknown", "Point", "Line", "Triangle", "Tet"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Invalid"
}

// Dim returns the topological dimension of the shape.
func (s Shape) Dim() int {
	switch s {
	case Point:
		return 0
	case Line:
		return 1
	case Triangle:
		return 2
	case Tet:
		return 3
	default:
		return -1
	}
}

// NumVerts returns the number of vertices of the shape.
func (s Shape) NumVerts() int {
	switch s {
	case Point:
		return 1
	case Line:
		return 2
	case Triangle:
		return 3
	case Tet:
		return 4
	default:
		return 0
	}
}

// SimplexOfDim returns the simplex shape of topological dimension d.
func SimplexOfDim(d int) Shape {
	switch d {
	case 0:
		return Point
	case 1:
		return Line
	case 2:
		return Triangle
	case 3:
		return Tet
	default:
		return Unknown
	}
}

// Local sub-entity tables: for each shape and sub-entity dimension, the
// 0-based local vertex indices of each sub-entity, in the canonical local
// order. Mesh connectivity columns and element dof layout both follow this
// order, which is what keeps the two in agreement.
var (
	lineEdges = [][]int{{0, 1}}

	triEdges = [][]int{{0, 1}, {1, 2}, {2, 0}}
	triFaces = [][]int{{0, 1, 2}}

	tetEdges = [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	// Face f is opposite vertex f
	tetFaces = [][]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	tetCells = [][]int{{0, 1, 2, 3}}
)

// LocalEntities returns the local vertex index lists of the shape's
// dimension-d sub-entities. d equal to the shape dimension yields the single
// entity covering all vertices; d = 0 yields one singleton per vertex.
func (s Shape) LocalEntities(d int) [][]int {
	if d == 0 {
		verts := make([][]int, s.NumVerts())
		for i := range verts {
			verts[i] = []int{i}
		}
		return verts
	}
	switch s {
	case Line:
		if d == 1 {
			return lineEdges
		}
	case Triangle:
		switch d {
		case 1:
			return triEdges
		case 2:
			return triFaces
		}
	case Tet:
		switch d {
		case 1:
			return tetEdges
		case 2:
			return tetFaces
		case 3:
			return tetCells
		}
	}
	return nil
}

// NumEntities returns the number of dimension-d sub-entities of the shape.
func (s Shape) NumEntities(d int) int {
	return len(s.LocalEntities(d))
}
