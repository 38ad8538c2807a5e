package mesh

import (
	"fmt"

	"github.com/cluttrdev/sfe/element"
)

// Structured demo meshes over the unit interval, square and cube. Vertex
// numbering is lexicographic; cells are listed in sweep order so the derived
// entity enumeration is reproducible.

// UnitInterval builds a 1D mesh of k segments over k+1 vertices.
func UnitInterval(k int) (t *Topology, err error) {
	if k < 1 {
		err = fmt.Errorf("unit interval needs at least 1 segment, got %d", k)
		return
	}
	cells := make([][]int, k)
	for i := 0; i < k; i++ {
		cells[i] = []int{i + 1, i + 2}
	}
	return NewTopology(element.Line, cells, k+1)
}

// UnitSquare builds a triangulated n x n grid: (n+1)^2 vertices, two
// triangles per grid cell split along the lower-left to upper-right diagonal.
func UnitSquare(n int) (t *Topology, err error) {
	if n < 1 {
		err = fmt.Errorf("unit square needs at least 1 cell per side, got %d", n)
		return
	}
	var (
		nv    = n + 1
		cells = make([][]int, 0, 2*n*n)
	)
	vid := func(i, j int) int { return i + j*nv + 1 }
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := vid(i, j)
			v10 := vid(i+1, j)
			v01 := vid(i, j+1)
			v11 := vid(i+1, j+1)
			cells = append(cells,
				[]int{v00, v10, v11},
				[]int{v00, v11, v01})
		}
	}
	return NewTopology(element.Triangle, cells, nv*nv)
}

// UnitCube builds a tetrahedral n x n x n grid: (n+1)^3 vertices, six tets
// per cube cell using the Kuhn subdivision along the main diagonal.
func UnitCube(n int) (t *Topology, err error) {
	if n < 1 {
		err = fmt.Errorf("unit cube needs at least 1 cell per side, got %d", n)
		return
	}
	var (
		nv    = n + 1
		cells = make([][]int, 0, 6*n*n*n)
	)
	vid := func(i, j, k int) int { return i + j*nv + k*nv*nv + 1 }
	// Each tet follows a monotone path of axis steps from the cell's low
	// corner to its high corner; the six axis permutations tile the cube.
	perms := [6][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				for _, p := range perms {
					var (
						c    = [3]int{i, j, k}
						cell = make([]int, 4)
					)
					cell[0] = vid(c[0], c[1], c[2])
					for s, axis := range p {
						c[axis]++
						cell[s+1] = vid(c[0], c[1], c[2])
					}
					cells = append(cells, cell)
				}
			}
		}
	}
	return NewTopology(element.Tet, cells, nv*nv*nv)
}
