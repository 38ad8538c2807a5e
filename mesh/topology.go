package mesh

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/cluttrdev/sfe/element"
	"github.com/cluttrdev/sfe/utils"
)

// Topology owns the entity enumeration of an unstructured simplex mesh and
// builds, on demand, the Connectivity between any two entity dimensions.
//
// Entities of each dimension are numbered 1..Count(dim). Vertices and cells
// keep their input numbering; intermediate entities (edges, faces) are
// numbered by first appearance, scanning cells in id order and local
// sub-entities in the element's canonical local order. The enumeration is
// deterministic and stable across repeated queries, which the dof numbering
// depends on.
type Topology struct {
	shape  element.Shape
	nVerts int
	cells  [][]int // 1-based vertex ids per cell, local order

	conns map[[2]int]*Connectivity
	ents  map[int][][]int        // per dim: entity vertex tuples, enumeration order
	keys  map[int]map[[4]int]int // per dim: sorted vertex key -> entity id
}

// NewTopology builds a topology from the cell-vertex incidence of a mesh of
// the given cell shape. Every cell must list shape.NumVerts() vertex ids in
// local order, each in [1, nVerts].
func NewTopology(shape element.Shape, cells [][]int, nVerts int) (t *Topology, err error) {
	if shape.Dim() < 1 {
		err = fmt.Errorf("cell shape must have dimension >= 1, got %v", shape)
		return
	}
	if nVerts < 1 {
		err = fmt.Errorf("mesh must have at least one vertex, got %d", nVerts)
		return
	}
	nv := shape.NumVerts()
	for i, cell := range cells {
		if len(cell) != nv {
			err = fmt.Errorf("cell %d has %d vertices, %v needs %d", i+1, len(cell), shape, nv)
			return
		}
		for _, v := range cell {
			if v < 1 || v > nVerts {
				err = indexError(fmt.Sprintf("cell %d vertex id", i+1), v, 1, nVerts)
				return
			}
		}
	}
	t = &Topology{
		shape:  shape,
		nVerts: nVerts,
		cells:  cells,
		conns:  make(map[[2]int]*Connectivity),
		ents:   make(map[int][][]int),
		keys:   make(map[int]map[[4]int]int),
	}
	return
}

// Shape returns the cell shape of the mesh.
func (t *Topology) Shape() element.Shape { return t.shape }

// TopDim returns the topological dimension of the mesh cells.
func (t *Topology) TopDim() int { return t.shape.Dim() }

// NumCells returns the cell count.
func (t *Topology) NumCells() int { return len(t.cells) }

// Count returns the number of entities of the given dimension.
func (t *Topology) Count(dim int) (n int, err error) {
	switch {
	case dim == 0:
		n = t.nVerts
	case dim == t.TopDim():
		n = len(t.cells)
	case dim > 0 && dim < t.TopDim():
		var ents [][]int
		if ents, _, err = t.entities(dim); err != nil {
			return
		}
		n = len(ents)
	default:
		err = indexError("entity dimension", dim, 0, t.TopDim())
	}
	return
}

// Connectivity returns the incidence relation from dimension-d entities to
// dimension-dd entities, building and caching it on first request.
//
// For d > dd the columns of row i are the dimension-dd sub-entities of entity
// i in the element's canonical local order. For d < dd the relation is the
// transpose, columns in ascending id order. d == dd yields the identity.
func (t *Topology) Connectivity(d, dd int) (c *Connectivity, err error) {
	td := t.TopDim()
	if d < 0 || d > td {
		err = indexError("row dimension", d, 0, td)
		return
	}
	if dd < 0 || dd > td {
		err = indexError("column dimension", dd, 0, td)
		return
	}
	key := [2]int{d, dd}
	if c = t.conns[key]; c != nil {
		return
	}
	switch {
	case d == dd:
		c, err = t.buildIdentity(d)
	case d > dd:
		c, err = t.buildDown(d, dd)
	default:
		c, err = t.buildTranspose(d, dd)
	}
	if err != nil {
		return
	}
	t.conns[key] = c
	return
}

// entityKey is the sorted vertex tuple of a sub-entity, padded with zeros.
func entityKey(verts []int) (key [4]int) {
	copy(key[:], verts)
	sort.Ints(key[:len(verts)])
	return
}

// entities returns the vertex tuples of all dimension-d entities in
// enumeration order, plus the sorted-tuple lookup used to resolve ids.
func (t *Topology) entities(d int) (ents [][]int, keys map[[4]int]int, err error) {
	if ents = t.ents[d]; ents != nil {
		keys = t.keys[d]
		return
	}
	td := t.TopDim()
	switch {
	case d == 0:
		ents = make([][]int, t.nVerts)
		for v := 1; v <= t.nVerts; v++ {
			ents[v-1] = []int{v}
		}
	case d == td:
		ents = t.cells
	case d > 0 && d < td:
		local := t.shape.LocalEntities(d)
		keys = make(map[[4]int]int)
		for _, cell := range t.cells {
			for _, loc := range local {
				verts := make([]int, len(loc))
				for k, lv := range loc {
					verts[k] = cell[lv]
				}
				if _, seen := keys[entityKey(verts)]; !seen {
					ents = append(ents, verts)
					keys[entityKey(verts)] = len(ents)
				}
			}
		}
	default:
		err = indexError("entity dimension", d, 0, td)
		return
	}
	if keys == nil {
		keys = make(map[[4]int]int)
		for i, verts := range ents {
			keys[entityKey(verts)] = i + 1
		}
	}
	t.ents[d] = ents
	t.keys[d] = keys
	return
}

func (t *Topology) buildIdentity(d int) (c *Connectivity, err error) {
	var n int
	if n, err = t.Count(d); err != nil {
		return
	}
	indices := utils.NewRangeOffset(1, n).Add(1)
	offsets := utils.NewRangeOffset(1, n+1).Add(1)
	return NewConnectivity(d, d, indices, offsets)
}

// buildDown assembles the d -> dd incidence (d > dd) by resolving each row
// entity's local sub-entities against the dimension-dd enumeration.
func (t *Topology) buildDown(d, dd int) (c *Connectivity, err error) {
	var (
		rows  [][]int
		keys  map[[4]int]int
		local = element.SimplexOfDim(d).LocalEntities(dd)
	)
	if rows, _, err = t.entities(d); err != nil {
		return
	}
	if dd > 0 {
		if _, keys, err = t.entities(dd); err != nil {
			return
		}
	}
	var (
		indices = make(utils.Index, 0, len(rows)*len(local))
		offsets = make(utils.Index, len(rows)+1)
	)
	offsets[0] = 1
	for i, verts := range rows {
		for _, loc := range local {
			sub := make([]int, len(loc))
			for k, lv := range loc {
				sub[k] = verts[lv]
			}
			if dd == 0 {
				indices = append(indices, sub[0])
				continue
			}
			id, ok := keys[entityKey(sub)]
			if !ok {
				err = fmt.Errorf("dimension-%d entity %v not found in enumeration", dd, sub)
				return
			}
			indices = append(indices, id)
		}
		offsets[i+1] = len(indices) + 1
	}
	return NewConnectivity(d, dd, indices, offsets)
}

// buildTranspose assembles the d -> dd incidence for d < dd by accumulating
// the transposed relation into a sparse DOK and reading the resulting CSR
// back row by row, columns ascending.
func (t *Topology) buildTranspose(d, dd int) (c *Connectivity, err error) {
	var (
		base   *Connectivity
		nd, nc int
	)
	if base, err = t.Connectivity(dd, d); err != nil {
		return
	}
	if nd, err = t.Count(d); err != nil {
		return
	}
	if nc, err = t.Count(dd); err != nil {
		return
	}
	lists := make([][]int, nd)
	if nd > 0 && nc > 0 && base.Nnz() > 0 {
		dok := sparse.NewDOK(nd, nc)
		for row, nbrs := range base.Rows() {
			for _, id := range nbrs {
				dok.Set(id-1, row-1, 1)
			}
		}
		dok.ToCSR().DoNonZero(func(i, j int, _ float64) {
			lists[i] = append(lists[i], j+1)
		})
	}
	var (
		indices = make(utils.Index, 0, base.Nnz())
		offsets = make(utils.Index, nd+1)
	)
	offsets[0] = 1
	for i, row := range lists {
		sort.Ints(row)
		indices = append(indices, row...)
		offsets[i+1] = len(indices) + 1
	}
	return NewConnectivity(d, dd, indices, offsets)
}
