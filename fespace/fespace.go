package fespace

import (
	"fmt"
	"sort"

	"github.com/cluttrdev/sfe/element"
	"github.com/cluttrdev/sfe/mesh"
	"github.com/cluttrdev/sfe/utils"
)

// FESpace couples a mesh topology with a reference element and derives the
// global dof numbering of the approximation space. The mesh and element are
// shared with the caller and never mutated. Immutable after construction.
//
// FreeDOF and Shift are reserved for the boundary-condition collaborator
// (the Dirichlet lift); nothing here computes them.
type FESpace struct {
	Topo *mesh.Topology
	Elem element.Element

	FreeDOF utils.Index
	Shift   int

	dofMaps map[int]utils.Matrix
}

func New(topo *mesh.Topology, elem element.Element) (fs *FESpace, err error) {
	if topo.Shape() != elem.Shape() {
		err = fmt.Errorf("mesh shape %v does not match element shape %v", topo.Shape(), elem.Shape())
		return
	}
	fs = &FESpace{Topo: topo, Elem: elem, dofMaps: make(map[int]utils.Matrix)}
	return
}

// DofMap assembles the local-to-global dof map over the dimension-d entities.
//
// Global ids partition [1, NDoF] into contiguous blocks, one per (dimension,
// entity) pair of size dofTuple[dim], ordered dimension-major and by the
// topology's entity enumeration within a dimension. Column e of the returned
// table lists the global ids of entity e's local dofs: first the blocks of
// its dimension-0 sub-entities in local order, then dimension 1, up to the
// entity's own block. A sub-entity's block is written once into its column
// range and only referenced from each incident entity, so entities sharing a
// sub-entity see identical ids for the shared dofs. That is what makes the
// approximation space conforming.
//
// The returned matrix is read-only; it is cached inside the space and shared
// between calls.
func (fs *FESpace) DofMap(d int) (dm utils.Matrix, err error) {
	var (
		td = fs.Topo.TopDim()
		dt = fs.Elem.DofTuple()
	)
	if d < 0 || d > td {
		err = fmt.Errorf("dof map dimension %d outside [0, %d]", d, td)
		return
	}
	if len(dt) < d+1 {
		err = fmt.Errorf("dof tuple %v too short for dimension %d", dt, d)
		return
	}
	if cached, ok := fs.dofMaps[d]; ok {
		dm = cached
		return
	}
	// Block bases: base[i] is the id offset of the dimension-i blocks.
	var (
		nEnt = make(utils.Index, d+1)
		base = make(utils.Index, d+1)
	)
	for i := 0; i <= d; i++ {
		if nEnt[i], err = fs.Topo.Count(i); err != nil {
			return
		}
		if i > 0 {
			base[i] = base[i-1] + nEnt[i-1]*dt[i-1]
		}
	}
	// Row layout: for each sub-dimension, dofTuple[dd] rows per local
	// sub-entity of the dimension-d reference simplex.
	var (
		sh      = element.SimplexOfDim(d)
		rowBase = make(utils.Index, d+1)
		nRows   int
	)
	for dd := 0; dd <= d; dd++ {
		rowBase[dd] = nRows
		nRows += dt[dd] * sh.NumEntities(dd)
	}
	if nRows == 0 || nEnt[d] == 0 {
		err = fmt.Errorf("empty dof map for dimension %d: %d local dofs, %d entities", d, nRows, nEnt[d])
		return
	}
	dm = utils.NewMatrix(nRows, nEnt[d])
	for dd := 0; dd < d; dd++ {
		if dt[dd] == 0 {
			continue
		}
		var conn *mesh.Connectivity
		if conn, err = fs.Topo.Connectivity(d, dd); err != nil {
			return
		}
		for col, nbrs := range conn.Rows() {
			for j, sub := range nbrs {
				for k := 1; k <= dt[dd]; k++ {
					row := rowBase[dd] + j*dt[dd] + k
					id := base[dd] + (sub-1)*dt[dd] + k
					dm.Set(row-1, col-1, float64(id))
				}
			}
		}
	}
	// Dimension-d entities own their block outright.
	for col := 1; col <= nEnt[d]; col++ {
		for k := 1; k <= dt[d]; k++ {
			row := rowBase[d] + k
			id := base[d] + (col-1)*dt[d] + k
			dm.Set(row-1, col-1, float64(id))
		}
	}
	dm = dm.SetReadOnly(fmt.Sprintf("dofMap(%d)", d))
	fs.dofMaps[d] = dm
	return
}

// NDoF returns the total global dof count. Ids are contiguous and complete,
// so this is the end of the last dimension block.
func (fs *FESpace) NDoF() (n int, err error) {
	var (
		td = fs.Topo.TopDim()
		dt = fs.Elem.DofTuple()
	)
	for i := 0; i <= td; i++ {
		var ne int
		if ne, err = fs.Topo.Count(i); err != nil {
			return
		}
		n += ne * dt[i]
	}
	return
}

// DofIndices returns the sorted, duplicate-free global ids occurring in
// DofMap(d).
func (fs *FESpace) DofIndices(d int) (ids utils.Index, err error) {
	var dm utils.Matrix
	if dm, err = fs.DofMap(d); err != nil {
		return
	}
	seen := make(map[int]bool)
	for _, v := range dm.Data() {
		if id := int(v); id > 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return
}

// DofMask returns a boolean vector of length NDoF, true exactly at the ids
// occurring in DofMap(d).
func (fs *FESpace) DofMask(d int) (mask []bool, err error) {
	var (
		n   int
		ids utils.Index
	)
	if n, err = fs.NDoF(); err != nil {
		return
	}
	if ids, err = fs.DofIndices(d); err != nil {
		return
	}
	mask = make([]bool, n)
	for _, id := range ids {
		mask[id-1] = true
	}
	return
}
