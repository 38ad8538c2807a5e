package mesh

import (
	"fmt"
	"iter"

	"github.com/james-bowman/sparse"

	"github.com/cluttrdev/sfe/utils"
)

// Connectivity stores the incidence relation between mesh entities of
// dimension d (rows) and dimension dd (columns) in compressed-row form.
//
// Entity ids and row positions are 1-based, matching the mesh numbering
// convention: row i owns the dd-entity ids
// indices[offsets[i-1] .. offsets[i]-1] (1-based positions into indices).
// offsets has length nd+1 with offsets[0] = 1 and offsets[nd] = nnz+1.
//
// A Connectivity owns its backing storage exclusively and is immutable after
// construction. Accessors hand out copies; the only aliasing access is the
// Rows iterator, whose row slice must be treated as read-only.
type Connectivity struct {
	d, dd   int
	indices utils.Index
	offsets utils.Index
	uniform bool // every row has the same degree, measured at construction
}

// NewConnectivity builds a store from a compressed-row layout and validates
// it: offsets must start at 1, be non-decreasing and end at len(indices)+1,
// and every index must be a positive entity id. The input slices are copied.
func NewConnectivity(d, dd int, indices, offsets utils.Index) (c *Connectivity, err error) {
	if d < 0 || dd < 0 {
		err = fmt.Errorf("negative dimension pair (%d, %d)", d, dd)
		return
	}
	if len(offsets) == 0 {
		err = fmt.Errorf("offsets must contain at least the leading 1")
		return
	}
	if offsets[0] != 1 {
		err = fmt.Errorf("offsets must start at 1, got %d", offsets[0])
		return
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			err = fmt.Errorf("offsets must be non-decreasing: offsets[%d] = %d < offsets[%d] = %d",
				i, offsets[i], i-1, offsets[i-1])
			return
		}
	}
	if last := offsets[len(offsets)-1]; last != len(indices)+1 {
		err = fmt.Errorf("offsets must end at nnz+1 = %d, got %d", len(indices)+1, last)
		return
	}
	for i, id := range indices {
		if id < 1 {
			err = fmt.Errorf("entity id at position %d must be positive, got %d", i+1, id)
			return
		}
	}
	c = &Connectivity{
		d:       d,
		dd:      dd,
		indices: indices.Copy(),
		offsets: offsets.Copy(),
	}
	c.uniform = c.measureUniform()
	return
}

// NewEmptyConnectivity builds a store with no rows and no incidences.
func NewEmptyConnectivity(d, dd int) *Connectivity {
	return &Connectivity{d: d, dd: dd, offsets: utils.Index{1}}
}

func (c *Connectivity) measureUniform() bool {
	nd := len(c.offsets) - 1
	if nd == 0 {
		return false
	}
	deg := c.offsets[1] - c.offsets[0]
	for i := 1; i < nd; i++ {
		if c.offsets[i+1]-c.offsets[i] != deg {
			return false
		}
	}
	return true
}

// Dims returns the dimension pair (d, dd) of the relation.
func (c *Connectivity) Dims() (d, dd int) { return c.d, c.dd }

// Size returns the row count and the column count. The column count is
// derived, not stored: the maximum entity id appearing in indices.
func (c *Connectivity) Size() (nd, ndd int) {
	nd = len(c.offsets) - 1
	ndd = c.indices.Max()
	return
}

// Nnz returns the total incidence count.
func (c *Connectivity) Nnz() int {
	return c.offsets[len(c.offsets)-1] - 1
}

// Uniform reports whether every row has the same degree.
func (c *Connectivity) Uniform() bool { return c.uniform }

// Degree returns the neighbor count of the given row.
func (c *Connectivity) Degree(row int) (deg int, err error) {
	if err = c.checkRow(row); err != nil {
		return
	}
	deg = c.offsets[row] - c.offsets[row-1]
	return
}

// RowRange returns the 1-based inclusive position range [lo, hi] of the row's
// entries within the index sequence. An empty row yields hi = lo-1.
func (c *Connectivity) RowRange(row int) (lo, hi int, err error) {
	if err = c.checkRow(row); err != nil {
		return
	}
	lo = c.offsets[row-1]
	hi = c.offsets[row] - 1
	return
}

// Neighbors returns an owned copy of the dd-entity ids incident to the row.
func (c *Connectivity) Neighbors(row int) (nbrs utils.Index, err error) {
	if err = c.checkRow(row); err != nil {
		return
	}
	nbrs = c.rowView(row).Copy()
	return
}

// Get returns the dd-entity id at 1-based local position col within the row.
func (c *Connectivity) Get(row, col int) (id int, err error) {
	if err = c.checkRow(row); err != nil {
		return
	}
	deg := c.offsets[row] - c.offsets[row-1]
	if col < 1 || col > deg {
		err = indexError("local column", col, 1, deg)
		return
	}
	id = c.indices[c.offsets[row-1]-1+col-1]
	return
}

// Gather returns the dense table of entity ids at rows[i], cols[j], each pair
// bounds-checked individually. cols holds 1-based local positions.
func (c *Connectivity) Gather(rows, cols utils.Index) (R utils.Matrix, err error) {
	R = utils.NewMatrix(len(rows), len(cols))
	for i, row := range rows {
		for j, col := range cols {
			var id int
			if id, err = c.Get(row, col); err != nil {
				return
			}
			R.Set(i, j, float64(id))
		}
	}
	return
}

// GatherRows returns the neighbor lists of the given rows. A store with
// uniform row degree gathers into one rectangular batch; otherwise rows are
// gathered one at a time and the result is ragged. Either way each returned
// row is an owned copy.
func (c *Connectivity) GatherRows(rows utils.Index) (R []utils.Index, err error) {
	if c.uniform {
		var deg int
		if len(rows) > 0 {
			if deg, err = c.Degree(rows[0]); err != nil {
				return
			}
		}
		flat := make(utils.Index, deg*len(rows))
		R = make([]utils.Index, len(rows))
		for i, row := range rows {
			if err = c.checkRow(row); err != nil {
				return nil, err
			}
			R[i] = flat[i*deg : (i+1)*deg]
			copy(R[i], c.rowView(row))
		}
		return
	}
	R = make([]utils.Index, len(rows))
	for i, row := range rows {
		var nbrs utils.Index
		if nbrs, err = c.Neighbors(row); err != nil {
			return nil, err
		}
		R[i] = nbrs
	}
	return
}

// Rows iterates rows 1..nd in order, yielding each row's neighbor ids. The
// yielded slice aliases internal storage and is only valid read-only; the
// sequence is finite and restartable.
func (c *Connectivity) Rows() iter.Seq2[int, utils.Index] {
	return func(yield func(int, utils.Index) bool) {
		nd := len(c.offsets) - 1
		for row := 1; row <= nd; row++ {
			if !yield(row, c.rowView(row)) {
				return
			}
		}
	}
}

// Values returns the stored incidence values. The relation is structural, so
// the values are all ones.
func (c *Connectivity) Values() []float64 {
	ones := make([]float64, c.Nnz())
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

// Coordinates recovers all (row, dd-entity) incidence pairs in row-major
// order, columns in stored order within each row. The pair count equals Nnz.
func (c *Connectivity) Coordinates() (I2 utils.Index2D) {
	var (
		nnz = c.Nnz()
		ri  = make(utils.Index, 0, nnz)
		ci  = make(utils.Index, 0, nnz)
	)
	for row, nbrs := range c.Rows() {
		for _, id := range nbrs {
			ri = append(ri, row)
			ci = append(ci, id)
		}
	}
	I2, _ = utils.NewIndex2D(ri, ci)
	return
}

// ToCSR exports the relation as a 0-based sparse boolean matrix, the form the
// topology uses for incidence products. An empty store exports nil.
func (c *Connectivity) ToCSR() *sparse.CSR {
	nd, ndd := c.Size()
	if nd == 0 || ndd == 0 {
		return nil
	}
	dok := sparse.NewDOK(nd, ndd)
	for row, nbrs := range c.Rows() {
		for _, id := range nbrs {
			dok.Set(row-1, id-1, 1)
		}
	}
	return dok.ToCSR()
}

func (c *Connectivity) checkRow(row int) error {
	nd := len(c.offsets) - 1
	if row < 1 || row > nd {
		return indexError("row", row, 1, nd)
	}
	return nil
}

// rowView returns the aliasing neighbor slice of a validated row.
func (c *Connectivity) rowView(row int) utils.Index {
	return c.indices[c.offsets[row-1]-1 : c.offsets[row]-1]
}
