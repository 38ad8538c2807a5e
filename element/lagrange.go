package element

import (
	"fmt"

	"github.com/cluttrdev/sfe/utils"
)

// Element supplies the per-dimension local dof multiplicity of a reference
// element. DofTuple()[i] is the number of dofs owned by one dimension-i
// sub-entity; its length is Shape().Dim()+1.
type Element interface {
	Shape() Shape
	Order() int
	DofTuple() utils.Index
}

// Lagrange is the continuous Lagrange element of order N on a simplex.
type Lagrange struct {
	shape Shape
	order int
}

func NewLagrange(shape Shape, order int) (el *Lagrange, err error) {
	if shape.Dim() < 0 {
		err = fmt.Errorf("unsupported shape: %v", shape)
		return
	}
	if order < 1 {
		err = fmt.Errorf("lagrange order must be >= 1, got %d", order)
		return
	}
	el = &Lagrange{shape: shape, order: order}
	return
}

func (el *Lagrange) Shape() Shape { return el.shape }
func (el *Lagrange) Order() int   { return el.order }

// DofTuple returns the dof multiplicity per sub-entity dimension. On a
// simplex of order N: 1 per vertex, N-1 per edge, (N-1)(N-2)/2 per triangular
// face, (N-1)(N-2)(N-3)/6 interior to a tet.
func (el *Lagrange) DofTuple() (dt utils.Index) {
	var (
		n = el.order
	)
	full := utils.Index{
		1,
		n - 1,
		(n - 1) * (n - 2) / 2,
		(n - 1) * (n - 2) * (n - 3) / 6,
	}
	dt = full[:el.shape.Dim()+1].Copy()
	return
}

// NumDofs is the total local dof count: sum over sub-entity dimensions of
// multiplicity times sub-entity count.
func (el *Lagrange) NumDofs() (np int) {
	dt := el.DofTuple()
	for d, nd := range dt {
		np += nd * el.shape.NumEntities(d)
	}
	return
}

func (el *Lagrange) String() string {
	return fmt.Sprintf("Lagrange%d %v", el.order, el.shape)
}
