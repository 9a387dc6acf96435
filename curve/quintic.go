package curve

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Quintic is a fifth-order polynomial lateral curve. It is the unique quintic
// matching the offset and its first two derivatives at both ends of the
// segment.
type Quintic struct {
	coef        [6]float64
	paramLength float64
}

// NewQuintic fits a quintic to the boundary conditions (l, dl, ddl) at
// parameter 0 and at paramLength.
func NewQuintic(startL, startDl, startDdl, endL, endDl, endDdl, paramLength float64) (*Quintic, error) {
	if paramLength <= 0 {
		return nil, errors.Errorf("curve: param length must be positive, got %f", paramLength)
	}

	x := paramLength
	x2 := x * x
	x3 := x2 * x
	x4 := x3 * x
	x5 := x4 * x
	a := mat.NewDense(6, 6, []float64{
		1, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0,
		0, 0, 2, 0, 0, 0,
		1, x, x2, x3, x4, x5,
		0, 1, 2 * x, 3 * x2, 4 * x3, 5 * x4,
		0, 0, 2, 6 * x, 12 * x2, 20 * x3,
	})
	b := mat.NewVecDense(6, []float64{startL, startDl, startDdl, endL, endDl, endDdl})

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return nil, errors.Wrap(err, "curve: quintic boundary conditions are singular")
	}

	q := &Quintic{paramLength: paramLength}
	for i := 0; i < 6; i++ {
		q.coef[i] = sol.AtVec(i)
	}
	return q, nil
}

// ParamLength returns the longitudinal extent the curve is defined over.
func (q *Quintic) ParamLength() float64 {
	return q.paramLength
}

// Evaluate returns the derivative of the given order of the offset at p.
func (q *Quintic) Evaluate(order int, p float64) float64 {
	switch order {
	case 0:
		return ((((q.coef[5]*p+q.coef[4])*p+q.coef[3])*p+q.coef[2])*p+q.coef[1])*p + q.coef[0]
	case 1:
		return (((5*q.coef[5]*p+4*q.coef[4])*p+3*q.coef[3])*p+2*q.coef[2])*p + q.coef[1]
	case 2:
		return ((20*q.coef[5]*p+12*q.coef[4])*p+6*q.coef[3])*p + 2*q.coef[2]
	default:
		return 0
	}
}
