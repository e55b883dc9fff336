// Classical baseline: exact diagonalization of the qubit Hamiltonian.

package solver

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/perclft/groundstate/internal/qubit"
)

type Exact struct{}

func (*Exact) Name() string { return AlgorithmExact }

// Solve expands the operator to a dense matrix and takes its lowest
// eigenvalue. Electronic Hamiltonians from the Jordan-Wigner mapping are real
// symmetric (every surviving Pauli string has an even Y count), so the
// complex expansion is folded down and the residual imaginary part checked.
func (*Exact) Solve(ctx context.Context, p *qubit.Problem) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dim := 1 << p.NumQubits
	cm := p.Operator.Matrix()

	h := mat.NewSymDense(dim, nil)
	maxImag := 0.0
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			upper := cm[i*dim+j]
			lower := cm[j*dim+i]
			if im := math.Max(math.Abs(imag(upper)), math.Abs(imag(lower))); im > maxImag {
				maxImag = im
			}
			h.SetSym(i, j, 0.5*(real(upper)+real(lower)))
		}
	}
	if maxImag > 1e-8 {
		return nil, fmt.Errorf("hamiltonian matrix has imaginary entries up to %g", maxImag)
	}

	var eig mat.EigenSym
	if !eig.Factorize(h, false) {
		return nil, fmt.Errorf("eigendecomposition failed for %d-qubit hamiltonian", p.NumQubits)
	}
	vals := eig.Values(nil)
	ground := vals[0]
	for _, v := range vals[1:] {
		if v < ground {
			ground = v
		}
	}

	return &Result{
		Energy:      ground + p.NuclearRepulsion,
		Electronic:  ground,
		HartreeFock: p.HartreeFock,
	}, nil
}
