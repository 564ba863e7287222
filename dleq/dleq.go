// Package dleq implements a non-interactive Schnorr-style discrete-log
// equality proof, Fiat-Shamir compiled with Keccak256.
package dleq

import (
	"errors"
	"io"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/transcript"
)

// ErrInvalidDleq is returned when a proof's challenge fails to
// recompute, per spec.md §7.
var ErrInvalidDleq = errors.New("dleq: invalid proof")

// Proof proves knowledge of a scalar x such that X1 = x*G1 and X2 = x*G2,
// without revealing x.
type Proof struct {
	S *group.Scalar
	C *group.Scalar
}

// Prove runs the prover side of spec.md §4.E: sample r, commit R1 = r*G1,
// R2 = r*G2, derive the challenge from the full transcript, and respond
// s = r + c*x.
func Prove(g1, x1, g2, x2 *group.Point, x *group.Scalar, rand io.Reader) (*Proof, error) {
	r, err := group.RandomScalar(rand)
	if err != nil {
		return nil, err
	}

	r1 := g1.ScalarMul(r)
	r2 := g2.ScalarMul(r)

	c := challenge(g1, x1, g2, x2, r1, r2)
	s := r.Add(c.Mul(x))

	return &Proof{S: s, C: c}, nil
}

// Verify checks the proof by recomputing R1' = s*G1 - c*X1,
// R2' = s*G2 - c*X2, and comparing the recomputed challenge against the
// one carried by the proof.
func (p *Proof) Verify(g1, x1, g2, x2 *group.Point) error {
	r1Prime := g1.ScalarMul(p.S).Sub(x1.ScalarMul(p.C))
	r2Prime := g2.ScalarMul(p.S).Sub(x2.ScalarMul(p.C))

	recomputed := challenge(g1, x1, g2, x2, r1Prime, r2Prime)
	if !recomputed.Equal(p.C) {
		return ErrInvalidDleq
	}
	return nil
}

func challenge(g1, x1, g2, x2, r1, r2 *group.Point) *group.Scalar {
	return transcript.HashToScalar(
		g1.Bytes(), x1.Bytes(), g2.Bytes(), x2.Bytes(), r1.Bytes(), r2.Bytes(),
	)
}
