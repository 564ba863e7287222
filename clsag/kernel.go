// Package clsag implements the CLSAG ring-signature kernel: the
// challenge-cycle recurrence that produces (and, for testing, verifies) a
// signature binding a public-key ring and a commitment ring under one
// Fiat-Shamir cycle.
package clsag

import (
	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
	"threshold.network/clsagadaptor/transcript"
)

// eightInverse is the multiplicative inverse of 8 mod l, used to fold the
// cofactor into the commitment image before it enters any challenge hash.
func eightInverse() *group.Scalar {
	return group.ScalarFromUint64(8).Invert()
}

// Input gathers everything the kernel needs to produce one signature.
// FakeResponses holds the ring.Size-1 decoy responses for positions
// 1..ring.Size-1; LExt and RExt are the extra nonce contributions folded
// into position 0's first challenge (alpha*G and alpha*Hp0 in a
// single-party reference; the two-party protocol splices its own nonce and
// adaptor points in here instead).
type Input struct {
	FakeResponses  [ring.Size - 1]*group.Scalar
	Ring           *ring.Ring
	CommitmentRing *ring.CommitmentRing
	X              *group.Scalar
	Z              *group.Scalar
	Hp0            *group.Point
	PseudoOutput   *group.Point
	LExt           *group.Point
	RExt           *group.Point
	I              *group.Point
	Msg            []byte
	Alpha          *group.Scalar
}

// Sign runs the CLSAG signing kernel (spec.md §4.D) and returns the
// resulting Signature. It is total over well-formed Input: the only
// failure mode is a malformed group element, which the caller must have
// already rejected at deserialization time.
func Sign(in Input) *Signature {
	D := in.Hp0.ScalarMul(in.Z)
	DPrime := D.ScalarMul(eightInverse())

	muP, muC := transcript.AggregationScalars(in.Ring, in.CommitmentRing, in.I, D, in.PseudoOutput)
	prefix := transcript.RoundPrefix(in.Ring, in.CommitmentRing, in.PseudoOutput, in.Msg)

	hPrev := transcript.RoundChallenge(prefix, in.LExt, in.RExt)
	c1 := hPrev

	var responses [ring.Size]*group.Scalar
	for i := 1; i < ring.Size; i++ {
		s := in.FakeResponses[i-1]
		responses[i] = s

		hMuP := hPrev.Mul(muP)
		hMuC := hPrev.Mul(muC)

		Pi := in.Ring.At(i)
		Ci := in.CommitmentRing.At(i)

		L := group.ScalarBaseMul(s).
			Add(Pi.ScalarMul(hMuP)).
			Add(Ci.Sub(in.PseudoOutput).ScalarMul(hMuC))

		HpPi := group.HashToPoint(Pi)
		R := HpPi.ScalarMul(s).
			Add(in.I.ScalarMul(hMuP)).
			Add(DPrime.ScalarMul(hMuC))

		hPrev = transcript.RoundChallenge(prefix, L, R)
	}

	s0 := in.Alpha.Sub(hPrev.Mul(muP.Mul(in.X).Add(muC.Mul(in.Z))))
	responses[0] = s0

	return &Signature{
		C1: c1,
		S:  responses,
		I:  in.I,
		D:  D,
	}
}
