package clsag

import (
	"errors"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
	"threshold.network/clsagadaptor/transcript"
)

// ErrVerificationFailed is returned when the challenge cycle does not close
// back to c1 after N positions.
var ErrVerificationFailed = errors.New("clsag: signature verification failed")

// Verify checks the CLSAG closure property (spec.md §8, testable property
// 1): walking every ring position with its stored response must return to
// c1 after N steps. This is test-only machinery, not an on-chain verifier
// (spec.md explicitly excludes on-chain verification and batch
// verification); it exists to let the kernel's output be checked at all,
// since the original verifier it would otherwise be ported from is
// incomplete (see DESIGN.md).
func (s *Signature) Verify(r *ring.Ring, c *ring.CommitmentRing, pseudoOutput *group.Point, msg []byte) error {
	muP, muC := transcript.AggregationScalars(r, c, s.I, s.D, pseudoOutput)
	prefix := transcript.RoundPrefix(r, c, pseudoOutput, msg)
	DPrime := s.D.ScalarMul(eightInverse())

	// Sign produces c1 from (LExt, RExt), then walks positions 1..N-1 in
	// order, solving position 0 last against the final accumulated
	// challenge. The closure check replays that same order, starting at
	// position 1 and wrapping around to position 0 last, so each position
	// is paired with the challenge Sign actually used for it.
	hPrev := s.C1
	for step := 0; step < ring.Size; step++ {
		i := (step + 1) % ring.Size
		si := s.S[i]
		hMuP := hPrev.Mul(muP)
		hMuC := hPrev.Mul(muC)

		Pi := r.At(i)
		Ci := c.At(i)

		L := group.ScalarBaseMul(si).
			Add(Pi.ScalarMul(hMuP)).
			Add(Ci.Sub(pseudoOutput).ScalarMul(hMuC))

		HpPi := group.HashToPoint(Pi)
		R := HpPi.ScalarMul(si).
			Add(s.I.ScalarMul(hMuP)).
			Add(DPrime.ScalarMul(hMuC))

		hPrev = transcript.RoundChallenge(prefix, L, R)
	}

	if !hPrev.Equal(s.C1) {
		return ErrVerificationFailed
	}
	return nil
}
