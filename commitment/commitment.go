// Package commitment implements the binding, hiding hash commitment the
// adaptor protocol uses so Alice can lock in her decoy responses and nonce
// points before Bob reveals his own (spec.md §4.F).
package commitment

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/sha3"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// ErrCommitmentMismatch is returned when an Opening does not reproduce its
// claimed Commitment digest.
var ErrCommitmentMismatch = errors.New("commitment: opening does not match commitment")

// Digest is a 32-byte Keccak256 commitment to an Opening.
type Digest [32]byte

// Opening is the pre-image tuple of a Commitment: the N-1 fake responses
// together with the points I_a, Î_a and T_a. Protocol message 0 carries only
// the digest; the opening itself is sent in message 2.
type Opening struct {
	FakeResponses [ring.Size - 1]*group.Scalar
	IA            *group.Point
	IHatA         *group.Point
	TA            *group.Point
}

// Commit computes Keccak256(fake_bytes || I_a || Î_a || T_a), where
// fake_bytes is the concatenation of the canonical 32-byte encodings of the
// fake responses in order.
func Commit(o Opening) Digest {
	h := sha3.NewLegacyKeccak256()
	for _, s := range o.FakeResponses {
		h.Write(s.Bytes())
	}
	h.Write(o.IA.Bytes())
	h.Write(o.IHatA.Bytes())
	h.Write(o.TA.Bytes())

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Verify recomputes the digest of o and compares it constant-time against
// want, per spec.md §5's requirement that commitment checks avoid timing
// oracles on secret material.
func (o Opening) Verify(want Digest) error {
	got := Commit(o)
	if subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
		return ErrCommitmentMismatch
	}
	return nil
}
