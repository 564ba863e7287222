// Package transcript provides the domain-separated Keccak256 hashing this
// protocol's Fiat-Shamir challenges are built from. Every hash below reduces
// its digest mod l via group.ScalarFromHash, matching spec.md §6's hash
// domain separators exactly (ASCII, no null terminator).
package transcript

import (
	"golang.org/x/crypto/sha3"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// Domain separators for the CLSAG aggregation scalars and round challenge,
// reproduced verbatim from spec.md §6.
const (
	DomainAggP   = "CLSAG_agg_0"
	DomainAggC   = "CLSAG_agg_1"
	DomainRound  = "CLSAG_round"
	DomainHashPt = "CLSAG_hash_to_point"
)

// HashToScalar concatenates parts in order, Keccak256-hashes the result,
// and reduces the 32-byte digest mod l.
func HashToScalar(parts ...[]byte) *group.Scalar {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return group.ScalarFromHash(digest)
}

// AggregationScalars computes the mu_P/mu_C weights that fold the
// public-key ring and the commitment ring into one CLSAG challenge cycle
// (spec.md §4.D step 2).
func AggregationScalars(
	r *ring.Ring,
	c *ring.CommitmentRing,
	I, D, pseudoOut *group.Point,
) (muP, muC *group.Scalar) {
	muP = HashToScalar(
		[]byte(DomainAggP),
		r.Bytes(),
		c.Bytes(),
		I.Bytes(),
		D.Bytes(),
		pseudoOut.Bytes(),
	)
	muC = HashToScalar(
		[]byte(DomainAggC),
		r.Bytes(),
		c.Bytes(),
		I.Bytes(),
		D.Bytes(),
		pseudoOut.Bytes(),
	)
	return muP, muC
}

// RoundPrefix computes the common prefix P shared by every per-position
// challenge in a single kernel invocation (spec.md §4.D step 3). §5
// requires this to be computed once and reused across the N-1 decoy
// challenges, rather than recomputed per round.
func RoundPrefix(r *ring.Ring, c *ring.CommitmentRing, pseudoOut *group.Point, msg []byte) []byte {
	out := make([]byte, 0, len(DomainRound)+len(r.Bytes())+len(c.Bytes())+32+len(msg))
	out = append(out, []byte(DomainRound)...)
	out = append(out, r.Bytes()...)
	out = append(out, c.Bytes()...)
	out = append(out, pseudoOut.Bytes()...)
	out = append(out, msg...)
	return out
}

// RoundChallenge computes h = Keccak256(prefix || L || R) mod l, the
// recurrence step evaluated once per ring position (spec.md §4.D steps 4-5).
func RoundChallenge(prefix []byte, L, R *group.Point) *group.Scalar {
	return HashToScalar(prefix, L.Bytes(), R.Bytes())
}
