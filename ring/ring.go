// Package ring holds the fixed-size point sequences a CLSAG signature is
// computed over: the public-key ring and the parallel commitment ring.
package ring

import (
	"errors"
	"fmt"

	"threshold.network/clsagadaptor/group"
)

// Size is the fixed ring cardinality, N, from spec.md §3. The real signer
// is always at index 0; indices 1..Size-1 are decoys.
const Size = 11

// ErrWrongSize is returned when constructing a ring from a slice whose
// length is not exactly Size.
var ErrWrongSize = errors.New("ring: expected exactly 11 points")

// Ring is an ordered sequence of Size public keys, one of which (index 0)
// is the real signer's. A Ring is immutable once constructed; Bytes is
// computed once and cached.
type Ring struct {
	points [Size]*group.Point
	bytes  []byte
}

// CommitmentRing is structurally identical to Ring: element i is the
// Pedersen commitment paired with ring member i.
type CommitmentRing struct {
	points [Size]*group.Point
	bytes  []byte
}

// New builds a Ring from exactly Size points, in order.
func New(points []*group.Point) (*Ring, error) {
	if len(points) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrWrongSize, len(points))
	}
	r := &Ring{}
	copy(r.points[:], points)
	r.bytes = concatPoints(r.points[:])
	return r, nil
}

// NewCommitmentRing builds a CommitmentRing from exactly Size points, in
// order, paired positionally with a Ring's members.
func NewCommitmentRing(points []*group.Point) (*CommitmentRing, error) {
	if len(points) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrWrongSize, len(points))
	}
	c := &CommitmentRing{}
	copy(c.points[:], points)
	c.bytes = concatPoints(c.points[:])
	return c, nil
}

// At returns the point at position i.
func (r *Ring) At(i int) *group.Point {
	return r.points[i]
}

// Bytes returns the concatenation of the Size 32-byte compressed point
// encodings, in ring order.
func (r *Ring) Bytes() []byte {
	return r.bytes
}

// At returns the commitment at position i.
func (c *CommitmentRing) At(i int) *group.Point {
	return c.points[i]
}

// Bytes returns the concatenation of the Size 32-byte compressed point
// encodings, in ring order.
func (c *CommitmentRing) Bytes() []byte {
	return c.bytes
}

func concatPoints(points []*group.Point) []byte {
	out := make([]byte, 0, len(points)*32)
	for _, p := range points {
		out = append(out, p.Bytes()...)
	}
	return out
}
