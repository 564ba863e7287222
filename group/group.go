// Package group is a thin facade over the Ed25519 scalar field and the
// prime-order subgroup of the Ed25519 curve, backed by filippo.io/edwards25519.
//
// It exists so that the rest of this module talks about "scalars" and
// "points" without reaching into the underlying curve library directly,
// mirroring the way threshold-network-roast-go's frost.Ciphersuite/Curve
// interfaces keep the elliptic-curve backend out of the protocol code.
package group

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// ErrMalformedScalar is returned when a 32-byte value is not the canonical
// little-endian encoding of an element of F_l.
var ErrMalformedScalar = errors.New("group: malformed scalar encoding")

// ErrMalformedPoint is returned when a 32-byte value is not the canonical
// compressed encoding of a valid, torsion-free Ed25519 point.
var ErrMalformedPoint = errors.New("group: malformed point encoding")

// Scalar is an element of F_l, the Ed25519 scalar field, l = 2^252 + 27742...493.
type Scalar struct {
	inner *edwards25519.Scalar
}

func wrapScalar(s *edwards25519.Scalar) *Scalar {
	return &Scalar{inner: s}
}

// ScalarFromCanonicalBytes parses a 32-byte little-endian scalar. The bytes
// must already be reduced mod l; use ScalarFromHash or RandomScalar to
// reduce arbitrary material.
func ScalarFromCanonicalBytes(b []byte) (*Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrMalformedScalar
	}
	return wrapScalar(s), nil
}

// ScalarFromWideBytes reduces a 64-byte little-endian value mod l.
func ScalarFromWideBytes(b []byte) *Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(b)
	if err != nil {
		panic("group: SetUniformBytes requires exactly 64 bytes")
	}
	return wrapScalar(s)
}

// ScalarFromHash reduces a 32-byte hash digest mod l. The digest is
// zero-extended to the 64-byte width SetUniformBytes requires; since the
// appended high bytes are zero, the represented integer is unchanged and
// only its wide reduction path is reused, exactly as a 32-byte
// Keccak256 output is reduced mod l throughout the CLSAG transcript.
func ScalarFromHash(digest [32]byte) *Scalar {
	var wide [64]byte
	copy(wide[:32], digest[:])
	return ScalarFromWideBytes(wide[:])
}

// ScalarFromUint64 encodes a small non-secret constant as a scalar. Used for
// the literal "8" in the cofactor-adjustment 8^-1 * D.
func ScalarFromUint64(v uint64) *Scalar {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], v)
	s, err := ScalarFromCanonicalBytes(b[:])
	if err != nil {
		panic("group: a uint64 zero-extended to 32 bytes is always canonical")
	}
	return s
}

// RandomScalar draws 64 bytes from rand and reduces them mod l, giving a
// uniform element of F_l as required by the RNG contract in spec.md §6.
func RandomScalar(rand io.Reader) (*Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rand, b[:]); err != nil {
		return nil, err
	}
	return ScalarFromWideBytes(b[:]), nil
}

// Add returns s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Add(s.inner, other.inner))
}

// Sub returns s - other.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Subtract(s.inner, other.inner))
}

// Mul returns s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Multiply(s.inner, other.inner))
}

// Negate returns -s.
func (s *Scalar) Negate() *Scalar {
	return wrapScalar(edwards25519.NewScalar().Negate(s.inner))
}

// Invert returns s^-1. If s is zero the result is zero, matching the
// library's own behavior; callers never invert a secret that can
// legitimately be zero.
func (s *Scalar) Invert() *Scalar {
	return wrapScalar(edwards25519.NewScalar().Invert(s.inner))
}

// Equal reports whether s and other represent the same field element.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.inner.Equal(other.inner) == 1
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// Zeroize scrubs the scalar's representation by overwriting it with the
// canonical encoding of zero. This is the deterministic scrub called for by
// spec.md §5's secret-material discipline; filippo.io/edwards25519 keeps no
// lower-level buffer this package can reach to wipe directly.
func (s *Scalar) Zeroize() {
	var zero [32]byte
	_, _ = s.inner.SetCanonicalBytes(zero[:])
}

// Point is an element of the prime-order subgroup of the Ed25519 curve.
type Point struct {
	inner *edwards25519.Point
}

func wrapPoint(p *edwards25519.Point) *Point {
	return &Point{inner: p}
}

// Identity returns the group identity element.
func Identity() *Point {
	return wrapPoint(edwards25519.NewIdentityPoint())
}

// Base returns the Ed25519 base point G.
func Base() *Point {
	return wrapPoint(edwards25519.NewGeneratorPoint())
}

// PointFromCanonicalBytes parses a 32-byte compressed point. Points not on
// the curve are rejected by filippo.io/edwards25519's own validation; since
// that validation accepts non-canonical encodings and points with a
// small-order component, both are rejected here as well.
func PointFromCanonicalBytes(b []byte) (*Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, ErrMalformedPoint
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrMalformedPoint
	}
	// 8^-1 * (8 * p) == p holds only when p has no small-order component.
	wrapped := wrapPoint(p)
	if !wrapped.ClearCofactor().ScalarMul(ScalarFromUint64(8).Invert()).Equal(wrapped) {
		return nil, ErrMalformedPoint
	}
	return wrapped, nil
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().Add(p.inner, q.inner))
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().Subtract(p.inner, q.inner))
}

// ScalarMul returns s * p.
func (p *Point) ScalarMul(s *Scalar) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().ScalarMult(s.inner, p.inner))
}

// ScalarBaseMul returns s * G.
func ScalarBaseMul(s *Scalar) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().ScalarBaseMult(s.inner))
}

// ClearCofactor returns 8 * p, projecting an arbitrary curve point into the
// prime-order subgroup. Used when deriving H_p(P) (see HashToPoint) so that
// key images and commitment images never carry a small-order component.
func (p *Point) ClearCofactor() *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().MultByCofactor(p.inner))
}

// Equal reports whether p and q represent the same group element.
func (p *Point) Equal(q *Point) bool {
	return p.inner.Equal(q.inner) == 1
}

// Bytes returns the canonical 32-byte little-endian compressed encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// HashToPoint computes H_p(P), a hash from a point to a point with no known
// discrete log relative to G. spec.md places key-image hashing out of scope
// ("assumed available as H_p: Point -> Point"); this is the stand-in used
// to make the package runnable end to end. It follows the classic
// hash-and-increment construction: Keccak256 the candidate encoding until it
// decodes to a valid curve point, then clear the cofactor.
func HashToPoint(p *Point) *Point {
	seed := p.Bytes()
	var counter [4]byte
	for ctr := uint32(0); ; ctr++ {
		binary.LittleEndian.PutUint32(counter[:], ctr)
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte("CLSAG_hash_to_point"))
		h.Write(seed)
		h.Write(counter[:])
		digest := h.Sum(nil)

		candidate, err := PointFromCanonicalBytes(digest)
		if err != nil {
			continue
		}
		return candidate.ClearCofactor()
	}
}
