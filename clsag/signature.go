package clsag

import (
	"errors"
	"fmt"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// ErrMalformedSignature is returned when decoding a byte blob that is not
// exactly the expected on-chain layout, or whose fields fail canonical
// decoding.
var ErrMalformedSignature = errors.New("clsag: malformed signature encoding")

// encodedLen is (c1) + (ring.Size responses) + (D), all 32-byte fields.
const encodedLen = 32*ring.Size + 64

// Signature is the CLSAG output: the initial challenge, the N responses in
// ring-position order (the real response at index 0), the key image, and
// the commitment image.
type Signature struct {
	C1 *group.Scalar
	S  [ring.Size]*group.Scalar
	I  *group.Point
	D  *group.Point
}

// WireD returns 8^-1 * D, the cofactor-adjusted form Monero transports on
// chain. The in-memory D field is left unchanged by this method; callers
// preparing a transaction encoding must go through WireD explicitly (see
// spec.md §6's open question on D vs 8^-1*D, resolved in DESIGN.md).
func (s *Signature) WireD() *group.Point {
	return s.D.ScalarMul(eightInverse())
}

// Bytes encodes the signature as c1 || s[0] || ... || s[N-1] || D, matching
// spec.md §6's bit-exact on-chain mapping except for the key image, which
// is published alongside the signature blob rather than inside it.
func (s *Signature) Bytes() []byte {
	out := make([]byte, 0, encodedLen)
	out = append(out, s.C1.Bytes()...)
	for _, si := range s.S {
		out = append(out, si.Bytes()...)
	}
	out = append(out, s.D.Bytes()...)
	return out
}

// Decode parses a byte blob produced by Bytes back into a Signature. The
// key image is supplied by the caller since it travels outside the blob.
func Decode(b []byte, keyImage *group.Point) (*Signature, error) {
	if len(b) != encodedLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, encodedLen, len(b))
	}

	c1, err := group.ScalarFromCanonicalBytes(b[:32])
	if err != nil {
		return nil, fmt.Errorf("%w: c1: %v", ErrMalformedSignature, err)
	}

	var responses [ring.Size]*group.Scalar
	for i := 0; i < ring.Size; i++ {
		offset := 32 + i*32
		si, err := group.ScalarFromCanonicalBytes(b[offset : offset+32])
		if err != nil {
			return nil, fmt.Errorf("%w: s[%d]: %v", ErrMalformedSignature, i, err)
		}
		responses[i] = si
	}

	dOffset := 32 + ring.Size*32
	d, err := group.PointFromCanonicalBytes(b[dOffset : dOffset+32])
	if err != nil {
		return nil, fmt.Errorf("%w: D: %v", ErrMalformedSignature, err)
	}

	return &Signature{
		C1: c1,
		S:  responses,
		I:  keyImage,
		D:  d,
	}, nil
}
