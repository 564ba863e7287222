package adaptor

import (
	"threshold.network/clsagadaptor/clsag"
	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// HalfAdaptorSignature is one party's additive share of the real response
// s0, together with the fully-formed remainder of the signature: both
// parties' kernel runs agree on C1, I, D, and the decoys, since they share
// the same ring, commitment ring, spliced nonce points, and joint key
// image.
type HalfAdaptorSignature struct {
	S0Half        *group.Scalar
	FakeResponses [ring.Size - 1]*group.Scalar
	C1            *group.Scalar
	I             *group.Point
	D             *group.Point
}

// Complete adds the counterparty's half-response, yielding a full
// AdaptorSignature still missing the adaptor offset y.
func (h HalfAdaptorSignature) Complete(otherHalf *group.Scalar) AdaptorSignature {
	return AdaptorSignature{
		S0Half:        h.S0Half.Add(otherHalf),
		FakeResponses: h.FakeResponses,
		C1:            h.C1,
		I:             h.I,
		D:             h.D,
	}
}

// AdaptorSignature is a complete CLSAG signature except that its real
// response is offset by an unknown y: the party completing it must add y
// to S0Half before the signature will verify (spec.md §3's AdaptorSignature
// entity).
type AdaptorSignature struct {
	S0Half        *group.Scalar
	FakeResponses [ring.Size - 1]*group.Scalar
	C1            *group.Scalar
	I             *group.Point
	D             *group.Point
}

// Adapt completes the signature by adding y to the half-response,
// producing a signature that verifies iff y is the secret the adaptor
// point Y = y*G committed to.
func (a AdaptorSignature) Adapt(y *group.Scalar) *clsag.Signature {
	var responses [ring.Size]*group.Scalar
	responses[0] = a.S0Half.Add(y)
	for i, s := range a.FakeResponses {
		responses[i+1] = s
	}

	return &clsag.Signature{
		C1: a.C1,
		S:  responses,
		I:  a.I,
		D:  a.D,
	}
}

// Extract recovers y given the completed signature sig and this adaptor
// signature's half-response, per spec.md §8 property 4: y = sig.S[0] -
// S0Half.
func (a AdaptorSignature) Extract(sig *clsag.Signature) *group.Scalar {
	return sig.S[0].Sub(a.S0Half)
}
