// Package adaptor implements the two-party protocol that jointly produces
// an adaptor-form CLSAG signature (spec.md §4.G): Alice and Bob each hold
// half of the signing key and exchange four fixed messages, after which
// either party can complete the signature by adding a discrete-log secret
// known only to Alice, revealing that secret in the process.
package adaptor

import (
	"threshold.network/clsagadaptor/commitment"
	"threshold.network/clsagadaptor/dleq"
	"threshold.network/clsagadaptor/group"
)

// Message0 is sent Alice -> Bob: Alice's commitment to her decoy responses
// and nonce points, plus a DLEQ proof binding her nonce commitment to her
// key-image nonce.
type Message0 struct {
	Commitment commitment.Digest
	Proof      *dleq.Proof
}

// Message1 is sent Bob -> Alice: Bob's key-image share, nonce points, and
// the matching DLEQ proof.
type Message1 struct {
	IB    *group.Point
	TB    *group.Point
	IHatB *group.Point
	Proof *dleq.Proof
}

// Message2 is sent Alice -> Bob: the opening of Alice's message-0
// commitment, plus her half of the real response s0.
type Message2 struct {
	Opening commitment.Opening
	S0Half  *group.Scalar
}

// Message3 is sent Bob -> Alice: Bob's half of the real response s0.
type Message3 struct {
	S0Half *group.Scalar
}
