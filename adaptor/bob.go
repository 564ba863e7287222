package adaptor

import (
	"io"

	"threshold.network/clsagadaptor/clsag"
	"threshold.network/clsagadaptor/commitment"
	"threshold.network/clsagadaptor/dleq"
	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// Bob0 is Bob's state before he has sent or received any message.
type Bob0 struct {
	ring           *ring.Ring
	commitmentRing *ring.CommitmentRing
	pseudoOutput   *group.Point
	msg            []byte
	ra             *group.Point
	rPrimeA        *group.Point
	sB             *group.Scalar
	alphaB         *group.Scalar
	hp0            *group.Point
	ib             *group.Point
	iHatB          *group.Point
	tb             *group.Point
}

// NewBob0 samples Bob's nonce and derives his public nonce/key-image
// material.
func NewBob0(
	r *ring.Ring,
	commitmentRing *ring.CommitmentRing,
	pseudoOutput *group.Point,
	msg []byte,
	ra *group.Point,
	rPrimeA *group.Point,
	sB *group.Scalar,
	rand io.Reader,
) (*Bob0, error) {
	alphaB, err := group.RandomScalar(rand)
	if err != nil {
		return nil, err
	}

	hp0 := group.HashToPoint(r.At(0))

	return &Bob0{
		ring:           r,
		commitmentRing: commitmentRing,
		pseudoOutput:   pseudoOutput,
		msg:            msg,
		ra:             ra,
		rPrimeA:        rPrimeA,
		sB:             sB,
		alphaB:         alphaB,
		hp0:            hp0,
		ib:             hp0.ScalarMul(sB),
		iHatB:          hp0.ScalarMul(alphaB),
		tb:             group.ScalarBaseMul(alphaB),
	}, nil
}

// Receive stores Alice's message-0 commitment and proof for later opening.
func (b *Bob0) Receive(msg *Message0) *Bob1 {
	return &Bob1{
		ring:            b.ring,
		commitmentRing:  b.commitmentRing,
		pseudoOutput:    b.pseudoOutput,
		msg:             b.msg,
		ra:              b.ra,
		rPrimeA:         b.rPrimeA,
		sB:              b.sB,
		alphaB:          b.alphaB,
		hp0:             b.hp0,
		ib:              b.ib,
		iHatB:           b.iHatB,
		tb:              b.tb,
		aliceCommitment: msg.Commitment,
		aliceDleqProof:  msg.Proof,
	}
}

// Bob1 is Bob's state after receiving Message0.
type Bob1 struct {
	ring            *ring.Ring
	commitmentRing  *ring.CommitmentRing
	pseudoOutput    *group.Point
	msg             []byte
	ra              *group.Point
	rPrimeA         *group.Point
	sB              *group.Scalar
	alphaB          *group.Scalar
	hp0             *group.Point
	ib              *group.Point
	iHatB           *group.Point
	tb              *group.Point
	aliceCommitment commitment.Digest
	aliceDleqProof  *dleq.Proof
}

// NextMessage produces Message1: Bob's key-image share, nonce points, and
// DLEQ proof.
func (b *Bob1) NextMessage(rand io.Reader) (*Message1, error) {
	proof, err := dleq.Prove(group.Base(), b.tb, b.hp0, b.iHatB, b.alphaB, rand)
	if err != nil {
		return nil, err
	}

	return &Message1{
		IB:    b.ib,
		TB:    b.tb,
		IHatB: b.iHatB,
		Proof: proof,
	}, nil
}

// Receive opens Alice's commitment, verifies her DLEQ proof, and half-signs
// with the kernel, producing Bob2. z is the shared blinding delta, passed
// the same way as in Alice0.Receive.
func (b *Bob1) Receive(msg *Message2, z *group.Scalar) (*Bob2, error) {
	if err := msg.Opening.Verify(b.aliceCommitment); err != nil {
		return nil, err
	}

	if err := b.aliceDleqProof.Verify(group.Base(), msg.Opening.TA, b.hp0, msg.Opening.IHatA); err != nil {
		return nil, err
	}

	I := msg.Opening.IA.Add(b.ib)
	lExt := msg.Opening.TA.Add(b.tb).Add(b.ra)
	rExt := msg.Opening.IHatA.Add(b.iHatB).Add(b.rPrimeA)

	sig := clsag.Sign(clsag.Input{
		FakeResponses:  msg.Opening.FakeResponses,
		Ring:           b.ring,
		CommitmentRing: b.commitmentRing,
		X:              b.sB,
		Z:              z,
		Hp0:            b.hp0,
		PseudoOutput:   b.pseudoOutput,
		LExt:           lExt,
		RExt:           rExt,
		I:              I,
		Msg:            b.msg,
		Alpha:          b.alphaB,
	})

	half := HalfAdaptorSignature{
		S0Half:        sig.S[0],
		FakeResponses: msg.Opening.FakeResponses,
		C1:            sig.C1,
		I:             sig.I,
		D:             sig.D,
	}

	return &Bob2{
		s0Half:     sig.S[0],
		AdaptorSig: half.Complete(msg.S0Half),
	}, nil
}

// Bob2 is Bob's terminal state.
type Bob2 struct {
	s0Half     *group.Scalar
	AdaptorSig AdaptorSignature
}

// NextMessage produces Message3: Bob's half-response.
func (b *Bob2) NextMessage() *Message3 {
	return &Message3{S0Half: b.s0Half}
}
