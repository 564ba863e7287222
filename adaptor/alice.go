package adaptor

import (
	"io"

	"threshold.network/clsagadaptor/clsag"
	"threshold.network/clsagadaptor/commitment"
	"threshold.network/clsagadaptor/dleq"
	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/ring"
)

// Alice0 is Alice's state before she has sent or received any message. The
// real signer is always ring position 0; her joint public key is
// ring.At(0) = (s'_a + s_b)*G.
type Alice0 struct {
	ring           *ring.Ring
	commitmentRing *ring.CommitmentRing
	pseudoOutput   *group.Point
	msg            []byte
	ra             *group.Point // R_a = r_a*G
	rPrimeA        *group.Point // R'_a = r_a*Hp(P0)
	sPrimeA        *group.Scalar
	fakeResponses  [ring.Size - 1]*group.Scalar
	alphaA         *group.Scalar
	hp0            *group.Point
	ia             *group.Point
	iHatA          *group.Point
	ta             *group.Point
}

// NewAlice0 samples Alice's nonce and decoy responses and derives her
// public nonce/key-image material.
func NewAlice0(
	r *ring.Ring,
	commitmentRing *ring.CommitmentRing,
	pseudoOutput *group.Point,
	msg []byte,
	ra *group.Point,
	rPrimeA *group.Point,
	sPrimeA *group.Scalar,
	rand io.Reader,
) (*Alice0, error) {
	var fakeResponses [ring.Size - 1]*group.Scalar
	for i := range fakeResponses {
		s, err := group.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		fakeResponses[i] = s
	}

	alphaA, err := group.RandomScalar(rand)
	if err != nil {
		return nil, err
	}

	hp0 := group.HashToPoint(r.At(0))

	return &Alice0{
		ring:           r,
		commitmentRing: commitmentRing,
		pseudoOutput:   pseudoOutput,
		msg:            msg,
		ra:             ra,
		rPrimeA:        rPrimeA,
		sPrimeA:        sPrimeA,
		fakeResponses:  fakeResponses,
		alphaA:         alphaA,
		hp0:            hp0,
		ia:             hp0.ScalarMul(sPrimeA),
		iHatA:          hp0.ScalarMul(alphaA),
		ta:             group.ScalarBaseMul(alphaA),
	}, nil
}

// NextMessage produces Message0: Alice's commitment to her decoys and
// nonce points, plus the DLEQ proof that Î_a and T_a share the witness
// alpha_a.
func (a *Alice0) NextMessage(rand io.Reader) (*Message0, error) {
	proof, err := dleq.Prove(group.Base(), a.ta, a.hp0, a.iHatA, a.alphaA, rand)
	if err != nil {
		return nil, err
	}

	digest := commitment.Commit(commitment.Opening{
		FakeResponses: a.fakeResponses,
		IA:            a.ia,
		IHatA:         a.iHatA,
		TA:            a.ta,
	})

	return &Message0{Commitment: digest, Proof: proof}, nil
}

// Receive verifies Bob's DLEQ proof and half-signs with the kernel,
// producing Alice1. z is the shared blinding delta (spec.md §4.D); it is
// not part of the wire message because it is agreed out of band by both
// parties, exactly as the original two-party exchange this is grounded on
// passes z directly into each party's half-sign step.
func (a *Alice0) Receive(msg *Message1, z *group.Scalar) (*Alice1, error) {
	if err := msg.Proof.Verify(group.Base(), msg.TB, a.hp0, msg.IHatB); err != nil {
		return nil, err
	}

	I := a.ia.Add(msg.IB)
	lExt := a.ta.Add(msg.TB).Add(a.ra)
	rExt := a.iHatA.Add(msg.IHatB).Add(a.rPrimeA)

	sig := clsag.Sign(clsag.Input{
		FakeResponses:  a.fakeResponses,
		Ring:           a.ring,
		CommitmentRing: a.commitmentRing,
		X:              a.sPrimeA,
		Z:              z,
		Hp0:            a.hp0,
		PseudoOutput:   a.pseudoOutput,
		LExt:           lExt,
		RExt:           rExt,
		I:              I,
		Msg:            a.msg,
		Alpha:          a.alphaA,
	})

	return &Alice1{
		fakeResponses: a.fakeResponses,
		ia:            a.ia,
		iHatA:         a.iHatA,
		ta:            a.ta,
		half: HalfAdaptorSignature{
			S0Half:        sig.S[0],
			FakeResponses: a.fakeResponses,
			C1:            sig.C1,
			I:             sig.I,
			D:             sig.D,
		},
	}, nil
}

// Alice1 is Alice's state after receiving Message1 and half-signing.
type Alice1 struct {
	fakeResponses [ring.Size - 1]*group.Scalar
	ia            *group.Point
	iHatA         *group.Point
	ta            *group.Point
	half          HalfAdaptorSignature
}

// NextMessage produces Message2: the opening of Alice's message-0
// commitment and her half-response.
func (a *Alice1) NextMessage() *Message2 {
	return &Message2{
		Opening: commitment.Opening{
			FakeResponses: a.fakeResponses,
			IA:            a.ia,
			IHatA:         a.iHatA,
			TA:            a.ta,
		},
		S0Half: a.half.S0Half,
	}
}

// Receive folds in Bob's half-response, completing the adaptor signature.
func (a *Alice1) Receive(msg *Message3) *Alice2 {
	return &Alice2{AdaptorSig: a.half.Complete(msg.S0Half)}
}

// Alice2 is Alice's terminal state: she holds the finished adaptor
// signature, missing only the offset y = r_a she already knows.
type Alice2 struct {
	AdaptorSig AdaptorSignature
}
