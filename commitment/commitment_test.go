package commitment

import (
	"crypto/rand"
	"testing"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/internal/testutils"
	"threshold.network/clsagadaptor/ring"
)

func randomOpening(t *testing.T) Opening {
	t.Helper()

	var fake [ring.Size - 1]*group.Scalar
	for i := range fake {
		s, err := group.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("could not sample fake response: %v", err)
		}
		fake[i] = s
	}

	sample := func() *group.Point {
		s, err := group.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("could not sample point seed: %v", err)
		}
		return group.ScalarBaseMul(s)
	}

	return Opening{
		FakeResponses: fake,
		IA:            sample(),
		IHatA:         sample(),
		TA:            sample(),
	}
}

func TestCommitVerifyRoundTrip(t *testing.T) {
	o := randomOpening(t)
	d := Commit(o)

	if err := o.Verify(d); err != nil {
		t.Errorf("an honest opening must verify against its own commitment: %v", err)
	}
}

func TestVerifyRejectsTamperedFakeResponse(t *testing.T) {
	o := randomOpening(t)
	d := Commit(o)

	one := group.ScalarFromUint64(1)
	o.FakeResponses[0] = o.FakeResponses[0].Add(one)

	err := o.Verify(d)
	testutils.AssertErrorIs(t, "tampered fake response must be rejected", ErrCommitmentMismatch, err)
}

func TestVerifyRejectsTamperedPoint(t *testing.T) {
	o := randomOpening(t)
	d := Commit(o)

	tamperedScalar, _ := group.RandomScalar(rand.Reader)
	o.TA = group.ScalarBaseMul(tamperedScalar)

	err := o.Verify(d)
	testutils.AssertErrorIs(t, "tampered point must be rejected", ErrCommitmentMismatch, err)
}

func TestDifferentOpeningsYieldDifferentDigests(t *testing.T) {
	a := randomOpening(t)
	b := randomOpening(t)

	da := Commit(a)
	db := Commit(b)

	if da == db {
		t.Errorf("two independently sampled openings collided, which should happen only with negligible probability")
	}
}
