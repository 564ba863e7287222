package clsag

import (
	"testing"

	"threshold.network/clsagadaptor/internal/testutils"
)

func TestSignatureEncodeDecodeRoundTrip(t *testing.T) {
	f := buildFixture(t)
	sig := f.sign()

	encoded := sig.Bytes()
	decoded, err := Decode(encoded, sig.I)
	if err != nil {
		t.Fatalf("unexpected error decoding signature: %v", err)
	}

	testutils.AssertScalarsEqual(t, "c1 round trip", sig.C1, decoded.C1)
	for i := range sig.S {
		testutils.AssertScalarsEqual(t, "response round trip", sig.S[i], decoded.S[i])
	}
	testutils.AssertPointsEqual(t, "D round trip", sig.D, decoded.D)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, nil)
	testutils.AssertErrorIs(t, "wrong-length blob must fail", ErrMalformedSignature, err)
}

func TestWireDAppliesCofactorAdjustment(t *testing.T) {
	f := buildFixture(t)
	sig := f.sign()

	expected := sig.D.ScalarMul(eightInverse())
	testutils.AssertPointsEqual(t, "WireD applies 8^-1", expected, sig.WireD())
}
