package group

import (
	"crypto/rand"
	"testing"

	"threshold.network/clsagadaptor/internal/testutils"
)

func TestScalarArithmetic(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}
	b, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}

	sum := a.Add(b)
	back := sum.Sub(b)
	testutils.AssertScalarsEqual(t, "a recovered from (a+b)-b", a, back)

	prod := a.Mul(b)
	inv := b.Invert()
	recovered := prod.Mul(inv)
	testutils.AssertScalarsEqual(t, "a recovered from (a*b)*b^-1", a, recovered)

	negated := a.Negate()
	zero := a.Add(negated)
	testutils.AssertScalarsEqual(t, "a+(-a) equals a-a", a.Sub(a), zero)
}

func TestScalarFromHashIsDeterministic(t *testing.T) {
	digest := [32]byte{1, 2, 3, 4, 5}

	s1 := ScalarFromHash(digest)
	s2 := ScalarFromHash(digest)

	testutils.AssertScalarsEqual(t, "ScalarFromHash is deterministic", s1, s2)
}

func TestScalarFromUint64(t *testing.T) {
	eight := ScalarFromUint64(8)
	product := eight.Invert().Mul(eight)
	one := ScalarFromUint64(1)

	testutils.AssertScalarsEqual(t, "8 * 8^-1 == 1", one, product)
}

func TestScalarCanonicalRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}

	parsed, err := ScalarFromCanonicalBytes(s.Bytes())
	if err != nil {
		t.Fatalf("unexpected error parsing canonical scalar: %v", err)
	}

	testutils.AssertScalarsEqual(t, "scalar round trip", s, parsed)
}

func TestScalarFromCanonicalBytesRejectsNonCanonical(t *testing.T) {
	var tooBig [32]byte
	for i := range tooBig {
		tooBig[i] = 0xff
	}

	if _, err := ScalarFromCanonicalBytes(tooBig[:]); err != ErrMalformedScalar {
		t.Errorf("expected ErrMalformedScalar, got %v", err)
	}
}

func TestPointArithmeticAndBase(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}

	p1 := Base().ScalarMul(s)
	p2 := ScalarBaseMul(s)

	testutils.AssertPointsEqual(t, "Base().ScalarMul == ScalarBaseMul", p1, p2)

	sum := p1.Add(p2)
	back := sum.Sub(p2)
	testutils.AssertPointsEqual(t, "point recovered from (p+q)-q", p1, back)
}

func TestPointCanonicalRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}
	p := ScalarBaseMul(s)

	parsed, err := PointFromCanonicalBytes(p.Bytes())
	if err != nil {
		t.Fatalf("unexpected error parsing canonical point: %v", err)
	}

	testutils.AssertPointsEqual(t, "point round trip", p, parsed)
}

func TestPointFromCanonicalBytesRejectsGarbage(t *testing.T) {
	garbage := make([]byte, 32)
	for i := range garbage {
		garbage[i] = 0xee
	}

	if _, err := PointFromCanonicalBytes(garbage); err != ErrMalformedPoint {
		t.Errorf("expected ErrMalformedPoint, got %v", err)
	}
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}
	p := ScalarBaseMul(s)

	sum := p.Add(Identity())
	testutils.AssertPointsEqual(t, "p + identity == p", p, sum)
}

func TestClearCofactorMultipliesByEight(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}
	p := ScalarBaseMul(s)

	cleared := p.ClearCofactor()
	expected := p.ScalarMul(ScalarFromUint64(8))

	testutils.AssertPointsEqual(t, "ClearCofactor returns 8*p", expected, cleared)
}

func TestHashToPointIsDeterministicAndInSubgroup(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("could not sample scalar: %v", err)
	}
	p := ScalarBaseMul(s)

	h1 := HashToPoint(p)
	h2 := HashToPoint(p)
	testutils.AssertPointsEqual(t, "HashToPoint is deterministic", h1, h2)

	// 8^-1 * (8 * h1) == h1 holds only when h1 has no small-order component.
	projected := h1.ClearCofactor().ScalarMul(ScalarFromUint64(8).Invert())
	testutils.AssertPointsEqual(t, "HashToPoint output is already in the prime-order subgroup", h1, projected)
}

func TestHashToPointDiffersOnDifferentInputs(t *testing.T) {
	s1, _ := RandomScalar(rand.Reader)
	s2, _ := RandomScalar(rand.Reader)
	p1 := ScalarBaseMul(s1)
	p2 := ScalarBaseMul(s2)

	h1 := HashToPoint(p1)
	h2 := HashToPoint(p2)

	if h1.Equal(h2) {
		t.Errorf("HashToPoint produced the same output for different inputs")
	}
}
