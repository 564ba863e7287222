package ring

import (
	"crypto/rand"
	"errors"
	"testing"

	"threshold.network/clsagadaptor/group"
	"threshold.network/clsagadaptor/internal/testutils"
)

func randomPoints(t *testing.T, n int) []*group.Point {
	t.Helper()
	points := make([]*group.Point, n)
	for i := range points {
		s, err := group.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("could not sample scalar: %v", err)
		}
		points[i] = group.ScalarBaseMul(s)
	}
	return points
}

func TestNewRejectsWrongSize(t *testing.T) {
	cases := map[string]int{
		"too few":  Size - 1,
		"too many": Size + 1,
		"empty":    0,
	}

	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(randomPoints(t, n))
			if !errors.Is(err, ErrWrongSize) {
				t.Errorf("expected ErrWrongSize, got %v", err)
			}
		})
	}
}

func TestNewCommitmentRingRejectsWrongSize(t *testing.T) {
	_, err := NewCommitmentRing(randomPoints(t, Size-1))
	if !errors.Is(err, ErrWrongSize) {
		t.Errorf("expected ErrWrongSize, got %v", err)
	}
}

func TestRingAtPreservesOrder(t *testing.T) {
	points := randomPoints(t, Size)
	r, err := New(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, p := range points {
		testutils.AssertPointsEqual(t, "ring member order preserved", p, r.At(i))
	}
}

func TestRingBytesIsOrderedConcatenation(t *testing.T) {
	points := randomPoints(t, Size)
	r, err := New(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := make([]byte, 0, Size*32)
	for _, p := range points {
		expected = append(expected, p.Bytes()...)
	}

	testutils.AssertBytesEqual(t, expected, r.Bytes())
}

func TestRingBytesIsCachedAcrossCalls(t *testing.T) {
	r, err := New(randomPoints(t, Size))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := r.Bytes()
	second := r.Bytes()
	testutils.AssertBytesEqual(t, first, second)
}

func TestCommitmentRingBytesMatchesRing(t *testing.T) {
	points := randomPoints(t, Size)
	commitmentRing, err := NewCommitmentRing(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plainRing, err := New(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutils.AssertBytesEqual(t, plainRing.Bytes(), commitmentRing.Bytes())
}
