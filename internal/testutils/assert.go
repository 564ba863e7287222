package testutils

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"threshold.network/clsagadaptor/group"
)

// AssertIntsEqual checks if two integers are equal. If not, it reports a test
// failure.
func AssertIntsEqual(t *testing.T, description string, expected int, actual int) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBytesEqual checks if the two bytes array are equal. If not, it reports
// a test failure.
func AssertBytesEqual(t *testing.T, expectedBytes []byte, actualBytes []byte) {
	err := testBytesEqual(expectedBytes, actualBytes)

	if err != nil {
		t.Error(err)
	}
}

// AssertStringsEqual checks if two strings are equal. If not, it reports a test
// failure.
func AssertStringsEqual(t *testing.T, description string, expected string, actual string) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBoolsEqual checks if two booleans are equal. If not, it reports a test
// failure.
func AssertBoolsEqual(t *testing.T, description string, expected bool, actual bool) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

func testBytesEqual(expectedBytes []byte, actualBytes []byte) error {
	minLen := len(expectedBytes)
	diffCount := 0
	if actualLen := len(actualBytes); actualLen < minLen {
		diffCount = minLen - actualLen
		minLen = actualLen
	} else {
		diffCount = actualLen - minLen
	}

	for i := 0; i < minLen; i++ {
		if expectedBytes[i] != actualBytes[i] {
			diffCount++
		}
	}

	if diffCount != 0 {
		return fmt.Errorf(
			"byte slices differ in %v places\nexpected: [%v]\nactual:   [%v]",
			diffCount,
			expectedBytes,
			actualBytes,
		)
	}

	return nil
}

// AssertScalarsEqual checks if two scalars represent the same field element.
// If not, it reports a test failure.
func AssertScalarsEqual(t *testing.T, description string, expected *group.Scalar, actual *group.Scalar) {
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}

// AssertPointsEqual checks if two points represent the same group element.
// If not, it reports a test failure.
func AssertPointsEqual(t *testing.T, description string, expected *group.Point, actual *group.Point) {
	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}

// AssertErrorIs checks that actual wraps target, as established by
// errors.Is. If not, it reports a test failure.
func AssertErrorIs(t *testing.T, description string, target error, actual error) {
	if !errors.Is(actual, target) {
		t.Errorf(
			"unexpected %s\nexpected error: %v\nactual error:   %v\n",
			description,
			target,
			actual,
		)
	}
}

// AssertDeepEqual checks if two values are deeply equal. If not, it reports
// a test failure.
func AssertDeepEqual(
	t *testing.T,
	description string,
	expected any,
	actual any,
) {
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}
