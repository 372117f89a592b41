package internal

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/minaorangina/crazycircus/podium"
)

// FailureMessage reports a got/want mismatch
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()

	t.Errorf("\nGot: %s\nwant: %s", TypeToString(got), TypeToString(want))
}

// TypeToString returns the string representation of a non-string type
func TypeToString(obj interface{}) string {
	return fmt.Sprintf("%+v", obj)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored checks for the existence of an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertEqual checks that the values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		FailureMessage(t, got, want)
	}
}

// AssertDeepEqual checks that the values are deeply equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Error("Expected to be true, but it wasn't")
	}
}

// Tokens turns names into tokens, e.g. Tokens("LION", "OURS")
func Tokens(names ...string) []podium.Token {
	out := make([]podium.Token, len(names))
	for i, n := range names {
		out[i] = podium.Token(n)
	}
	return out
}

// AssertPodium checks one podium against a top-to-bottom list of names
func AssertPodium(t *testing.T, s *podium.State, c podium.Color, topToBottom ...string) {
	t.Helper()

	got := s.Tokens(c)
	want := Tokens(topToBottom...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s podium\nGot: %v\nwant: %v", c, got, want)
	}
}
