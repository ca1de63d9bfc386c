package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodePackageNotFound, "package not in AUR: %s", "foo")

	if err.Code != ErrCodePackageNotFound {
		t.Errorf("expected code %s, got %s", ErrCodePackageNotFound, err.Code)
	}
	if err.Message != "package not in AUR: foo" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("exit status 128")
	err := Wrap(ErrCodeTransport, cause, "clone failed for %s", "foo")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "TRANSPORT_FAILURE: clone failed for foo: exit status 128"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestIs_MatchesCode(t *testing.T) {
	err := New(ErrCodeInconsistentState, "tracked but not installed")

	if !Is(err, ErrCodeInconsistentState) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodePackageNotFound) {
		t.Error("Is should not match a different code")
	}
}

func TestIs_UnwrapsChain(t *testing.T) {
	inner := New(ErrCodeNetwork, "status 502")
	outer := fmt.Errorf("query aur: %w", inner)

	if !Is(outer, ErrCodeNetwork) {
		t.Error("Is should unwrap wrapped errors")
	}
	if GetCode(outer) != ErrCodeNetwork {
		t.Errorf("GetCode should unwrap, got %q", GetCode(outer))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("expected empty code for plain error, got %q", code)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodePackageNotFound, "no such package"), "no such package"},
		{stderrors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v): expected %q, got %q", tt.err, tt.want, got)
		}
	}
}
