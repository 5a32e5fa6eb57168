package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	err := Error(ECONSISTENCY, "cannot delete default layer %q", "public.default")
	if Code(err) != ECONSISTENCY {
		t.Errorf("expected code %d, have %d", ECONSISTENCY, Code(err))
	}
	if UserMessage(err) != `cannot delete default layer "public.default"` {
		t.Errorf("unexpected user message: %q", UserMessage(err))
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("unexpected token")
	err := WrapError(cause, EPARSE, "glyph %q unreadable", "A")
	if Code(err) != EPARSE {
		t.Errorf("expected code %d, have %d", EPARSE, Code(err))
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to survive the error chain")
	}
	wrapped := fmt.Errorf("open failed: %w", err)
	if Code(wrapped) != EPARSE {
		t.Errorf("expected code to be found through fmt wrapping, have %d", Code(wrapped))
	}
}

func TestNilError(t *testing.T) {
	if Code(nil) != NOERROR {
		t.Error("expected NOERROR for nil error")
	}
	if UserMessage(nil) != "" {
		t.Error("expected empty user message for nil error")
	}
}
