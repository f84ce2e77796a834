package errcode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMessageFallback(t *testing.T) {
	if got := Message("auth/something-new"); got != GenericMessage {
		t.Fatalf("expected generic message, got %q", got)
	}
	if got := Message(AuthEmailAlreadyInUse); got == GenericMessage {
		t.Fatal("expected mapped message for email-already-in-use")
	}
	if got := Status("auth/something-new"); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unmapped code, got %d", got)
	}
}

func TestEveryMessageHasStatus(t *testing.T) {
	for code := range codeMessageMap {
		if _, ok := codeStatusMap[code]; !ok {
			t.Errorf("code %s has a message but no status", code)
		}
	}
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("sign up: %w", Wrap(AuthEmailAlreadyInUse, cause))

	if !errors.Is(err, New(AuthEmailAlreadyInUse)) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(err, New(AuthWeakPassword)) {
		t.Fatal("did not expect a match for a different code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to stay reachable")
	}
	if CodeOf(err) != AuthEmailAlreadyInUse {
		t.Fatalf("unexpected code %q", CodeOf(err))
	}
	if CodeOf(cause) != "" {
		t.Fatal("plain errors carry no code")
	}
}
