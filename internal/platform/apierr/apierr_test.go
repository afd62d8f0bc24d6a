package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	errs "github.com/yungbote/chinook-backend/internal/pkg/errors"
)

func TestKindsMatchSentinels(t *testing.T) {
	nf := NotFound("artist_not_found", "Artist not found")
	if !errors.Is(nf, errs.ErrNotFound) {
		t.Fatalf("expected NotFound to match ErrNotFound")
	}
	if errors.Is(nf, errs.ErrInvalidOperation) {
		t.Fatalf("NotFound must not match ErrInvalidOperation")
	}

	inv := InvalidOperation("self_reporting", "Employee cannot report to themselves")
	if !errors.Is(fmt.Errorf("wrapped: %w", inv), errs.ErrInvalidOperation) {
		t.Fatalf("expected wrapped InvalidOperation to match ErrInvalidOperation")
	}
	if inv.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", inv.Status)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{New(http.StatusNotFound, "x", errors.New("boom")), "boom"},
		{New(http.StatusNotFound, "code_only", nil), "code_only"},
		{New(http.StatusTeapot, "", nil), "api error (418)"},
		{&Error{}, "api error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q want %q", got, tc.want)
		}
	}
}
