package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsContactFields(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"customer_id", 7,
		"Phone", "+1 555 0100",
		"billing_address", "1 Main St",
		"db_dsn", "postgres://u:p@h/db",
	})
	if len(out) != 8 {
		t.Fatalf("unexpected kv length %d", len(out))
	}
	if out[1] != 7 {
		t.Fatalf("expected id untouched, got %v", out[1])
	}
	for _, i := range []int{3, 5, 7} {
		if out[i] != "[REDACTED]" {
			t.Fatalf("expected %v redacted, got %v", out[i-1], out[i])
		}
	}
}

func TestSanitizeKVsHashesEmail(t *testing.T) {
	out := sanitizeKVs([]interface{}{"email", "luisg@embraer.com.br"})
	got, ok := out[1].(string)
	if !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("expected hashed email, got %v", out[1])
	}
	again := sanitizeKVs([]interface{}{"email", "luisg@embraer.com.br"})
	if again[1] != got {
		t.Fatalf("hash must be stable: %v != %v", again[1], got)
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("unexpected output %v", out)
	}
}

func TestNewNopDoesNotPanic(t *testing.T) {
	log := NewNop()
	log.With("repo", "ArtistRepo").Info("ok", "phone", "x")
	log.Sync()
}
