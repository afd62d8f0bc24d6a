package validate

import (
	"strings"
	"testing"
)

type sample struct {
	Name     string  `json:"Name" binding:"required,notblank,max=10"`
	Composer *string `json:"Composer" binding:"omitempty,notblank"`
	Quantity *int    `json:"Quantity" binding:"required,gte=1"`
}

func TestStruct(t *testing.T) {
	one := 1
	zero := 0
	blank := "  "

	if err := Struct(sample{Name: "ok", Quantity: &one}); err != nil {
		t.Fatalf("valid sample: %v", err)
	}

	err := Struct(sample{Name: "", Quantity: nil})
	if err == nil {
		t.Fatalf("expected error for empty sample")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Name is required") || !strings.Contains(msg, "Quantity is required") {
		t.Fatalf("unexpected message: %q", msg)
	}

	err = Struct(sample{Name: "   ", Composer: &blank, Quantity: &zero})
	if err == nil {
		t.Fatalf("expected error for blank sample")
	}
	msg = err.Error()
	for _, want := range []string{
		"Name must not be blank",
		"Composer must not be blank",
		"Quantity must be greater than or equal to 1",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}

	if err := Struct(sample{Name: "far too long a name", Quantity: &one}); err == nil || !strings.Contains(err.Error(), "at most 10") {
		t.Fatalf("max: %v", err)
	}
}
