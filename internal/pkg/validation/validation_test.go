package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Email  string  `json:"email"  validate:"required,email"`
	Radius float64 `json:"radius" validate:"gte=100,lte=10000"`
	Role   string  `json:"role"   validate:"omitempty,oneof=renter staff"`
	Note   string  `validate:"max=3"`
}

func TestStruct_Valid(t *testing.T) {
	if err := New().Struct(sample{Email: "a@b.vn", Radius: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_Messages(t *testing.T) {
	err := New().Struct(sample{Radius: 99, Role: "root", Note: "long"})
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	for _, want := range []string{
		"email is required",
		"radius must be at least 100",
		"role must be one of: renter staff",
		"note must be at most 3",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestValidate_EchoAdapter(t *testing.T) {
	if err := New().Validate(sample{Email: "nope", Radius: 500}); err == nil || !strings.Contains(err.Error(), "valid email") {
		t.Fatalf("expected an email error, got %v", err)
	}
}
