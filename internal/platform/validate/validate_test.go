package validate

import (
	"testing"

	"animal-shelter-api/internal/platform/apperr"
)

type color string

func TestOneOf(t *testing.T) {
	if err := OneOf("colour", color("red"), "red", "blue"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	err := OneOf("colour", color("green"), "red", "blue")
	if ve, ok := apperr.AsValidation(err); !ok || ve.Field != "colour" {
		t.Fatalf("expected colour validation error, got %v", err)
	}
	if err := OneOf("colour", color(""), "red"); err == nil {
		t.Fatalf("expected required error")
	}
}

func TestMaxLenCountsRunes(t *testing.T) {
	if err := MaxLen("name", "ñandú", 5); err != nil {
		t.Fatalf("5 runes should fit: %v", err)
	}
	if err := MaxLen("name", "ñandús", 5); err == nil {
		t.Fatalf("expected error for 6 runes")
	}
}

func TestFirst(t *testing.T) {
	err := First(nil, Required("a", " "), Required("b", ""))
	if ve, ok := apperr.AsValidation(err); !ok || ve.Field != "a" {
		t.Fatalf("expected first error on a, got %v", err)
	}
	if First(nil, nil) != nil {
		t.Fatalf("expected nil")
	}
}
