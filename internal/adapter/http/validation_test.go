package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(fe []FieldError, field, fragment string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestHex32Validation(t *testing.T) {
	type P struct {
		MemberID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{MemberID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{MemberID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "MemberID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestRefcodeValidation(t *testing.T) {
	type P struct {
		Reference string `validate:"refcode"`
	}
	cv := NewValidator()

	for _, s := range []string{
		"CONT-A1B2C3D4E5F6",
		"LN-ABCDEF123456",
		"CIC-000000000000",
	} {
		if err := cv.Validate(P{Reference: s}); err != nil {
			t.Fatalf("expected valid refcode %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",
		"cont-a1b2c3d4e5f6",  // lowercase
		"CONT-A1B2C3",        // suffix too short
		"TOOLONG-A1B2C3D4E5F6", // prefix over 4 chars
		"CONTA1B2C3D4E5F6",   // missing dash
	} {
		err := cv.Validate(P{Reference: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Reference", "reference code") {
			t.Fatalf("expected refcode message for %q, got: %+v", s, fe)
		}
	}
}

func TestMoneyValidation(t *testing.T) {
	type P struct {
		Amount string `validate:"money"`
	}
	cv := NewValidator()

	for _, s := range []string{"0", "100", "100.5", "1696.67", "5000000.00"} {
		if err := cv.Validate(P{Amount: s}); err != nil {
			t.Fatalf("expected money OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "abc", "10.123", "1,000.00"} {
		err := cv.Validate(P{Amount: s})
		if err == nil {
			t.Fatalf("expected money error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected money message for %q, got %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Term int    `validate:"gte=1"`
		Cap  int    `validate:"lte=4"`
		Kind string `validate:"oneof=deposit withdrawal"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "",      // required
		Term: 0,       // gte=1
		Cap:  9,       // lte=4
		Kind: "loanx", // oneof
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Term", "greater than or equal to 1") {
		t.Fatalf("missing gte message for Term: %+v", fe)
	}
	if !containsFieldMsg(fe, "Cap", "less than or equal to 4") {
		t.Fatalf("missing lte message for Cap: %+v", fe)
	}
	if !containsFieldMsg(fe, "Kind", "must be one of: deposit withdrawal") {
		t.Fatalf("missing oneof message for Kind: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
