package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2025-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "202401", "2024/01", "", "abcd-ef"}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("expected 2024-02-29 to be valid")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Error("expected 2023-02-29 to be invalid")
	}
	if _, ok := IsValidDate("29/02/2024"); ok {
		t.Error("expected 29/02/2024 to be invalid")
	}
}

func TestIsValidTaxID(t *testing.T) {
	if !IsValidTaxID("0105566207013") {
		t.Error("expected 13-digit tax id to be valid")
	}
	if IsValidTaxID("105566207") {
		t.Error("expected short tax id to be invalid")
	}
	if IsValidTaxID("010556620701a") {
		t.Error("expected non-numeric tax id to be invalid")
	}
}
