package util

import "testing"

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{" 9876543210 ", true},
		{"987654321", false},
		{"98765432100", false},
		{"98765abcde", false},
		{"+919876543210", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	if !ValidateName("Asha") {
		t.Errorf("expected non-empty name to be valid")
	}
	if ValidateName("") || ValidateName("   ") {
		t.Errorf("expected blank names to be invalid")
	}
}
