package validpkg

import (
	"testing"

	"github.com/dmunera/cajero/internal/domain"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "Plain", in: "120000", want: 120000},
		{name: "Trimmed", in: "  50000 ", want: 50000},
		{name: "Negative", in: "-10000", want: -10000},
		{name: "Letters", in: "abc", wantErr: domain.ErrInvalidAmount},
		{name: "Float", in: "100.5", wantErr: domain.ErrInvalidAmount},
		{name: "Empty", in: "", wantErr: domain.ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tc.in)
			if err != tc.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, want %v", tc.in, err, tc.wantErr)
			}

			if err == nil && got != tc.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsValidMultiple(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want bool
	}{
		{"10000", true},
		{"120000", true},
		{" 40000 ", true},
		{"0", false},
		{"-10000", false},
		{"15000", false},
		{"abc", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsValidMultiple(tc.in); got != tc.want {
			t.Errorf("IsValidMultiple(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPersonName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want bool
	}{
		{"Ana", true},
		{"Maria Jose", true},
		{"Muñoz", true},
		{"  Ana  ", true},
		{"", false},
		{"   ", false},
		{"Ana3", false},
		{"Ana-Maria", false},
	}

	for _, tc := range testCases {
		if got := IsValidPersonName(tc.in); got != tc.want {
			t.Errorf("IsValidPersonName(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidComEmail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want bool
	}{
		{"ana@mail.com", true},
		{"ANA@MAIL.COM", true},
		{" ana.perez+1@mail.com ", true},
		{"ana@mail.org", false},
		{"ana@mail.com.co", false},
		{"@mail.com", false},
		{"ana mail.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsValidComEmail(tc.in); got != tc.want {
			t.Errorf("IsValidComEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"0", true},
		{"", false},
		{"12a45", false},
		{"12 45", false},
	}

	for _, tc := range testCases {
		if got := IsDigits(tc.in); got != tc.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewValidatesOpenAccountParams(t *testing.T) {
	t.Parallel()

	v := New()

	valid := domain.OpenAccountParams{
		ID:             "12345678",
		FirstName:      "Ana",
		LastName:       "Perez",
		BirthDate:      "1990-05-10",
		Gender:         "F",
		MaritalStatus:  "S",
		Email:          "ana@mail.com",
		Username:       "ana",
		Password:       "clave",
		InitialDeposit: "100000",
	}

	if err := v.Struct(valid); err != nil {
		t.Fatalf("Struct(valid) failed: %v", err)
	}

	invalid := valid
	invalid.ID = "12a45"

	if err := v.Struct(invalid); err == nil {
		t.Error("Struct() with non-digit cedula passed, want error")
	}

	invalid = valid
	invalid.Email = "ana@mail.org"

	if err := v.Struct(invalid); err == nil {
		t.Error("Struct() with non .com email passed, want error")
	}
}
