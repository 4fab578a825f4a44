package validator

import (
	"strings"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPIN(t *testing.T) {
	valid := []string{"1234", "00000000", "987654"}
	invalid := []string{"123", "123456789", "12a4", "", "12 4"}
	for _, pin := range valid {
		if !IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = true, want false", pin)
		}
	}
}

func TestIsValidTimezone(t *testing.T) {
	valid := []string{"UTC", "America/New_York", "Asia/Jakarta"}
	invalid := []string{"", "Mars/Olympus", "not a zone"}
	for _, tz := range valid {
		if !IsValidTimezone(tz) {
			t.Errorf("IsValidTimezone(%q) = false, want true", tz)
		}
	}
	for _, tz := range invalid {
		if IsValidTimezone(tz) {
			t.Errorf("IsValidTimezone(%q) = true, want false", tz)
		}
	}
}

func TestIsValidTenantSlug(t *testing.T) {
	valid := []string{"acme", "acme-corp", "my_company.01"}
	invalid := []string{"ab", "", "has space", strings.Repeat("x", 51)}
	for _, slug := range valid {
		if !IsValidTenantSlug(slug) {
			t.Errorf("IsValidTenantSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidTenantSlug(slug) {
			t.Errorf("IsValidTenantSlug(%q) = true, want false", slug)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Error("IsValidDate(2024-01-15) = false, want true")
	}
	for _, bad := range []string{"2024-13-01", "15-01-2024", "2024-01-15T10:00:00Z", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	if _, ok := IsValidDateTime("2024-01-15T10:30:00Z"); !ok {
		t.Error("IsValidDateTime(2024-01-15T10:30:00Z) = false, want true")
	}
	if _, ok := IsValidDateTime("2024-01-15T10:30:00+07:00"); !ok {
		t.Error("IsValidDateTime with offset = false, want true")
	}
	for _, bad := range []string{"2024-01-15", "10:30:00", ""} {
		if _, ok := IsValidDateTime(bad); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", bad)
		}
	}
}

func TestIsInIntSlice(t *testing.T) {
	allowed := []int{0, 5, 10, 15, 20, 30}
	if !IsInIntSlice(15, allowed) {
		t.Error("IsInIntSlice(15) = false, want true")
	}
	if IsInIntSlice(7, allowed) {
		t.Error("IsInIntSlice(7) = true, want false")
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "pin", Message: "pin must be 4-8 digits"},
		{Field: "type", Message: "type must be one of: IN, OUT, BREAK, LUNCH"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["pin"] != "pin must be 4-8 digits" {
		t.Errorf("ToMap()[pin] = %q", m["pin"])
	}
}
