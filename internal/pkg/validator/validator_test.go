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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12"}
	invalid := []string{"2024-13", "2024-1", "2024-01-01", ""}
	for _, s := range valid {
		if _, ok := IsValidMonth(s); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:05", "17:00", "23:59"}
	invalid := []string{"24:00", "8:05", "08:5", "08:60", "0805", "-", ""}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestCoordinates(t *testing.T) {
	if !IsValidLatitude(14.9709) || IsValidLatitude(90.5) || IsValidLatitude(-91) {
		t.Error("IsValidLatitude bounds are wrong")
	}
	if !IsValidLongitude(102.0977) || IsValidLongitude(180.1) || IsValidLongitude(-181) {
		t.Error("IsValidLongitude bounds are wrong")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatal("empty ValidationErrors must yield nil error")
	}
	errs.Add("employee_id", "employee_id is required")
	errs.Add("branch", "branch is required")

	err := errs.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "employee_id: employee_id is required; branch: branch is required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["branch"] != "branch is required" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"01", "02"}
	if !IsInSlice("01", slice) {
		t.Error("IsInSlice(01) = false, want true")
	}
	if IsInSlice("03", slice) {
		t.Error("IsInSlice(03) = true, want false")
	}
}
