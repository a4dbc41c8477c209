package validation

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "student1@edu.ru", true},
		{"mixed case", "Ivan.Petrov@University.EDU", true},
		{"plus and percent in local part", "user+tag%x@mail.example.com", true},
		{"subdomain", "dean@law.msu.edu.ru", true},
		{"no at sign", "bad-email", false},
		{"empty string", "", false},
		{"missing domain dot", "user@domain", false},
		{"one-letter top-level segment", "user@host.r", false},
		{"missing local part", "@edu.ru", false},
		{"space in local part", "a b@edu.ru", false},
		{"trailing garbage", "student1@edu.ru extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.want {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestStringValidation(t *testing.T) {
	if NewStringValidation("").Validate() {
		t.Error("required empty string should fail")
	}
	if !NewStringValidation("").WithRequired(false).Validate() {
		t.Error("optional empty string should pass")
	}
	if NewStringValidation("a").WithMinLength(2).Validate() {
		t.Error("too-short string should fail")
	}
	if NewStringValidation("abcdef").WithMaxLength(3).Validate() {
		t.Error("too-long string should fail")
	}
	if !NewStringValidation("ok").WithMinLength(1).WithMaxLength(10).Validate() {
		t.Error("in-bounds string should pass")
	}
	if NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate() {
		t.Error("pattern mismatch should fail")
	}
}

func TestNumericValidationBounds(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		min, max int
		want     bool
	}{
		{"enrollment year lower bound", 2000, EnrollmentYearMin, EnrollmentYearMax, true},
		{"enrollment year upper bound", 2024, EnrollmentYearMin, EnrollmentYearMax, true},
		{"enrollment year below range", 1999, EnrollmentYearMin, EnrollmentYearMax, false},
		{"enrollment year above range", 2025, EnrollmentYearMin, EnrollmentYearMax, false},
		{"credits in range", 5, CreditsMin, CreditsMax, true},
		{"credits above range", 11, CreditsMin, CreditsMax, false},
		{"grade in range", 3, GradeMin, GradeMax, true},
		{"grade below range", 0, GradeMin, GradeMax, false},
		{"grade above range", 6, GradeMin, GradeMax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNumericValidation(tt.value).WithMin(tt.min).WithMax(tt.max).Validate()
			if got != tt.want {
				t.Errorf("value %d in [%d,%d]: got %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
