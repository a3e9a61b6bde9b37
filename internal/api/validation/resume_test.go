package validation

import "testing"

func TestValidateTemplateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"modern-professional", false},
		{"tech-specialist", false},
		{"a1", false},
		{"", true},
		{"UPPERCASE", true},
		{"has spaces", true},
		{"-starts-with-dash", true},
		{"x", true},
	}
	for _, tt := range tests {
		err := ValidateTemplateID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTemplateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestValidateResumeID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"rsm_abcdef1234", false},
		{"rsm_abc-def_1234567890", false},
		{"", true},
		{"abcdef1234", true},
		{"rsm_short", true},
		{"rsm_has spaces in it", true},
	}
	for _, tt := range tests {
		err := ValidateResumeID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateResumeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}
