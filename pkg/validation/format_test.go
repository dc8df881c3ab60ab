package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"pretty is valid", "pretty", false},
		{"csv is valid", "csv", false},
		{"json is valid", "json", false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "xml", true},
		{"case sensitive", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
