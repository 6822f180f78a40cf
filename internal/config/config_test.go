package config

import "testing"

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", Config{Format: "console", Followers: 1000}, false},
		{"json format", Config{Format: "json"}, false},
		{"markdown format", Config{Format: "markdown"}, false},
		{"bad format", Config{Format: "xml"}, true},
		{"empty format", Config{Format: ""}, true},
		{"min grade set", Config{Format: "console", MinGrade: "B"}, false},
		{"bad min grade", Config{Format: "console", MinGrade: "E"}, true},
		{"lowercase min grade", Config{Format: "console", MinGrade: "b"}, true},
		{"negative followers", Config{Format: "console", Followers: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig(%+v) error = %v, wantErr %v", tt.config, err, tt.wantErr)
			}
		})
	}
}
