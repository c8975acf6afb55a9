package cli

import (
	"testing"

	"github.com/matzehuels/threadart/pkg/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"Default", "800x800", 800, 800, false},
		{"Rectangular", "1600x900", 1600, 900, false},
		{"UpperCaseX", "640X480", 640, 480, false},
		{"MissingHeight", "800", 0, 0, true},
		{"TooManyParts", "8x8x8", 0, 0, true},
		{"ZeroWidth", "0x800", 0, 0, true},
		{"Negative", "-800x600", 0, 0, true},
		{"NotNumeric", "axb", 0, 0, true},
		{"Empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeInvalidParameter) {
					t.Errorf("code = %v, want INVALID_PARAMETER", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
