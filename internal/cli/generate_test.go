package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/threadart/pkg/art"
	"github.com/matzehuels/threadart/pkg/errors"
	artio "github.com/matzehuels/threadart/pkg/io"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRunGenerate(t *testing.T) {
	tests := []struct {
		name  string
		count int
		shape art.Shape
	}{
		{"Circle", 12, art.ShapeCircle},
		{"Square", 8, art.ShapeSquare},
		{"SingleNailCircle", 1, art.ShapeCircle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "art.yml")

			if err := testCLI().runGenerate(tt.count, tt.shape, output); err != nil {
				t.Fatalf("runGenerate: %v", err)
			}

			a, err := artio.Import(output)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if len(a.Nails) != tt.count {
				t.Errorf("nails = %d, want %d", len(a.Nails), tt.count)
			}
			if len(a.Thread) != 0 {
				t.Errorf("thread = %v, want empty", a.Thread)
			}
		})
	}
}

func TestRunGenerateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		count int
		shape art.Shape
	}{
		{"ZeroCount", 0, art.ShapeCircle},
		{"SquareTooFew", 3, art.ShapeSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "art.yml")
			err := testCLI().runGenerate(tt.count, tt.shape, output)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("code = %v, want INVALID_PARAMETER", errors.GetCode(err))
			}
		})
	}
}

func TestRunGenerateWriteFailure(t *testing.T) {
	output := filepath.Join(t.TempDir(), "no-such-dir", "art.yml")
	err := testCLI().runGenerate(4, art.ShapeCircle, output)
	if err == nil {
		t.Fatal("expected error for unwritable output path")
	}
	if !errors.Is(err, errors.ErrCodeIOFailure) {
		t.Errorf("code = %v, want IO_FAILURE", errors.GetCode(err))
	}
}
