package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/threadart/pkg/errors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNails int
		wantPath  []int
		wantCode  errors.Code
		wantMsg   string
	}{
		{
			name: "Valid",
			input: `nails:
  - [0.0, 0.0]
  - [1.0, 0.0]
  - [0.5, 1.0]
thread: [0, 2, 1]
`,
			wantNails: 3,
			wantPath:  []int{0, 2, 1},
		},
		{
			name: "EmptyThread",
			input: `nails:
  - [0.5, 0.5]
thread: []
`,
			wantNails: 1,
			wantPath:  nil,
		},
		{
			name:      "NullSequences",
			input:     "nails:\nthread:\n",
			wantNails: 0,
			wantPath:  nil,
		},
		{
			name: "AnnotationsIgnored",
			input: `nails:
  - [0.0, 0.0]    # nail 0
  - [1.0, 1.0]    # nail 0 (wrong comment, still ignored)
thread: []
`,
			wantNails: 2,
		},
		{
			name:     "Unparseable",
			input:    "nails: [unclosed",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "Empty",
			input:    "",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "TopLevelSequence",
			input:    "- a\n- b\n",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "MissingThread",
			input:    "nails:\n  - [0.5, 0.5]\n",
			wantCode: errors.ErrCodeMalformedFormat,
			wantMsg:  "'nails' and 'thread'",
		},
		{
			name:     "MissingNails",
			input:    "thread: []\n",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "NailsNotSequence",
			input:    "nails: 5\nthread: []\n",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "NailNotPair",
			input:    "nails:\n  - [0.5, 0.5, 0.5]\nthread: []\n",
			wantCode: errors.ErrCodeInvalidNail,
			wantMsg:  "nail 0",
		},
		{
			name:     "NailScalar",
			input:    "nails:\n  - [0.5, 0.5]\n  - 0.5\nthread: []\n",
			wantCode: errors.ErrCodeInvalidNail,
			wantMsg:  "nail 1",
		},
		{
			name:     "NailNotNumeric",
			input:    "nails:\n  - [left, 0.5]\nthread: []\n",
			wantCode: errors.ErrCodeInvalidNail,
			wantMsg:  "\"left\"",
		},
		{
			name:     "NailOutOfRange",
			input:    "nails:\n  - [0.5, 0.5]\n  - [1.5, 0.5]\nthread: []\n",
			wantCode: errors.ErrCodeInvalidNail,
			wantMsg:  "nail 1",
		},
		{
			name:     "NailNaN",
			input:    "nails:\n  - [.nan, 0.5]\nthread: []\n",
			wantCode: errors.ErrCodeInvalidNail,
			wantMsg:  "nail 0",
		},
		{
			name:     "ThreadNotSequence",
			input:    "nails:\n  - [0.5, 0.5]\nthread: 0\n",
			wantCode: errors.ErrCodeMalformedFormat,
		},
		{
			name:     "ThreadNotInteger",
			input:    "nails:\n  - [0.5, 0.5]\nthread: [0.5]\n",
			wantCode: errors.ErrCodeInvalidThreadIndex,
			wantMsg:  "thread point 0",
		},
		{
			name:     "ThreadWholeFloat",
			input:    "nails:\n  - [0.5, 0.5]\nthread: [0.0]\n",
			wantCode: errors.ErrCodeInvalidThreadIndex,
			wantMsg:  "\"0.0\"",
		},
		{
			name:     "ThreadString",
			input:    "nails:\n  - [0.5, 0.5]\nthread: [first]\n",
			wantCode: errors.ErrCodeInvalidThreadIndex,
			wantMsg:  "\"first\"",
		},
		{
			name:     "ThreadIndexOutOfRange",
			input:    "nails:\n  - [0.0, 0.0]\n  - [1.0, 0.0]\n  - [0.5, 1.0]\nthread: [0, 5]\n",
			wantCode: errors.ErrCodeInvalidThreadIndex,
			wantMsg:  "nail index 5",
		},
		{
			name:     "ThreadIndexNegative",
			input:    "nails:\n  - [0.5, 0.5]\nthread: [-1]\n",
			wantCode: errors.ErrCodeInvalidThreadIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Read(strings.NewReader(tt.input))

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if got := errors.GetCode(err); got != tt.wantCode {
					t.Errorf("code = %v, want %v (err: %v)", got, tt.wantCode, err)
				}
				if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
					t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := len(a.Nails); got != tt.wantNails {
				t.Errorf("nails = %d, want %d", got, tt.wantNails)
			}
			if len(a.Thread) != len(tt.wantPath) {
				t.Fatalf("thread = %v, want %v", a.Thread, tt.wantPath)
			}
			for i := range tt.wantPath {
				if a.Thread[i] != tt.wantPath[i] {
					t.Errorf("thread[%d] = %d, want %d", i, a.Thread[i], tt.wantPath[i])
				}
			}
		})
	}
}

func TestImportNotFound(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("code = %v, want NOT_FOUND", errors.GetCode(err))
	}
}

func TestImport(t *testing.T) {
	content := "nails:\n  - [0.5, 0.5]\nthread: []\n"
	path := filepath.Join(t.TempDir(), "art.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(a.Nails) != 1 {
		t.Errorf("nails = %d, want 1", len(a.Nails))
	}
}
