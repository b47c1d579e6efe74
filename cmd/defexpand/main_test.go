package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	shader = `#define STEPS 16
#define RADIUS SCALE
#define SCALE 0.5
float r = RADIUS;
for (int i = 0; i < STEPS; i++) { STEPS_DONE++; }`

	shaderExpanded = `#define STEPS 16
#define RADIUS 0.5
#define SCALE 0.5
float r = 0.5;
for (int i = 0; i < 16; i++) { STEPS_DONE++; }
`
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeFile(t, "shader.glsl", shader)

	var out bytes.Buffer
	if err := run([]string{path}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(shaderExpanded, out.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	good := writeFile(t, "good.txt", "#define X 1\nX")
	bad := writeFile(t, "bad.txt", "#define X")

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{good, good}},
		{"missing file", []string{filepath.Join(t.TempDir(), "nonesuch")}},
		{"malformed definition", []string{bad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out); err == nil {
				t.Errorf("expected an error")
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}
		})
	}
}
