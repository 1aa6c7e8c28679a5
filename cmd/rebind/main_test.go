package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		files        map[string]string
		args         []string
		expectedExit int
	}{
		{
			name: "Success with valid config",
			files: map[string]string{
				"rebind.yaml":   "version: \"1\"\nmanifest: universe.yaml\n",
				"universe.yaml": "types:\n  - name: com.acme.Widget\n    annotations: [Entity]\n",
			},
			args:         []string{"rebind", "annotated", "-a", "Entity"},
			expectedExit: 0,
		},
		{
			name:         "Missing config",
			args:         []string{"rebind", "subtypes", "com.acme.Widget"},
			expectedExit: 1,
		},
		{
			name: "Invalid manifest",
			files: map[string]string{
				"rebind.yaml":   "version: \"1\"\nmanifest: universe.yaml\n",
				"universe.yaml": "types: [",
			},
			args:         []string{"rebind", "annotated", "-a", "Entity"},
			expectedExit: 1,
		},
		{
			name:         "Version",
			args:         []string{"rebind", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			for name, content := range tt.files {
				if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0o600); err != nil {
					t.Fatalf("failed to write %s: %v", name, err)
				}
			}

			originalWd, _ := os.Getwd()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
