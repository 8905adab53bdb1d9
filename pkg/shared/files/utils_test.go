package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "report.sarif")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	tests := []struct {
		name         string
		inputPath    string
		nameTemplate string
		expectFile   string
		expectFolder string
	}{
		{
			name:         "directory path with name template",
			inputPath:    tmpDir,
			nameTemplate: "lawbook-report.json",
			expectFile:   filepath.Join(tmpDir, "lawbook-report.json"),
			expectFolder: tmpDir,
		},
		{
			name:         "existing file",
			inputPath:    existing,
			nameTemplate: "ignored.txt",
			expectFile:   existing,
			expectFolder: tmpDir,
		},
		{
			name:         "path with no extension is a folder",
			inputPath:    filepath.Join(tmpDir, "reports"),
			nameTemplate: "lawbook-report.txt",
			expectFile:   filepath.Join(tmpDir, "reports", "lawbook-report.txt"),
			expectFolder: filepath.Join(tmpDir, "reports"),
		},
		{
			name:         "non-existent file with extension",
			inputPath:    filepath.Join(tmpDir, "out", "result.json"),
			nameTemplate: "ignored.txt",
			expectFile:   filepath.Join(tmpDir, "out", "result.json"),
			expectFolder: filepath.Join(tmpDir, "out"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath, folderPath, err := DetermineFileFullPath(tt.inputPath, tt.nameTemplate)
			require.NoError(t, err)
			assert.Equal(t, tt.expectFile, filePath)
			assert.Equal(t, tt.expectFolder, folderPath)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/reports/out.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "reports", "out.json"), expanded)

	unchanged, err := ExpandPath("reports/~/out.json")
	require.NoError(t, err)
	assert.Equal(t, "reports/~/out.json", unchanged)
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "baseline.sarif")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.NoError(t, ValidatePath(file))
	assert.ErrorContains(t, ValidatePath(dir), "is a directory")
	assert.ErrorContains(t, ValidatePath(filepath.Join(dir, "missing")), "path stat error")
}

func TestWriteFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "report.txt")

	require.NoError(t, WriteFile(target, []byte("first run\n")))
	require.NoError(t, WriteFile(target, []byte("second\n")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}
