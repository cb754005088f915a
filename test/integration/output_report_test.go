package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthcoach/wealthcoach/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	report := evaluate(t, exampleFiles[0])
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		files, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1, format)

		data, err := os.ReadFile(files[0])
		require.NoError(t, err)
		assert.NotEmpty(t, data, format)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestDetailedCSVCoversEveryMonth(t *testing.T) {
	report := evaluate(t, exampleFiles[0])
	out, err := output.CSVDetailedExporter{}.Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 120 + 360 + 240 months
	assert.Len(t, lines, 1+120+360+240)
	assert.True(t, strings.HasPrefix(lines[13], "Base plan,13,2,500.00,525.00,"), lines[13])
}

func TestAllFormatsWritesThreeFiles(t *testing.T) {
	report := evaluate(t, exampleFiles[0])
	dir := t.TempDir()
	files, err := output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	exts := map[string]bool{}
	for _, f := range files {
		exts[filepath.Ext(f)] = true
	}
	assert.Equal(t, map[string]bool{".txt": true, ".csv": true, ".html": true}, exts)
}
