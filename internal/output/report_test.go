package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormatted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	name, err := WriteFormatted(JSONFormatter{}, buildTestReport(t), dir, "json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wealth_report_20260102_150405.json"), name)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"currency": "lei"`)
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateReport(buildTestReport(t), "csv-summary", dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, ".csv", filepath.Ext(files[0]))
}

func TestGenerateReportAll(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateReport(buildTestReport(t), "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}
}

func TestGenerateReportUnsupported(t *testing.T) {
	_, err := GenerateReport(buildTestReport(t), "pdf", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
