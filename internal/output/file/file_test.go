package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sornchai/winnow/internal/model"
)

func testReport(total int) model.Report {
	return model.Report{
		TotalItems:      total,
		ClassifiedItems: []model.ClassifiedItem{},
		Summary:         map[string][]model.SummaryEntry{},
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	o := New(path)

	require.NoError(t, o.Write(context.Background(), testReport(2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalItems": 2, "classifiedItems": [], "summary": {}}`, string(data))
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestWritePretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	o := New(path, WithPretty(true))

	require.NoError(t, o.Write(context.Background(), testReport(0)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"totalItems\": 0")
}

func TestWriteReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	o := New(path)

	require.NoError(t, o.Write(context.Background(), testReport(1)))
	require.NoError(t, o.Write(context.Background(), testReport(2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalItems": 2, "classifiedItems": [], "summary": {}}`, string(data))
}

func TestWriteBadPath(t *testing.T) {
	o := New(filepath.Join(t.TempDir(), "missing-dir", "report.json"))
	err := o.Write(context.Background(), testReport(0))
	require.Error(t, err)
}

func TestClose(t *testing.T) {
	assert.NoError(t, New("unused").Close())
}
