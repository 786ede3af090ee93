package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		`{"title":"Backend Developer","company_name":"Acme","location":"Lima, Peru"}`,
		``,
		`not json at all`,
		`{"title":42}`,
		`{"title":"Data Analyst","company_name":"Banco Sur","source_platform":"Indeed"}`,
	}, "\n")

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Backend Developer", records[0].Title)
	assert.Equal(t, "Acme", records[0].CompanyName)
	assert.Equal(t, "Lima, Peru", records[0].Location)
	assert.Equal(t, "Data Analyst", records[1].Title)
	assert.Equal(t, "Indeed", records[1].SourcePlatform)
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadUnknownFieldsIgnored(t *testing.T) {
	records, err := Read(strings.NewReader(`{"title":"Dev","collector_version":"2.1"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dev", records[0].Title)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	content := `{"title":"Dev","company_name":"Acme"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].CompanyName)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open records file")
}
