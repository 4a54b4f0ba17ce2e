package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffEnglish/joins"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	jsonPath := writeFile(t, "accounts.json", `[
  {"name": "Joe", "accountId": 1},
  {"name": "Julie", "accountId": 2, "tags": ["a", "b"]}
]`)
	yamlPath := writeFile(t, "addresses.YML", `
- pid: 1
  loc: 123 Main
- pid: 3
  loc: 45 West
  geo:
    lat: 1.5
    zone: 7
`)

	recs, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []joins.Record{
		{"name": "Joe", "accountId": float64(1)},
		{"name": "Julie", "accountId": float64(2), "tags": []any{"a", "b"}},
	}, recs)

	recs, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []joins.Record{
		{"pid": 1, "loc": "123 Main"},
		{"pid": 3, "loc": "45 West", "geo": map[string]any{"lat": 1.5, "zone": 7}},
	}, recs)
}

func TestLoadJoin(t *testing.T) {
	// JSON numbers are float64 and YAML numbers are int, and they still
	// match with the default key policy
	left, err := Load(writeFile(t, "l.json", `[{"id": 1, "a": "x"}, {"id": 2.5, "a": "y"}]`))
	require.NoError(t, err)
	right, err := Load(writeFile(t, "r.yaml", "- {id: 1, b: z}\n- {id: 2.5, b: w}\n"))
	require.NoError(t, err)

	res := joins.InnerJoin(left, right, "id", "id", nil)
	require.Len(t, res, 2)
	assert.Equal(t, "z", res[0]["b"])
	assert.Equal(t, "w", res[1]["b"])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "data.csv", "a,b\n"))
	assert.ErrorContains(t, err, "unsupported file extension '.csv'")

	_, err = Load(writeFile(t, "bad.json", `{"not": "a list"}`))
	assert.ErrorContains(t, err, "decode json")

	_, err = Load(writeFile(t, "bad.yaml", "a: b\n"))
	assert.ErrorContains(t, err, "decode yaml")
}

func TestWrite(t *testing.T) {
	recs := []joins.Record{
		{"name": "Joe", "loc": "123 Main"},
		{"name": "Julie"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, recs, FormatJSON))
	assert.JSONEq(t, `[{"name": "Joe", "loc": "123 Main"}, {"name": "Julie"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, recs, ""))
	assert.JSONEq(t, `[{"name": "Joe", "loc": "123 Main"}, {"name": "Julie"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, recs, FormatYAML))
	assert.YAMLEq(t, "- name: Joe\n  loc: 123 Main\n- name: Julie\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, recs, FormatTable))
	assert.Equal(t, joins.PrettyPrint(recs)+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, recs, FormatTable, "name", "loc"))
	assert.Equal(t, joins.PrettyPrintFields(recs, "name", "loc")+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, FormatTable))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.JSONEq(t, `[]`, buf.String())

	assert.EqualError(t, Write(&buf, recs, "csv"), "unsupported output format 'csv'")
}
