// Package source reads record collections from files and writes join
// results.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/JeffEnglish/joins"
)

// Output formats
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Load reads a collection of records from a .json, .yaml or .yml file.  The
// file must hold a list of objects.
func Load(path string) ([]joins.Record, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(content)
	case ".yaml", ".yml":
		return DecodeYAML(content)
	default:
		return nil, fmt.Errorf("unsupported file extension '%s' of %s", ext, path)
	}
}

// DecodeJSON parses a JSON array of objects.  Numbers are decoded as float64.
func DecodeJSON(content []byte) ([]joins.Record, error) {
	var list []map[string]any
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	recs := make([]joins.Record, len(list))
	for i, m := range list {
		recs[i] = joins.Record(m)
	}
	return recs, nil
}

// DecodeYAML parses a YAML sequence of mappings.
func DecodeYAML(content []byte) ([]joins.Record, error) {
	var list []map[string]any
	if err := yaml.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	recs := make([]joins.Record, len(list))
	for i, m := range list {
		rec := make(joins.Record, len(m))
		for k, v := range m {
			rec[k] = fromYAML(v)
		}
		recs[i] = rec
	}
	return recs, nil
}

// fromYAML converts the map[interface{}]interface{} values produced by
// yaml.v2 into string keyed maps, recursively.
func fromYAML(v any) any {
	switch x := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v2 := range x {
			m[fmt.Sprint(k)] = fromYAML(v2)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = fromYAML(x[i])
		}
		return out
	}
	return v
}

// Write renders recs to w in the given format.  Table output uses heading
// as the column order when it is not empty.
func Write(w io.Writer, recs []joins.Record, format string, heading ...joins.Attribute) error {
	switch format {
	case FormatJSON, "":
		list := make([]map[string]any, len(recs))
		for i, rec := range recs {
			list[i] = rec
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case FormatYAML:
		list := make([]map[string]any, len(recs))
		for i, rec := range recs {
			list[i] = rec
		}
		out, err := yaml.Marshal(list)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatTable:
		var s string
		if len(heading) > 0 {
			s = joins.PrettyPrintFields(recs, heading...)
		} else {
			s = joins.PrettyPrint(recs)
		}
		var b bytes.Buffer
		b.WriteString(s)
		if s != "" {
			b.WriteString("\n")
		}
		_, err := w.Write(b.Bytes())
		return err
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}
