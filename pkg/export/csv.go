package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

// ToCSV flattens every scalar leaf of data into one path,value row, paths
// dot-joined from the root key down with list indices as their decimal
// position. Row order is the same depth-first walk the structured-data
// projection uses, so repeated calls are byte-identical. Nesting is not
// reconstructible from the rows; this is a one-way export.
func (e *Engine) ToCSV(data *schema.Map) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if e.csvHeader {
		if err := w.Write([]string{"path", "value"}); err != nil {
			return "", fmt.Errorf("export: write csv: %w", err)
		}
	}
	if err := writeRows(w, "", data); err != nil {
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: write csv: %w", err)
	}
	return buf.String(), nil
}

func writeRows(w *csv.Writer, path string, value any) error {
	switch v := value.(type) {
	case *schema.Map:
		for _, entry := range v.Entries() {
			if err := writeRows(w, joinPath(path, entry.Key), entry.Value); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for i, elem := range v {
			if err := writeRows(w, joinPath(path, strconv.Itoa(i)), elem); err != nil {
				return err
			}
		}
		return nil
	default:
		cell, err := formatScalar(value)
		if err != nil {
			return fmt.Errorf("export: %s: %w", path, err)
		}
		if err := w.Write([]string{path, cell}); err != nil {
			return fmt.Errorf("export: write csv: %w", err)
		}
		return nil
	}
}

func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
