package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	yamlIndent = 2
)

// outputFormat returns the requested format, or table when w is a terminal
// and json otherwise.
func outputFormat(v *viper.Viper, w io.Writer) (string, error) {
	format := v.GetString("output")

	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	case "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return OutputFormatTable, nil
		}

		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (use table, json or yaml)", ErrInvalidOutputFormat, format)
	}
}

func render(w io.Writer, format string, data any) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)

		if err := encoder.Encode(integralNumbers(data)); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return renderTable(w, data)
	}
}

// renderTable prints the "result" member of an API response: objects as
// Property/Value rows, lists of objects as one row each. Responses without
// an object or list result, such as vendor errors, are printed whole.
func renderTable(w io.Writer, data any) error {
	body, ok := data.(map[string]any)
	if !ok {
		return renderRows(w, []any{"Value"}, [][]string{{formatValue(data)}})
	}

	payload, hasResult := body["result"]
	if !hasResult {
		payload = body
	}

	switch p := payload.(type) {
	case map[string]any:
		return renderObject(w, p)
	case []any:
		return renderList(w, p)
	default:
		return renderObject(w, body)
	}
}

func renderObject(w io.Writer, obj map[string]any) error {
	keys := sortedKeys(obj)
	rows := make([][]string, 0, len(keys))

	for _, k := range keys {
		rows = append(rows, []string{k, formatValue(obj[k])})
	}

	return renderRows(w, []any{"Property", "Value"}, rows)
}

func renderList(w io.Writer, items []any) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")

		return err
	}

	first, ok := items[0].(map[string]any)
	if !ok {
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{formatValue(item)})
		}

		return renderRows(w, []any{"Value"}, rows)
	}

	// Nested objects such as "member" make the table unreadable, so only
	// scalar columns of the first item are shown.
	var columns []string

	for _, k := range sortedKeys(first) {
		switch first[k].(type) {
		case map[string]any, []any:
		default:
			columns = append(columns, k)
		}
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}

	rows := make([][]string, 0, len(items))

	for _, item := range items {
		obj, _ := item.(map[string]any)
		row := make([]string, len(columns))

		for i, c := range columns {
			row[i] = formatValue(obj[c])
		}

		rows = append(rows, row)
	}

	return renderRows(w, header, rows)
}

func renderRows(w io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// IDs and unix timestamps read better without an exponent
		return trimFloat(v)
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

// integralNumbers converts whole float64 values to int64 so that yaml.v3
// does not print IDs and timestamps in exponent form.
func integralNumbers(value any) any {
	switch v := value.(type) {
	case float64:
		if v == float64(int64(v)) {
			return int64(v)
		}

		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = integralNumbers(item)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = integralNumbers(item)
		}

		return out
	default:
		return value
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}

	return fmt.Sprintf("%g", f)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
