package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Formatter writes command output either as aligned text or as JSON.
type Formatter struct {
	Writer   io.Writer
	JSONMode bool
}

// New creates a new Formatter with the specified writer and JSON mode.
func New(w io.Writer, jsonMode bool) *Formatter {
	return &Formatter{
		Writer:   w,
		JSONMode: jsonMode,
	}
}

// Heading prints a section title with an underline. It prints nothing in
// JSON mode so that the output stays a single document.
func (f *Formatter) Heading(title string) error {
	if f.JSONMode {
		return nil
	}
	_, err := fmt.Fprintf(f.Writer, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
	return err
}

// Table outputs rows as aligned columns, or as a JSON array of objects keyed
// by header in JSON mode.
func (f *Formatter) Table(headers []string, rows [][]string) error {
	if f.JSONMode {
		return f.Print(tableObjects(headers, rows))
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)

	rules := make([]string, len(headers))
	for i, h := range headers {
		rules[i] = strings.Repeat("-", len([]rune(h)))
	}

	lines := append([][]string{headers, rules}, rows...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(tw, strings.Join(line, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// KeyValues outputs label/value pairs as a two-column table, or as a single
// JSON object in JSON mode.
func (f *Formatter) KeyValues(pairs [][2]string) error {
	if f.JSONMode {
		obj := make(map[string]string, len(pairs))
		for _, p := range pairs {
			obj[p[0]] = p[1]
		}
		return f.Print(obj)
	}

	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return f.Table([]string{"Field", "Value"}, rows)
}

// Blank prints an empty line in text mode.
func (f *Formatter) Blank() error {
	if f.JSONMode {
		return nil
	}
	_, err := fmt.Fprintln(f.Writer)
	return err
}

// Print outputs data as indented JSON in JSON mode, or with %v otherwise.
func (f *Formatter) Print(data any) error {
	if f.JSONMode {
		encoder := json.NewEncoder(f.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	_, err := fmt.Fprintf(f.Writer, "%v\n", data)
	return err
}

func tableObjects(headers []string, rows [][]string) []map[string]string {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				obj[header] = row[i]
			} else {
				obj[header] = ""
			}
		}
		result = append(result, obj)
	}
	return result
}
