package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

func checkOutputFormat(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w %q, want table, json or yaml", errUnknownOutput, format)
	}
}

// render writes data in the requested format. table is used for the
// default format and receives a tab-separated writer.
func render(out io.Writer, format string, data any, table func(w io.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		table(w)
		return w.Flush()
	}
}

// withDetails appends the server's per-field validation messages to err.
func withDetails(err error) error {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Details) == 0 {
		return err
	}

	issues := make([]string, 0, len(apiErr.Details))
	for _, d := range apiErr.Details {
		issues = append(issues, d.Field+": "+d.Message)
	}
	return fmt.Errorf("%w (%s)", err, strings.Join(issues, "; "))
}
