package alerts

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/internal/cmd/table"
)

// FormatWriter prints a report in one of the CLI output formats.
type FormatWriter struct {
	writer io.Writer
	format output.Format
}

// NewFormatWriter creates a writer for format.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{writer: w, format: format}
}

// record is the structured form of an alert.
type record struct {
	Level   Level    `json:"level" yaml:"level"`
	Record  int      `json:"record,omitempty" yaml:"record,omitempty"`
	Company string   `json:"company,omitempty" yaml:"company,omitempty"`
	Field   string   `json:"field,omitempty" yaml:"field,omitempty"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toRecord(a *Alert) record {
	rec := record{
		Level:   a.Level,
		Record:  a.Record,
		Company: a.Company,
		Field:   a.Field,
		Message: a.Message,
		Details: a.Details,
	}
	if a.Err != nil {
		rec.Error = a.Err.Error()
	}
	return rec
}

// Write prints report. JSON is one object per alert so the output can be
// piped into line-oriented tools; YAML is a single list; the tabular
// formats get one row per alert.
func (fw *FormatWriter) Write(report *Report) error {
	switch fw.format {
	case output.FormatJSON:
		encoder := json.NewEncoder(fw.writer)
		for _, a := range report.Alerts {
			if err := encoder.Encode(toRecord(a)); err != nil {
				return err
			}
		}
		return nil
	case output.FormatYAML:
		recs := make([]record, 0, len(report.Alerts))
		for _, a := range report.Alerts {
			recs = append(recs, toRecord(a))
		}
		out, err := yaml.MarshalWithOptions(recs, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = fw.writer.Write(out)
		return err
	default:
		return output.Write(fw.writer, fw.format, report.Alerts, func(wide bool) table.Data {
			return report.TableData(wide)
		})
	}
}
