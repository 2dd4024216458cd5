package responseformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chrissnell/moonphase/internal/report"
	"github.com/chrissnell/moonphase/pkg/config"
	"github.com/chrissnell/moonphase/pkg/lunar"
)

// ErrUnsupportedFormat is returned for an output format other than text,
// json or msgpack.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter handles encoding and writing reports as text, JSON or MessagePack
type Formatter struct {
	format string
}

// Envelope wraps the structured report with the requested view
type Envelope struct {
	View   report.View     `json:"view"`
	Text   string          `json:"text"`
	Report report.Document `json:"report"`
}

// NewFormatter creates a formatter for one of the config.Format* values.
// An empty format means text.
func NewFormatter(format string) (*Formatter, error) {
	switch format {
	case "":
		format = config.FormatText
	case config.FormatText, config.FormatJSON, config.FormatMsgPack:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &Formatter{format: format}, nil
}

// Format returns the output format name
func (f *Formatter) Format() string {
	return f.format
}

// WriteReport renders view of r and writes it to w in the formatter's format.
// Structured formats carry the rendered text alongside the full report.
func (f *Formatter) WriteReport(w io.Writer, view report.View, r lunar.Report) error {
	text, err := report.Render(view, r)
	if err != nil {
		return err
	}

	switch f.format {
	case config.FormatJSON:
		return f.writeJSON(w, Envelope{View: view, Text: text, Report: report.NewDocument(r)})
	case config.FormatMsgPack:
		return f.writeMsgPack(w, Envelope{View: view, Text: text, Report: report.NewDocument(r)})
	default:
		_, err = fmt.Fprintln(w, text)
		return err
	}
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
