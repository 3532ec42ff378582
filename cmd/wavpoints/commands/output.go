// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	// FormatMsgpack is a compact binary encoding for large point sets
	FormatMsgpack OutputFormat = "msgpack"
	// FormatText is a styled human readable summary
	FormatText OutputFormat = "text"
)

// textRenderer is implemented by results that have a FormatText layout.
type textRenderer interface {
	renderText(s Styles) string
}

// output writes result to file, or to w when file is empty.
func output(w io.Writer, file string, format OutputFormat, result any) error {
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		return encodeAndClose(f, format, result)
	}
	return encode(w, format, result)
}

// encodeAndClose writes result to wc and closes it. A failed close is
// reported even when encoding succeeded.
func encodeAndClose(wc io.WriteCloser, format OutputFormat, result any) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close output file: %w", cerr))
		}
	}()
	return encode(wc, format, result)
}

func encode(w io.Writer, format OutputFormat, result any) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatMsgpack:
		data, err := msgpack.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText:
		r, ok := result.(textRenderer)
		if !ok {
			return fmt.Errorf("unsupported output format for this command: %s", format)
		}
		_, err := io.WriteString(w, r.renderText(NewStyles(DefaultTheme)))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
