// Package format encodes command results as json, edn or plain text.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Texter is implemented by results with a human-readable rendering.
type Texter interface {
	Text() string
}

// Names lists the supported formats.
var Names = []string{"json", "edn", "text"}

// Write writes v in the requested format. An empty format means json.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		return WriteText(w, v, pretty)
	default:
		return errors.Errorf("unknown format: %s (want one of %s)", format, strings.Join(Names, ", "))
	}
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText uses v's own rendering when it has one. Strings print as is and
// anything else falls back to JSON.
func WriteText(w io.Writer, v any, pretty bool) error {
	var s string
	switch t := v.(type) {
	case Texter:
		s = t.Text()
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		return WriteJSON(w, v, pretty)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
