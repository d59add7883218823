package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

// JSON writes the document itself. Style is not part of the output.
type JSON struct {
	Indent bool
}

func (j JSON) Render(w io.Writer, doc worksheet.Document, _ worksheet.Style) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}
