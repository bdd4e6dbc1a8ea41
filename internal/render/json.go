package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/djedi/ddf/internal/diskfree"
)

func renderJSON(w io.Writer, records []diskfree.Filesystem) error {
	if records == nil {
		records = []diskfree.Filesystem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode filesystems: %w", err)
	}
	return nil
}
