package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

func validateOutputFormat(output string) error {
	if output != "" && output != "console" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'console' or 'json'", output)
	}
	return nil
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
