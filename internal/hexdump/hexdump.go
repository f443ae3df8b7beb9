// Package hexdump formats byte ranges the way the dump subcommand prints
// them: sixteen bytes per row, each row prefixed with its address.
package hexdump

import (
	"fmt"
	"io"
)

// Write formats data as a hex dump to w. base is the address of data[0].
func Write(w io.Writer, data []uint8, base uint16) error {
	for i := 0; i < len(data); i += 16 {
		if _, err := fmt.Fprintf(w, "%04x: ", base+uint16(i)); err != nil {
			return err
		}
		for b := i; b < i+16 && b < len(data); b++ {
			if _, err := fmt.Fprintf(w, "%02x ", data[b]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
