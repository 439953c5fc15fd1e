package skiing

import (
	"fmt"
	"io"
)

// WriteResult prints r as two lines:
//
//	Length: <cells on the run>
//	Drop: <elevation loss>
func WriteResult(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, "Length: %d\nDrop: %d\n", r.Length(), r.Drop)
	return err
}
