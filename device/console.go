package device

import (
	"fmt"
	"io"
)

// Console writes PRN values to an output stream, one decimal value per
// line, in execution order.
type Console struct {
	Output io.Writer
}

// Print emits a single value.
func (con *Console) Print(value uint8) (err error) {
	_, err = fmt.Fprintf(con.Output, "%d\n", value)
	return
}
