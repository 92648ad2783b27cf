package series

import "fmt"

// Advisory is a non-fatal missing-value warning raised by a reducer that
// was asked to skip NA entries and actually met one. It travels alongside
// a successful result — it is data, not an error, and never aborts the
// computation that raised it.
type Advisory struct {
	// Op names the operation that raised the advisory, e.g. "cumulate.Sum".
	Op string

	// Index is the position in the input sequence where the missing
	// observation was encountered.
	Index int
}

// String renders the advisory in "op: missing value at index i" form.
func (a Advisory) String() string {
	return fmt.Sprintf("%s: missing value at index %d", a.Op, a.Index)
}
