package numfact

import "fmt"

// wrapBlockError reports which supercolumn a kernel call failed on, so a
// caller walking the tree knows which block to mark invalid (errors.Is
// still unwraps to the underlying ccs sentinel).
func wrapBlockError(s int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("numfact: supercolumn %d: %w", s, err)
}
