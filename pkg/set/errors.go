package set

import "fmt"

/* Error returned when a combination size does not fit the set it is drawn from. */
type ErrOutOfRange struct {
	K, Size int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf(`set: combination size %d out of range for a set of %d elements`, e.K, e.Size)
}
