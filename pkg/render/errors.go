package render

import "fmt"

/* Errors returned by ParseSpec. */

type ErrUnknownFlag struct {
	Flag rune
	Spec string
}

func (e *ErrUnknownFlag) Error() string {
	return fmt.Sprintf(`render: unknown flag %q in format spec %q, allowed are "cCtT"`, e.Flag, e.Spec)
}

type ErrTooManySections struct {
	Spec string
}

func (e *ErrTooManySections) Error() string {
	return fmt.Sprintf(`render: format spec %q has more than two ':'-separated sections`, e.Spec)
}
