/*
Turns sets into text.

The set containers know nothing about output formats; they hand their elements
to Render through an iterator, and every layout choice lives in Options.
*/
package render

import (
	"fmt"
	"strings"

	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

/*
Compact puts everything on one line, otherwise each element gets its own
indented line. TrailingSeparator writes a separator after the last element too.
*/
type Options struct {
	Compact           bool
	TrailingSeparator bool
	Separator         string
}

func Default() Options {
	return Options{Compact: true, TrailingSeparator: false, Separator: ","}
}

/*
Render writes the elements of s between braces:

	{}                 empty
	{ 1, 2, 3 }        compact
	{\n\t1,\n\t2\n}    spaced

Elements are formatted with fmt.Sprint, so nested sets render through their
String method.
*/
func Render[T any](s iterator.Iterable[T], opts Options) string {
	indent, spacer := "", " "
	if !opts.Compact {
		indent, spacer = "\t", "\n"
	}
	var b strings.Builder
	empty := true
	it := s.It()
	defer it.Close()
loop:
	for {
		elem, err := it.Next()
		switch {
		case err == nil:
		case err.IsDone():
			break loop
		default:
			/* Sets do not return real errors during iteration. */
			panic(fmt.Errorf(`render.Render: iterator errored: %w`, err))
		}
		if empty {
			b.WriteString("{" + spacer)
			empty = false
		} else {
			b.WriteString(opts.Separator + spacer)
		}
		b.WriteString(indent)
		b.WriteString(fmt.Sprint(elem))
	}
	if empty {
		return "{}"
	}
	if opts.TrailingSeparator {
		b.WriteString(opts.Separator)
	}
	b.WriteString(spacer + "}")
	return b.String()
}

type formatted[T any] struct {
	s    iterator.Iterable[T]
	opts Options
}

func (f formatted[T]) String() string { return Render(f.s, f.opts) }

/* With binds options to s, for use with the fmt verbs %v and %s. */
func With[T any](s iterator.Iterable[T], opts Options) fmt.Stringer {
	return formatted[T]{s, opts}
}

/*
ParseSpec reads the format mini-language `<flags>[:<separator>]`.

Flags: c / C turn compact output on / off, t / T turn the trailing separator
on / off. When a flag repeats, the last one wins. An empty separator keeps the
default. Unset fields keep the values of Default.
*/
func ParseSpec(spec string) (Options, error) {
	opts := Default()
	sections := strings.Split(spec, ":")
	if len(sections) > 2 {
		return Default(), &ErrTooManySections{spec}
	}
	for _, flag := range sections[0] {
		switch flag {
		case 'c':
			opts.Compact = true
		case 'C':
			opts.Compact = false
		case 't':
			opts.TrailingSeparator = true
		case 'T':
			opts.TrailingSeparator = false
		default:
			return Default(), &ErrUnknownFlag{flag, spec}
		}
	}
	if len(sections) == 2 && sections[1] != "" {
		opts.Separator = sections[1]
	}
	return opts, nil
}
