package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"

	"gitlab.com/kyle_anderson/seqset/pkg/relation"
	"gitlab.com/kyle_anderson/seqset/pkg/render"
	"gitlab.com/kyle_anderson/seqset/pkg/set"
)

type Globals struct {
	Sorted  bool   `help:"Keep every operand sorted instead of in insertion order."`
	Format  string `help:"Output format, <flags>[:<separator>] with flags c/C (compact on/off) and t/T (trailing separator on/off)." env:"SETCALC_FORMAT"`
	Input   string `help:"YAML file of named sets, referenced as @name." short:"i" type:"existingfile"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

type cli struct {
	Globals

	Union        unionCmd        `cmd:"" help:"Union of every set."`
	Difference   differenceCmd   `cmd:"" help:"Elements of A missing from B."`
	Intersection intersectionCmd `cmd:"" help:"Elements of the first set held by every other set."`
	Symdiff      symdiffCmd      `cmd:"" help:"Elements held by exactly one of A and B."`
	Product      productCmd      `cmd:"" help:"Cartesian product of A and B as a set of pairs."`
	Combinations combinationsCmd `cmd:"" help:"Every K element selection of A."`
	Equal        equalCmd        `cmd:"" help:"Whether A and B hold the same elements."`
	Member       memberCmd       `cmd:"" help:"Whether any of the sets holds VALUE."`
	Demo         demoCmd         `cmd:"" help:"Run the demonstration scenario."`
}

/* State shared by every command. */
type env struct {
	sorted bool
	opts   render.Options
	named  map[string][]int
	out    io.Writer
}

func newEnv(g Globals, out io.Writer) (*env, error) {
	opts, err := render.ParseSpec(g.Format)
	if err != nil {
		return nil, errors.Wrap(err, "parse format")
	}
	e := &env{sorted: g.Sorted, opts: opts, out: out}
	if g.Input != "" {
		if e.named, err = loadSets(g.Input); err != nil {
			return nil, err
		}
		log.Debug().Str("path", g.Input).Int("sets", len(e.named)).Msg("Loaded input")
	}
	return e, nil
}

func (e *env) values(operand string) ([]int, error) {
	values, err := parseOperand(operand, e.named)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("operand", operand).Ints("values", values).Msg("Parsed operand")
	return values, nil
}

/* Builds a set of the kind selected by --sorted. */
func (e *env) newSet(values ...int) set.Set[int] {
	if e.sorted {
		return set.Sorted(values...)
	}
	return set.Of(values...)
}

func (e *env) operand(operand string) (set.Set[int], error) {
	values, err := e.values(operand)
	if err != nil {
		return nil, err
	}
	return e.newSet(values...), nil
}

func (e *env) operands(operands []string) ([]set.ImmutableSet[int], error) {
	sets := make([]set.ImmutableSet[int], 0, len(operands))
	for _, operand := range operands {
		s, err := e.operand(operand)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func write[T any](e *env, s iterator.Iterable[T]) error {
	_, err := fmt.Fprintln(e.out, render.With[T](s, e.opts))
	return errors.Wrap(err, "write result")
}

type unionCmd struct {
	Sets []string `arg:"" name:"set" help:"Operands."`
}

func (c *unionCmd) Run(e *env) error {
	sets, err := e.operands(c.Sets)
	if err != nil {
		return err
	}
	return write[int](e, set.Union(e.newSet(), sets...))
}

type differenceCmd struct {
	A string `arg:""`
	B string `arg:""`
}

func (c *differenceCmd) Run(e *env) error {
	sets, err := e.operands([]string{c.A, c.B})
	if err != nil {
		return err
	}
	return write[int](e, set.Difference(e.newSet(), sets[0], sets[1]))
}

type intersectionCmd struct {
	Sets []string `arg:"" name:"set" help:"Operands."`
}

func (c *intersectionCmd) Run(e *env) error {
	sets, err := e.operands(c.Sets)
	if err != nil {
		return err
	}
	return write[int](e, set.Intersect(e.newSet(), sets...))
}

type symdiffCmd struct {
	A string `arg:""`
	B string `arg:""`
}

func (c *symdiffCmd) Run(e *env) error {
	a, err := e.values(c.A)
	if err != nil {
		return err
	}
	b, err := e.values(c.B)
	if err != nil {
		return err
	}
	if e.sorted {
		return write[int](e, set.Sorted(a...).SymmetricDifference(set.Sorted(b...)))
	}
	return write[int](e, set.Of(a...).SymmetricDifference(set.Of(b...)))
}

type productCmd struct {
	A string `arg:""`
	B string `arg:""`
}

func (c *productCmd) Run(e *env) error {
	a, err := e.values(c.A)
	if err != nil {
		return err
	}
	b, err := e.values(c.B)
	if err != nil {
		return err
	}
	if e.sorted {
		return write[*set.Ordered[int, relation.Less[int]]](e, set.OrderedCartesianProduct[int](set.Sorted(a...), set.Sorted(b...)))
	}
	return write[*set.Unordered[int, relation.Equal[int]]](e, set.CartesianProduct[int](set.Of(a...), set.Of(b...)))
}

type combinationsCmd struct {
	A    string `arg:""`
	Size int    `help:"Size of every selection." short:"k" required:""`
}

func (c *combinationsCmd) Run(e *env) error {
	a, err := e.values(c.A)
	if err != nil {
		return err
	}
	if e.sorted {
		combinations, err := set.OrderedCombinations(set.Sorted(a...), c.Size)
		if err != nil {
			return errors.Wrapf(err, "choose %d of %s", c.Size, c.A)
		}
		return write[*set.Ordered[int, relation.Less[int]]](e, combinations)
	}
	combinations, err := set.Combinations(set.Of(a...), c.Size)
	if err != nil {
		return errors.Wrapf(err, "choose %d of %s", c.Size, c.A)
	}
	return write[*set.Unordered[int, relation.Equal[int]]](e, combinations)
}

type equalCmd struct {
	A string `arg:""`
	B string `arg:""`
}

func (c *equalCmd) Run(e *env) error {
	a, err := e.operand(c.A)
	if err != nil {
		return err
	}
	b, err := e.operand(c.B)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, set.Equals(a, b))
	return errors.Wrap(err, "write result")
}

type memberCmd struct {
	Value int      `arg:""`
	Sets  []string `arg:"" name:"set" help:"Operands."`
}

func (c *memberCmd) Run(e *env) error {
	sets, err := e.operands(c.Sets)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, set.Group[int](sets).Contains(c.Value))
	return errors.Wrap(err, "write result")
}

type demoCmd struct{}

func (demoCmd) Run(e *env) error {
	s1, s2 := set.Of(1, 2, 3), set.Of(1, 2, 4)
	s3 := s1.Difference(s2).UnionWith(s2.Difference(s1))
	n := s1.Union(s2).Count(1)

	ordered := set.Sorted(6464, 1, 2, 3)
	nested := set.OfSets(set.Of(7, 1, 2, 3), set.Of(1, 2, 4))
	n2 := nested.Count(set.Of(1, 2, 4))
	n3 := nested.Count(set.Of(1, 2, 3))

	lines := []any{
		render.With[int](s1, e.opts),
		render.With[int](s2, e.opts),
		render.With[int](s3, e.opts),
		render.With[int](s1.Union(s2), e.opts),
		fmt.Sprint("size: ", n),
		render.With[int](ordered, e.opts),
		fmt.Sprint("test formatting: ", render.With[int](ordered, e.opts)),
		fmt.Sprint("test formatting: ", render.With[*set.Unordered[int, relation.Equal[int]]](nested, e.opts)),
		render.With[*set.Unordered[int, relation.Equal[int]]](nested, e.opts),
		fmt.Sprint("size: ", n2),
		fmt.Sprint("size: ", n3),
		fmt.Sprint("test formatting: ", n2),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(e.out, line); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return nil
}
