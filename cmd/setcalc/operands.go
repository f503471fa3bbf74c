package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/* Prefix of an operand naming a set from the input file. */
const namedPrefix = "@"

type inputFile struct {
	Sets map[string][]int `yaml:"sets"`
}

/* Reads the named sets of a YAML input file. */
func loadSets(path string) (map[string][]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return decodeSets(raw)
}

func decodeSets(raw []byte) (map[string][]int, error) {
	var in inputFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, errors.Wrap(err, "decode input")
	}
	for name := range in.Sets {
		if name == "" || strings.ContainsAny(name, namedPrefix+",") {
			return nil, errors.Errorf("invalid set name %q", name)
		}
	}
	return in.Sets, nil
}

/*
Parses an operand into its values, in the order written.
An operand is either a comma separated list of integers, optionally wrapped in
braces, or the name of a set from the input file prefixed with @.
*/
func parseOperand(operand string, named map[string][]int) ([]int, error) {
	if name, ok := strings.CutPrefix(operand, namedPrefix); ok {
		values, ok := named[name]
		if !ok {
			return nil, errors.Errorf("unknown set %q", name)
		}
		return values, nil
	}

	body := strings.TrimSpace(operand)
	if strings.HasPrefix(body, "{") != strings.HasSuffix(body, "}") {
		return nil, errors.Errorf("unbalanced braces in %q", operand)
	}
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}"))
	if body == "" {
		return []int{}, nil
	}

	fields := strings.Split(body, ",")
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(err, "parse element of %q", operand)
		}
		values = append(values, v)
	}
	return values, nil
}
