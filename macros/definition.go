package macros

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nickwells/location.mod/location"
)

// ErrBadDefinition is wrapped by the error returned when a macro
// definition line does not have both a name and a value
var ErrBadDefinition = errors.New("bad macro definition")

// Definition records a single macro. Loc gives the place where it was
// defined and Line is the line number in the text, it is zero for a
// predefined macro
type Definition struct {
	Name  string
	Value string
	Loc   string
	Line  int
}

// ParseDefinitions returns the macro definitions found in the text in the
// order they appear. Every line containing the definition marker is a
// definition. The trimmed line is split into parts (on single spaces unless
// SplitOnWhitespace was given) and the second and third parts are taken as
// the name and the value; any further parts are ignored.
//
// A definition line without a non-empty name and value is reported as an
// error wrapping ErrBadDefinition.
func (e *Expander) ParseDefinitions(text, srcName string) ([]Definition, error) {
	var defs []Definition

	loc := location.New(srcName)
	for i, line := range strings.Split(text, "\n") {
		loc.Incr()

		line = strings.TrimSpace(line)
		if !strings.Contains(line, e.marker) {
			continue
		}

		d, err := e.parseLine(line, loc)
		if err != nil {
			return nil, err
		}
		d.Line = i + 1
		defs = append(defs, d)
	}

	return defs, nil
}

// parseLine splits a (trimmed) definition line into its name and value
func (e *Expander) parseLine(line string, loc *location.L) (Definition, error) {
	var parts []string
	if e.splitWhitespace {
		parts = strings.Fields(line)
	} else {
		parts = strings.Split(line, " ")
	}

	if len(parts) < 3 {
		return Definition{},
			fmt.Errorf("%w at %s: expected a name and a value: %q",
				ErrBadDefinition, loc, line)
	}
	if parts[1] == "" {
		return Definition{},
			fmt.Errorf("%w at %s: the name is empty: %q",
				ErrBadDefinition, loc, line)
	}
	if parts[2] == "" {
		return Definition{},
			fmt.Errorf("%w at %s: the value is empty: %q",
				ErrBadDefinition, loc, line)
	}

	return Definition{
		Name:  parts[1],
		Value: parts[2],
		Loc:   loc.String(),
	}, nil
}
