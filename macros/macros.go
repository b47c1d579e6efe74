package macros

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
)

// DfltMarker is the default marker for a macro definition line. Any line
// containing this string is taken to be a definition.
const DfltMarker = "#define"

// Expander records the information needed to expand the macros in a text
//
// You should create a new Expander with New, giving any options that you
// need. Any macros added with Predefine or AddMacro are applied before those
// found in the text.
//
// You can then use Expand to substitute the macros defined in a string or
// ExpandFile to do the same for the contents of a file.
type Expander struct {
	predefs         []Definition
	marker          string
	splitWhitespace bool
}

type OptFunc func(e *Expander) error

// New creates a new Expander object.
func New(opts ...OptFunc) (*Expander, error) {
	e := &Expander{
		marker: DfltMarker,
	}

	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Marker returns an OptFunc that will change the string used to recognise a
// macro definition line. The default value is given by DfltMarker.
func Marker(marker string) OptFunc {
	return func(e *Expander) error {
		if marker == "" {
			return errors.New("the macro definition marker must not be empty")
		}
		e.marker = marker

		return nil
	}
}

// SplitOnWhitespace returns an OptFunc that will cause definition lines to
// be split on runs of any white space rather than on single space
// characters. Without this a tab or a doubled space between the parts of a
// definition will give an empty or unexpected name or value.
func SplitOnWhitespace() OptFunc {
	return func(e *Expander) error {
		e.splitWhitespace = true

		return nil
	}
}

// Predefine returns an OptFunc that will add a named macro to be applied
// before any macros defined in the text. The name must be a single,
// non-empty word.
func Predefine(name, value string) OptFunc {
	return func(e *Expander) error {
		if err := checkName(name); err != nil {
			return err
		}
		e.AddMacro(name, value)

		return nil
	}
}

// checkName returns an error if the predefined macro name is empty or is
// not a single word
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: the predefined macro name is empty",
			ErrBadDefinition)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: the predefined macro name %q"+
			" contains white space",
			ErrBadDefinition, name)
	}

	return nil
}

// AddMacro will add a named macro to the list of predefined macros. These
// are applied, in the order they were added, before any macros defined in
// the text being expanded. The name must be a single, non-empty word; if it
// is not then Expand will return an error.
func (e *Expander) AddMacro(name, value string) {
	e.predefs = append(e.predefs,
		Definition{Name: name, Value: value, Loc: "predefined"})
}

// Expand finds the macro definitions in text and replaces every whole-word
// occurrence of each macro name with its value. The predefined macros are
// applied first and then those from the text in the order they appear. Each
// is applied to the whole of the text as left by the one before, so a value
// inserted by an earlier macro can be replaced by a later one. The name in a
// definition line is never replaced.
//
// The srcName is used to report the location of any malformed definition. A
// predefined macro with a bad name is also reported as an error.
func (e *Expander) Expand(text, srcName string) (string, error) {
	for _, d := range e.predefs {
		if err := checkName(d.Name); err != nil {
			return "", err
		}
	}

	defs, err := e.ParseDefinitions(text, srcName)
	if err != nil {
		return "", err
	}

	pieces := e.splitText(text, defs)
	for _, d := range e.predefs {
		pieces = substitute(pieces, d)
	}
	for _, d := range defs {
		pieces = substitute(pieces, d)
	}

	return joinPieces(pieces), nil
}

// ExpandFile reads the named file and returns the result of expanding its
// contents. The file must exist and be a regular file.
func (e *Expander) ExpandFile(path string) (string, error) {
	es := filecheck.Provisos{
		Checks:    []check.FileInfo{check.FileInfoIsRegular},
		Existence: filecheck.MustExist,
	}
	if err := es.StatusCheck(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read the macro source: %w", err)
	}

	return e.Expand(string(content), path)
}
