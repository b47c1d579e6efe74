// defexpand expands the #define macros in a file and prints the result.
//
// Usage:
//
//	defexpand file
//
// Every line of the file containing "#define" defines a macro; the word
// after "#define" is the name and the word after that is the value. Each
// whole-word use of a name anywhere in the file is replaced by its value,
// the macros being applied in the order they are defined.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nickwells/defexpand.mod/macros"
)

const progName = "defexpand"

func main() {
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run expands the single file named in args and writes the result to w
func run(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one file name, got %d arguments"+
			"\nusage: %s file", len(args), progName)
	}

	e, err := macros.New()
	if err != nil {
		return err
	}

	text, err := e.ExpandFile(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, text)
	return err
}
