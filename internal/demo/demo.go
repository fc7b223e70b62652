// Package demo prints a walkthrough of the string, slice and association list helpers.
package demo

import (
	"fmt"
	"io"

	"github.com/phuslu/log"
	"github.com/pkg/errors"
	"github.com/r4dulf/DotNetLab2/assoc"
	"github.com/r4dulf/DotNetLab2/sliceutil"
	"github.com/r4dulf/DotNetLab2/strutil"
)

const (
	exampleString = "hello world"
	exampleRune   = 'o'
	exampleNumber = 3
)

var exampleNumbers = []int{1, 2, 2, 3, 3, 3}

// printer remembers the first write error so the walkthrough reads top to bottom
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

// Run writes the demo output to w. Diagnostics go to logger only.
func Run(w io.Writer, logger log.Logger) error {
	p := &printer{w: w}

	logger.Debug().Str("input", exampleString).Msg("string helpers")
	p.println(strutil.Reverse(exampleString))
	p.println(strutil.CountOccurrences(exampleString, exampleRune))

	logger.Debug().Ints("input", exampleNumbers).Msg("slice helpers")
	p.println(sliceutil.CountOccurrences(exampleNumbers, exampleNumber))
	p.println(sliceutil.Join(sliceutil.Unique(exampleNumbers), ", "))

	dictionary := assoc.New[int, string, string]()
	dictionary.Add(1, "Value1", "Extra1")
	dictionary.Add(2, "Value2", "Extra2")
	logger.Debug().Int("records", dictionary.Len()).Msg("dictionary populated")

	p.println(formatBool(dictionary.ContainsKey(1)))
	p.println(formatBool(dictionary.ContainsValue("Value1", "Extra1")))

	for record := range dictionary.All() {
		p.println(record.String())
	}

	if p.err != nil {
		return errors.Wrap(p.err, "could not write demo output")
	}

	logger.Info().Int("records", dictionary.Len()).Msg("demo finished")
	return nil
}

// formatBool renders booleans as True/False
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
