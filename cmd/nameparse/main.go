package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shishobooks/nameparser/pkg/nameparser"
	"github.com/shishobooks/nameparser/pkg/names"
	"github.com/shishobooks/nameparser/pkg/sortname"
)

type options struct {
	JSON     bool `short:"j" long:"json" description:"Print one JSON object per name"`
	Sort     bool `short:"s" long:"sort" description:"Print sort names in alphabetical order"`
	Classify bool `short:"c" long:"classify" description:"Classify each argument as a single word"`
}

func main() {
	log := logger.New()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [NAME...]\n\nNames are read from standard input, one per line, when none are given."

	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	failed, err := run(opts, args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Err(err).Fatal("nameparse error")
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run parses every input and writes the results to out. Inputs that can't be
// parsed are reported on errOut and counted.
func run(opts options, args []string, in io.Reader, out, errOut io.Writer) (int, error) {
	inputs, err := readInputs(args, in)
	if err != nil {
		return 0, err
	}

	if opts.Classify {
		return 0, writeClassifications(inputs, out, opts.JSON)
	}

	var parsedInputs []string
	var results []names.Result
	failed := 0
	for _, input := range inputs {
		parsed, err := nameparser.Parse(input)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", input, err)
			failed++
			continue
		}
		parsedInputs = append(parsedInputs, input)
		results = append(results, names.Result{ParsedName: parsed, SortName: sortname.ForParsed(parsed)})
	}

	switch {
	case opts.Sort:
		err = writeSortNames(results, out, opts.JSON)
	case opts.JSON:
		err = writeJSON(results, out)
	default:
		err = writeTable(parsedInputs, results, out)
	}
	return failed, err
}

func readInputs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read names")
	}
	return inputs, nil
}

func writeTable(inputs []string, results []names.Result, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tSALUTATION\tFIRST\tMIDDLE\tLAST\tSUFFIX")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", inputs[i], r.Salutation, r.FirstName, r.MiddleInitials, r.LastName, r.Suffix)
	}
	return errors.WithStack(w.Flush())
}

func writeJSON(results []names.Result, out io.Writer) error {
	enc := json.NewEncoder(out)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func writeSortNames(results []names.Result, out io.Writer, asJSON bool) error {
	sort.SliceStable(results, func(i, j int) bool {
		return strings.ToLower(results[i].SortName) < strings.ToLower(results[j].SortName)
	})
	if asJSON {
		return writeJSON(results, out)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(out, r.SortName); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func writeClassifications(words []string, out io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		for _, word := range words {
			if err := enc.Encode(nameparser.Classify(word)); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tSALUTATION\tSUFFIX\tINITIAL\tCOMPOUND\tCONJUNCTIVE\tFIXED")
	for _, word := range words {
		c := nameparser.Classify(word)
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\t%s\n", c.Word, c.Salutation, c.Suffix, c.Initial, c.CompoundLastName, c.ConjunctiveLastName, c.FixedCase)
	}
	return errors.WithStack(w.Flush())
}
