// Command pcbasic is a small front end exercising the tokeniser and
// values façade: it can tokenise ASCII source to a binary program
// image, list a binary image back to ASCII, and evaluate a single
// literal expression. Flags and subcommands follow the
// github.com/urfave/cli v1 style kryptco-kr's krgpg command uses
// (app.Name/Usage/Flags/Action, one cli.Command per subcommand).
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/marioaugustorama/pcbasic/internal/console"
	"github.com/marioaugustorama/pcbasic/internal/detok"
	"github.com/marioaugustorama/pcbasic/internal/floaterr"
	"github.com/marioaugustorama/pcbasic/internal/program"
	"github.com/marioaugustorama/pcbasic/internal/strheap"
	"github.com/marioaugustorama/pcbasic/internal/tokenizer"
	"github.com/marioaugustorama/pcbasic/internal/values"
)

var log = logging.MustGetLogger("pcbasic")

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{color}pcbasic ▶ %{message}%{color:reset}`)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

func newFacade(c *cli.Context) *values.Facade {
	heap := strheap.NewHeap()
	handler := floaterr.NewHandler(console.NewTerm())
	return values.NewFacade(heap, handler, c.GlobalBool("double-math"))
}

func main() {
	setupLogging()

	app := cli.NewApp()
	app.Name = "pcbasic"
	app.Usage = "tokenise, list and evaluate classic BASIC source"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "double-math",
			Usage: "compute ^ and math functions at Double precision when an operand is Double",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "tokenize",
			Usage:     "tokenise an ASCII source file, writing its binary program image",
			ArgsUsage: "<file>",
			Action:    tokenizeAction,
		},
		{
			Name:      "list",
			Usage:     "detokenise a binary program image back to ASCII",
			ArgsUsage: "<file>",
			Action:    listAction,
		},
		{
			Name:      "eval",
			Usage:     "evaluate one literal value and print it with STR$ conventions",
			ArgsUsage: "<literal>",
			Action:    evalAction,
		},
	}
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		log.Errorf("usage error: %v", err)
		return err
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// tokenizeAction reads an ASCII source file one line at a time,
// tokenises each through internal/tokenizer, accumulates them in an
// internal/program.Store (so duplicate line numbers collapse the way
// the dialect's editor does), then writes the resulting lines back out
// in ascending line-number order, each terminated by '\r' the way the
// stored format requires (asm/output.go's header-then-segments shape,
// here: one envelope per line instead of one header for the file).
func tokenizeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pcbasic tokenize <file>", 1)
	}
	f, err := os.Open(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()

	vals := newFacade(c)
	tz := tokenizer.New(vals)
	store := program.NewStore()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		out, err := tz.TokeniseLine(scanner.Text())
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("tokenise error: %v", err), 1)
		}
		if len(out) == 0 {
			continue
		}
		if err := store.Insert(out); err != nil {
			log.Warningf("skipping line with no line number: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	for _, line := range store.List() {
		os.Stdout.Write(line.Body)
		os.Stdout.Write([]byte{'\r'})
	}
	return nil
}

// listAction splits a binary program image on its '\r' line
// terminators and detokenises each line back to ASCII, printing one
// source line per stored line (asm/main.go's -d disassemble mode,
// applied to BASIC tokens instead of WUT-4 instructions).
func listAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pcbasic list <file>", 1)
	}
	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	vals := newFacade(c)
	start := 0
	for i, b := range data {
		if b != '\r' {
			continue
		}
		line := data[start:i]
		start = i + 1
		if len(line) == 0 {
			continue
		}
		text, err := detok.Detokenise(line, vals)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("detokenise error: %v", err), 1)
		}
		fmt.Println(text)
	}
	return nil
}

// evalAction parses a single numeric literal through the values
// façade and prints it the way STR$ renders it, a smoke-test surface
// for numeric/string literal handling independent of the (out-of-scope)
// full expression evaluator.
func evalAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: pcbasic eval <literal>", 1)
	}
	vals := newFacade(c)
	v, err := vals.FromStr(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("eval error: %v", err), 1)
	}
	s, err := vals.ToStr(v, true, false)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("eval error: %v", err), 1)
	}
	fmt.Println(s)
	return nil
}
