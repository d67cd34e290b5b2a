package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/npillmayer/mindom/dom"
	"github.com/npillmayer/mindom/dom/domdbg"
	"github.com/npillmayer/mindom/dom/style/css"
)

const (
	formatPretty = "pretty"
	formatDump   = "dump"
	formatDOT    = "dot"
)

func runHTML(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	format := cmd.String("format")
	switch format {
	case formatPretty, formatDump, formatDOT:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	text, source, err := readInput(ctx, cmd)
	if err != nil {
		return err
	}
	env.log.Debug("Parsing markup", zap.String("source", source), zap.Int("bytes", len(text)))

	var doc *dom.Document
	switch m := dom.Parse(text).Match(); m {
	case m.Ok(&doc):
	case m.Err(&err):
		return fmt.Errorf("unable to parse markup from %s: %w", source, err)
	}
	env.log.Debug("Markup parsed", zap.Int("style sheets", len(doc.StyleSheets())))

	out := cmd.Root().Writer
	switch format {
	case formatDump:
		_, err = io.WriteString(out, dom.Dump(doc))
	case formatDOT:
		err = domdbg.ToGraphViz(doc, out)
	default:
		err = printDocument(out, doc)
	}
	if err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func printDocument(w io.Writer, doc *dom.Document) error {
	if root, ok := doc.Root(); ok {
		if err := dom.Fprint(w, root); err != nil {
			return err
		}
	}
	for _, sheet := range doc.StyleSheets() {
		if _, err := io.WriteString(w, sheet.String()); err != nil {
			return err
		}
	}
	return nil
}

func runCSS(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	text, source, err := readInput(ctx, cmd)
	if err != nil {
		return err
	}
	env.log.Debug("Parsing style sheet", zap.String("source", source), zap.Int("bytes", len(text)))
	sheet, err := css.Parse(text)
	if err != nil {
		return fmt.Errorf("unable to parse style sheet from %s: %w", source, err)
	}
	env.log.Debug("Style sheet parsed", zap.Int("rules", len(sheet.Rules)))
	if _, err = io.WriteString(cmd.Root().Writer, sheet.String()); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// readInput returns the contents of the file named by the first argument or,
// without arguments, a single line read from the command's reader.
func readInput(ctx context.Context, cmd *cli.Command) (text string, source string, err error) {
	env := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	if fname := cmd.Args().First(); len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return "", "", fmt.Errorf("unable to read source file '%s': %w", fname, err)
		}
		return string(data), fname, nil
	}
	line, err := bufio.NewReader(cmd.Root().Reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", "", fmt.Errorf("unable to read STDIN: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), "STDIN", nil
}
