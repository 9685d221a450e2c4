// Package shell runs the line-oriented command loop on a reader/writer pair.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"roster/internal/app"
)

// Executor applies one input line. *app.App satisfies it.
type Executor interface {
	Execute(line string) app.Result
}

// Options tweaks the loop presentation.
type Options struct {
	// Prompt is printed before each line is read. Empty disables it.
	Prompt string
}

// Run reads commands from in until exit, end of input or ctx cancellation.
// Each line is fully applied and its output written before the next read.
// Only a failing reader or writer produces an error.
func Run(ctx context.Context, exec Executor, in io.Reader, out io.Writer, opts Options) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if opts.Prompt != "" {
			if _, err := fmt.Fprintln(out, opts.Prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}
		line, err := reader.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return fmt.Errorf("read command: %w", err)
		}
		if eof && line == "" {
			return nil
		}

		res := exec.Execute(strings.TrimRight(line, "\r\n"))
		if _, err := fmt.Fprintln(out, Format(res)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if res.Kind == app.ResultExit || eof {
			return nil
		}
	}
}
