// Package confirm provides Confirmer implementations for the workflow's
// confirmation gate.
package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"CiteScanner/internal/domain"
	"CiteScanner/internal/ports"
)

// Terminal asks for a y/n decision on the terminal before a submission
// goes out.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Confirmer = (*Terminal)(nil)

// NewTerminal wires the prompt streams (typically os.Stdin/os.Stdout).
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Request prints a submission summary and reads the decision. Anything
// other than y/yes declines.
func (t *Terminal) Request(ctx context.Context, record domain.ScrapedRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(t.out, "Send references for %s?\n", record.URL)
	fmt.Fprintf(t.out, "  publisher:  %s\n", record.Publisher)
	if titles := record.HeadRef["title"]; len(titles) > 0 {
		fmt.Fprintf(t.out, "  title:      %s\n", titles[0])
	}
	fmt.Fprintf(t.out, "  head fields: %d, cited refs: %d\n", len(record.HeadRef), len(record.CitedRefs))
	fmt.Fprint(t.out, "[y/N] ")

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
