package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter collects yes/no decisions from the operator. All decisions
// are collected before any network activity starts so a long retry
// sequence is never interrupted by a waiting prompt.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// YesNo asks question until the operator answers y/yes or n/no,
// case-insensitively.
func (p *Prompter) YesNo(question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(p.out, "%s [y/n]: ", question); err != nil {
			return false, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Invalid input. Please enter 'y' or 'n'.")
		}

		if err == io.EOF {
			return false, fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
	}
}
