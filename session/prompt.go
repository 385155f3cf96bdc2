package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt texts.
const (
	askSource       = "Choose a source node? "
	askDest         = "Choose a destination node? "
	invalidNode     = "Invalid Node!\n"
	menu            = "(a) Find shortest path\n(b) Down a node\n(c) Restore a node\n(q) Exit\nChoice: "
	askDown         = "Which node do you want to down? "
	askRestore      = "Which node do you want to restore? "
	invalidExisting = "Invalid node! Please enter existing node\n"
	invalidChoice   = "Invalid Input! Please try again."
	goodbye         = "Exiting the program..."
)

// errInputClosed ends a session whose input ran out.
var errInputClosed = errors.New("session: input closed")

// Prompt is the line-oriented menu session: choose a source and a
// destination once, then find, down, restore or exit until done.
type Prompt struct {
	c   *Controller
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt reads commands from in and writes to out.
func NewPrompt(c *Controller, in io.Reader, out io.Writer) *Prompt {
	return &Prompt{c: c, in: bufio.NewScanner(in), out: out}
}

// Run drives the session until the operator exits, input ends, or ctx is
// done. End of input is a normal exit.
func (p *Prompt) Run(ctx context.Context) error {
	err := p.run(ctx)
	if errors.Is(err, errInputClosed) {
		return p.in.Err()
	}

	return err
}

func (p *Prompt) run(ctx context.Context) error {
	src, err := p.askNode(askSource, invalidNode)
	if err != nil {
		return err
	}
	dst, err := p.askNode(askDest, invalidNode)
	if err != nil {
		return err
	}

	for {
		if err = ctx.Err(); err != nil {
			return err
		}
		choice, err := p.ask(menu)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out)

		switch strings.ToLower(choice) {
		case "a", "find":
			if err = p.find(src, dst); err != nil {
				return err
			}
		case "b", "down":
			name, err := p.askNode(askDown, invalidExisting)
			if err != nil {
				return err
			}
			if err = p.c.Down(name); err != nil {
				return err
			}
		case "c", "restore":
			name, err := p.askNode(askRestore, invalidExisting)
			if err != nil {
				return err
			}
			if err = p.c.Restore(name); err != nil {
				return err
			}
		case "q", "exit", "quit":
			fmt.Fprintln(p.out, goodbye)
			return nil
		default:
			fmt.Fprintln(p.out, invalidChoice)
		}
	}
}

func (p *Prompt) find(src, dst string) error {
	r, err := p.c.FindRoute(src, dst)
	if err != nil {
		return err
	}
	if !r.Reachable {
		fmt.Fprintf(p.out, "%s to %s is unreachable. Cost is: inf\n\n", r.Source, r.Dest)
		return nil
	}
	fmt.Fprintf(p.out, "Shortest distance from %s to %s is: %d\n", r.Source, r.Dest, r.Cost)
	fmt.Fprintf(p.out, "Path from %s to %s: %s\n\n", r.Source, r.Dest, r.Path)

	return nil
}

// askNode repeats question until the answer names a vertex.
func (p *Prompt) askNode(question, invalid string) (string, error) {
	answer, err := p.ask(question)
	for err == nil {
		if _, rerr := p.c.Resolve(answer); rerr == nil {
			return answer, nil
		}
		answer, err = p.ask(invalid + question)
	}

	return "", err
}

func (p *Prompt) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", errInputClosed
	}

	return strings.TrimSpace(p.in.Text()), nil
}
