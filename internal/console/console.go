package console

import (
	"bufio"
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
	"strconv"
	"strings"
)

const notUnderstood = "Sorry, I did not understand that."

// Console reads the player's decisions from a reader and writes the table to a writer
type Console struct {
	in  *bufio.Reader
	out io.Writer
	// isTerminal is true if out is attached to a terminal that can be cleared
	isTerminal bool
}

// New returns a new console
func New(in io.Reader, out io.Writer, isTerminal bool) *Console {
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		isTerminal: isTerminal,
	}
}

// NewStdio returns a console on standard input and output
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

func (c *Console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// readLine prints the question and returns the trimmed answer
// io.EOF is only returned once there is nothing left to read.
func (c *Console) readLine(question string) (string, error) {
	c.printf("%s", question)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readChoice asks until the answer starts with one of the choices (case-insensitive)
func (c *Console) readChoice(question string, choices ...byte) (byte, error) {
	for {
		answer, err := c.readLine(question)
		if err != nil {
			return 0, err
		}

		if answer != "" {
			first := strings.ToLower(answer)[0]
			for _, choice := range choices {
				if first == choice {
					return choice, nil
				}
			}
		}

		c.printf("%s\n", notUnderstood)
	}
}

// Bet asks for a bet amount until a whole number is entered
func (c *Console) Bet() (int, error) {
	for {
		answer, err := c.readLine("How much would you like to bet? ")
		if err != nil {
			return 0, err
		}

		bet, err := strconv.Atoi(answer)
		if err == nil {
			return bet, nil
		}

		c.printf("%s\n", notUnderstood)
	}
}
