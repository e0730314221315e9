// Package console reads answers to prompts one line at a time.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes prompt and returns the next input line without its line
// terminator. A final line with no newline is still returned; io.EOF is
// returned only once nothing is left to read.
func (c *Console) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Writer returns the output side of the console.
func (c *Console) Writer() io.Writer {
	return c.out
}
