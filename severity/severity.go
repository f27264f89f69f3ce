// Package severity highlights Vivado tool messages by severity.
package severity

import (
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/ezrec/coe65/internal"
)

// 256 color palette entries.
var (
	white        = []color.Attribute{38, 5, 7}
	yellow       = []color.Attribute{38, 5, 3}
	brightYellow = []color.Attribute{38, 5, 11}
	brightOrange = []color.Attribute{38, 5, 202}
	brightRed    = []color.Attribute{38, 5, 9}
	brightWhite  = []color.Attribute{38, 5, 15}
)

// Message is a severity prefix and its color.
type Message struct {
	Prefix string
	Color  []color.Attribute
}

// Messages are the Vivado severities, in match order.
var Messages = []Message{
	{"STATUS", white},
	{"INFO", yellow},
	{"WARNING", brightYellow},
	{"CRITICAL WARNING", brightOrange},
	{"ERROR", brightRed},
}

var messageId = regexp.MustCompile(`: (\[.*?\])`)

// Highlighter colors the severity and message ID of each Vivado message line.
type Highlighter struct {
	Output  io.Writer // Destination for Copy.
	NoColor bool      // If set, lines pass through unchanged.
}

func paint(attrs []color.Attribute, text string) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// Highlight returns the line with its severity and the first ': [ID]' colored.
// Lines that do not start with a known severity followed by ':' are returned
// unchanged.
func (h *Highlighter) Highlight(line string) string {
	if h.NoColor {
		return line
	}

	for _, msg := range Messages {
		remainder, ok := strings.CutPrefix(line, msg.Prefix)
		if !ok || !strings.HasPrefix(remainder, ":") {
			continue
		}

		if match := messageId.FindStringSubmatchIndex(remainder); match != nil {
			id := remainder[match[2]:match[3]]
			remainder = remainder[:match[2]] + paint(brightWhite, id) + remainder[match[3]:]
		}

		return paint(msg.Color, msg.Prefix) + remainder
	}

	return line
}

// Copy highlights every line of input to Output.
func (h *Highlighter) Copy(input io.Reader) (err error) {
	for line, err_in := range internal.Lines(input) {
		if err_in != nil {
			err = err_in
			return
		}
		_, err = io.WriteString(h.Output, h.Highlight(line)+"\n")
		if err != nil {
			return
		}
	}

	return
}
