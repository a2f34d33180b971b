package display

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"

	sheenbidi "github.com/utelle/SheenBidi"
)

// Config holds display parameters.
type Config struct {
	LineWidth int            // target line width in fixed-width `en´s
	Colors    bool           // colorize levels
	Context   *uax11.Context // for measuring cell widths
}

// ConfigFromTerminal creates a display Config from the current terminal's
// properties. If stdout is not interactive, a conservative default is used
// and colors are switched off.
func ConfigFromTerminal() *Config {
	config := &Config{Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(1) {
		config.Colors = true
		w, _, err := term.GetSize(1)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 5
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "display").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// palette cycles through colors by embedding level.
var palette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
}

func levelColor(level sheenbidi.Level) *color.Color {
	return palette[int(level)%len(palette)]
}

// Levels renders a resolved paragraph as two aligned lines: the text itself
// and, below each cell, the embedding level of its position. Cells are
// padded to their East Asian width so that the two lines stay in register.
// Invisible code points (formatting characters and the like) show up as a
// placeholder so their level remains readable.
func Levels(w io.Writer, text []rune, para *sheenbidi.Paragraph, config *Config) error {
	if w == nil || para == nil {
		return sheenbidi.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}

	levels := para.Levels()
	var chars, digits strings.Builder
	for i, level := range levels {
		pos := para.Offset() + i
		cell := "·"
		if pos < len(text) && !isInvisible(text[pos]) {
			cell = string(text[pos])
		}
		lvl := fmt.Sprintf("%d", level)
		width := cellWidth(cell, context)
		if len(lvl) > width {
			width = len(lvl)
		}
		cell += strings.Repeat(" ", width-cellWidth(cell, context))
		lvl += strings.Repeat(" ", width-len(lvl))
		if config.Colors {
			cell = levelColor(level).Sprint(cell)
			lvl = levelColor(level).Sprint(lvl)
		}
		chars.WriteString(cell + " ")
		digits.WriteString(lvl + " ")
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", chars.String(), digits.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "base level %d (%s), %d positions\n",
		para.BaseLevel(), para.Direction(), para.Length())
	return err
}

func cellWidth(cell string, context *uax11.Context) int {
	width := uax11.StringWidth(grapheme.StringFromString(cell), context)
	if width < 1 {
		return 1
	}
	return width
}

func isInvisible(r rune) bool {
	return unicode.In(r, unicode.Cf, unicode.Cc, unicode.Mn) || r == ' '
}

// RunPrinter is a sheenbidi.RunResolver that prints every isolating run
// sequence it receives, one line per level run span. It resolves nothing;
// it exists to make the run stream of a paragraph visible.
type RunPrinter struct {
	W      io.Writer
	Colors bool
	count  int
}

// ResolveIsolatingRun prints the base run and its attached continuations.
func (rp *RunPrinter) ResolveIsolatingRun(ir *sheenbidi.IsolatingRun) error {
	rp.count++
	if _, err := fmt.Fprintf(rp.W, "isolating run sequence #%d (paragraph level %d):\n",
		rp.count, ir.ParagraphLevel); err != nil {
		return err
	}
	for run := ir.BaseRun; run != nil; run = run.Next() {
		header := fmt.Sprintf("  level run: level=%d sor=%s eor=%s", run.Level(), run.SOR(), run.EOR())
		if rp.Colors {
			header = levelColor(run.Level()).Sprint(header)
		}
		if _, err := fmt.Fprintln(rp.W, header); err != nil {
			return err
		}
		err := run.EachSpan(func(span sheenbidi.Span) error {
			_, err := fmt.Fprintf(rp.W, "    [%d+%d] %s @ %d\n",
				ir.ParagraphOffset+span.Offset(), span.Length(), span.Class(), span.Level())
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}
