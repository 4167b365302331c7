package update

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger writes human readable old/new line diffs to stderr.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

// Line is a position in a workflow file.
type Line struct {
	File   string
	Number int
	Line   string
}

func (l *Logger) Output(message string, line *Line, newLine string) {
	if newLine == "" {
		fmt.Fprintf(l.stderr, `%s
%s:%d
%s
`, message, line.File, line.Number, line.Line)
		return
	}
	fmt.Fprintf(l.stderr, `%s
%s:%d
%s
%s
`, message, line.File, line.Number, l.red("- "+line.Line), l.green("+ "+newLine))
}
