/*
melexhl is a console utility highlighting filter-query source files.
Usage is

	melexhl [--tab-size <n>] [--no-color] [--context] <file>

The file is lexed with the filterlang demo grammar and written to stdout with
one ANSI color per style tag. With --context, the active rule name and frame
depth after each line are written to stderr, the same information a
completion layer would read from the parse state.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/melex-go/melex/examples/filterlang"
	"github.com/melex-go/melex/grammar"
	"github.com/melex-go/melex/parser"
	"github.com/melex-go/melex/stream"
)

var (
	tabSize     int
	noColor     bool
	showContext bool
)

var styles = map[string]*color.Color{
	filterlang.KeywordStyle:  color.New(color.FgMagenta, color.Bold),
	filterlang.VariableStyle: color.New(color.FgCyan),
	filterlang.NumberStyle:   color.New(color.FgYellow),
	filterlang.StringStyle:   color.New(color.FgGreen),
	filterlang.OperatorStyle: color.New(color.FgWhite, color.Bold),
	filterlang.TypeStyle:     color.New(color.FgBlue, color.Bold),
	grammar.Punctuation:      color.New(color.FgWhite),
	parser.CommentStyle:      color.New(color.FgHiBlack),
	parser.ErrorStyle:        color.New(color.FgRed, color.Bold),
}

var rootCmd = &cobra.Command{
	Use:   "melexhl <file>",
	Short: "Incremental syntax highlighter for filter-query files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return highlight(args[0])
	},
}

func main() {
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&tabSize, "tab-size", stream.DefaultTabSize, "tab width used for indentation measuring")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	rootCmd.Flags().BoolVar(&showContext, "context", false, "report rule context after each line on stderr")
}

func highlight(name string) error {
	content, e := os.ReadFile(name)
	if e != nil {
		return e
	}

	m, e := filterlang.New()
	if e != nil {
		return e
	}

	if noColor {
		color.NoColor = true
	}

	s := stream.NewStream(stream.New(name, content))
	s.SetTabSize(tabSize)
	st := m.NewState()
	line := s.Line()

	for !s.AtEnd() {
		from := s.Pos()
		style := m.Token(s, st)
		text := string(content[from:s.Pos()])

		c := styles[style]
		if c == nil || style == parser.SpaceStyle {
			fmt.Print(text)
		} else {
			c.Print(text)
		}

		if showContext && s.Line() != line {
			rule, ruleName, ruleType := st.Context()
			fmt.Fprintf(os.Stderr, "line %d: rule %s depth %d name %q type %q indent %d\n",
				line, rule, st.Depth(), ruleName, ruleType, st.Indent(m.IndentUnit()))
			line = s.Line()
		}
	}

	return nil
}
