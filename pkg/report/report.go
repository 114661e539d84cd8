// Package report renders lesson results for the terminal or as YAML.
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vinodhalaharvi/funcintro/pkg/ct"
)

// Result is the outcome of one named lesson.
type Result struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	Text  string `yaml:"-"`
}

// Code is a block of output lines.
type Code struct {
	Lines []string
}

// CodeMonoid composes code blocks.
var CodeMonoid = ct.Monoid[Code]{
	Empty:  func() Code { return Code{} },
	Append: func(a, b Code) Code { return Code{Lines: append(append([]string(nil), a.Lines...), b.Lines...)} },
}

// Line creates a single line.
func Line(s string) Code { return Code{Lines: []string{s}} }

// Blank creates an empty line.
func Blank() Code { return Line("") }

// Lines splits text into a block, one line per newline.
func Lines(text string) Code {
	if text == "" {
		return CodeMonoid.Empty()
	}
	return Code{Lines: strings.Split(text, "\n")}
}

// Indent adds indentation to every non-empty line.
func Indent(c Code) Code {
	return Code{Lines: ct.Map(c.Lines, func(line string) string {
		if line == "" {
			return ""
		}
		return "  " + line
	})}
}

// String converts Code to string.
func (c Code) String() string { return strings.Join(c.Lines, "\n") }

// Render lays out results as headed, indented blocks.
func Render(results []Result) string {
	return ct.FoldMap(results, CodeMonoid, renderResult).String()
}

func renderResult(r Result) Code {
	return ct.Concat(CodeMonoid, []Code{
		Line(fmt.Sprintf("== %s ==", r.Name)),
		Indent(Lines(r.Text)),
		Blank(),
	})
}

// YAML encodes the structured values of results.
func YAML(results []Result) ([]byte, error) {
	out, err := yaml.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}
	return out, nil
}
