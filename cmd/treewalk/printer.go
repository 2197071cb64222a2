package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/viant/treewalk/document"
)

type printer struct {
	w     io.Writer
	path  func(format string, a ...interface{}) string
	value func(format string, a ...interface{}) string
}

func newPrinter(w io.Writer, colorize bool) *printer {
	ret := &printer{w: w, path: fmt.Sprintf, value: fmt.Sprintf}
	if !colorize {
		return ret
	}
	pathColor := color.RGB(128, 216, 236)
	pathColor.EnableColor()
	valueColor := color.RGB(196, 168, 128)
	valueColor.EnableColor()
	ret.path = pathColor.SprintfFunc()
	ret.value = valueColor.SprintfFunc()
	return ret
}

func (p *printer) printPaths(paths ...string) error {
	for _, path := range paths {
		if _, err := fmt.Fprintln(p.w, p.path("%s", path)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printValue(value any) error {
	data, err := document.EncodeJSON(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, p.value("%s", data))
	return err
}

func (p *printer) printText(text string) error {
	_, err := fmt.Fprintln(p.w, p.value("%s", text))
	return err
}
