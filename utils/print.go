package utils

//go:generate mockgen -source print.go -destination print_mocks.go -package utils

import (
	"fmt"
	"io"
	"os"
)

type Printer interface {
	Print() error
	Close()
}

type Printers struct {
	printers []Printer
}

// Print runs all printers and returns the first error encountered.
// Every printer is run even if an earlier one fails.
func (ps *Printers) Print() error {
	var first error
	for _, p := range ps.printers {
		if err := p.Print(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

func (ps *Printers) Len() int {
	return len(ps.printers)
}

func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

type PrintToWriter struct {
	w io.Writer
	f func() string
}

func (p *PrintToWriter) Print() error {
	_, err := fmt.Fprint(p.w, p.f())
	return err
}

func (p *PrintToWriter) Close() {
	return
}

func NewPrintToWriter(w io.Writer, f func() string) *PrintToWriter {
	return &PrintToWriter{w, f}
}

func (ps *Printers) AddPrintToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrintToWriter(w, f))
}

// PrintToFile replaces the content of a file on every print.
type PrintToFile struct {
	filepath string
	f        func() string
}

func (p *PrintToFile) Print() error {
	file, err := os.OpenFile(p.filepath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to print to file %s - %w", p.filepath, err)
	}
	defer file.Close()
	if _, err := file.WriteString(p.f()); err != nil {
		return fmt.Errorf("unable to print to file %s - %w", p.filepath, err)
	}
	return nil
}

func (p *PrintToFile) Close() {
	return
}

func NewPrintToFile(filepath string, f func() string) *PrintToFile {
	return &PrintToFile{filepath, f}
}

func (ps *Printers) AddPrintToFile(filepath string, f func() string) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrintToFile(filepath, f))
	}
	return ps
}
