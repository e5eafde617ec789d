package trace

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// Writer пишет события в текстовом виде, по одной строке на событие:
//
//	+ #0.1 constructed Michael Jackson - Beat It
//	- #0.1 destroyed   Michael Jackson - Beat It
type Writer struct {
	w     io.Writer
	color bool
}

// NewWriter создаёт текстовый трейсер. color включает ANSI-раскраску.
func NewWriter(w io.Writer, color bool) *Writer {
	return &Writer{w: w, color: color}
}

func (t *Writer) Constructed(id ID, subject string) {
	t.write("+", colorGreen, KindConstructed, id, subject)
}

func (t *Writer) Destroyed(id ID, subject string) {
	t.write("-", colorRed, KindDestroyed, id, subject)
}

func (t *Writer) write(sign, color string, kind Kind, id ID, subject string) {
	// ошибку записи в trace игнорируем: это диагностический поток
	if t.color {
		_, _ = fmt.Fprintf(t.w, "%s%s %s %-11s %s%s\n", color, sign, id, kind, subject, colorReset)
		return
	}
	_, _ = fmt.Fprintf(t.w, "%s %s %-11s %s\n", sign, id, kind, subject)
}

// UseColor решает, раскрашивать ли вывод: auto — только если f это терминал.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
