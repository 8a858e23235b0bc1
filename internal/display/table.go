// Package display renders entries for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/people/internal/models"
)

// EmptyMessage is printed instead of a table when there is nothing to show.
const EmptyMessage = "List is empty."

// Column widths, in runes.
const (
	nameWidth   = 15
	birthWidth  = 12
	zodiacWidth = 15
)

// Table writes entries as a bordered table with centered cells:
//
//	+---------------+------------+---------------+
//	|     Name      |   Birth    | Zodiac_sign   |
//	+---------------+------------+---------------+
//	|  Иванов Иван  | 2001.03.21 |     овен      |
//	+---------------+------------+---------------+
//
// Values wider than their column are written in full.
func Table(w io.Writer, entries []models.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	line := "+" + strings.Repeat("-", nameWidth) +
		"+" + strings.Repeat("-", birthWidth) +
		"+" + strings.Repeat("-", zodiacWidth) + "+"

	var b strings.Builder
	b.WriteString(line + "\n")
	b.WriteString(row("Name", "Birth ", "Zodiac_sign ") + "\n")
	b.WriteString(line + "\n")
	for _, e := range entries {
		b.WriteString(row(e.Name, e.Birth, e.ZodiacSign) + "\n")
		b.WriteString(line + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func row(name, birth, zodiac string) string {
	return "|" + center(name, nameWidth) +
		"|" + center(birth, birthWidth) +
		"|" + center(zodiac, zodiacWidth) + "|"
}

// center pads s with spaces to width runes, putting the odd space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
