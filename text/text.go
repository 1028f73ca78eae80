// Package text renders vectors and matrices for people, with numbers written
// the way the reader's locale writes them.
package text

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ScriptRock/isometry"
)

// ErrUnsupported is returned by Fprint for values that are neither a
// Vector3 nor a Matrix3.
var ErrUnsupported = errors.New("text: unsupported value")

// Printer renders values in the layout of their String methods, formatting
// each number for a language.
type Printer struct {
	p *message.Printer
}

func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

// Vector renders v as "(x: 1, y: 2, z: 3)". When the locale writes a comma
// inside a number, components are separated by "; " instead.
func (p *Printer) Vector(v isometry.Vector3) string {
	x, y, z := p.number(v[0]), p.number(v[1]), p.number(v[2])
	sep := separator(x, y, z)
	return "(x: " + x + sep + "y: " + y + sep + "z: " + z + ")"
}

// Matrix renders m as "[[a00, a01, a02], [a10, a11, a12], [a20, a21, a22]]",
// switching to "; " between elements and rows as Vector does.
func (p *Printer) Matrix(m isometry.Matrix3) string {
	var nums [3][3]string
	var all []string
	for i, row := range m {
		for j, f := range row {
			nums[i][j] = p.number(f)
			all = append(all, nums[i][j])
		}
	}
	sep := separator(all...)

	rows := make([]string, 3)
	for i := range nums {
		rows[i] = "[" + strings.Join(nums[i][:], sep) + "]"
	}
	return "[" + strings.Join(rows, sep) + "]"
}

func (p *Printer) number(f float64) string {
	return p.p.Sprintf("%v", f)
}

// separator keeps the rendering splittable: a comma inside any number rules
// out ", " between numbers.
func separator(nums ...string) string {
	for _, n := range nums {
		if strings.Contains(n, ",") {
			return "; "
		}
	}
	return ", "
}

// Fprint writes one rendering per line to w. It stops at the first value it
// cannot render.
func (p *Printer) Fprint(w io.Writer, vals ...any) error {
	for _, val := range vals {
		var s string
		switch v := val.(type) {
		case isometry.Vector3:
			s = p.Vector(v)
		case *isometry.Vector3:
			s = p.Vector(*v)
		case isometry.Matrix3:
			s = p.Matrix(v)
		case *isometry.Matrix3:
			s = p.Matrix(*v)
		default:
			return fmt.Errorf("%w: %T", ErrUnsupported, val)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
