package app

import (
	"fmt"

	"github.com/goforj/godump"
	"github.com/specialistvlad/rpngrid/internal/workbook"
)

// cellDump is the debug view of a parsed cell.
type cellDump struct {
	Ref        string
	Raw        string
	Tokens     []string
	References []string
	Unresolved int
	Dependents []string
}

// dump writes the parsed workbook to the error writer.
func (a *App) dump(wb *workbook.Workbook) {
	cells := make([]cellDump, 0, wb.Size())
	for _, c := range wb.Cells() {
		d := cellDump{
			Ref:        c.Coord.String(),
			Raw:        c.Raw,
			Unresolved: c.Unresolved(),
		}
		for _, tok := range c.Tokens {
			d.Tokens = append(d.Tokens, fmt.Sprintf("%s:%s", tok.Kind, tok.Text))
		}
		for _, ref := range c.Refs {
			d.References = append(d.References, ref.Ref.String())
		}
		for _, dep := range wb.Dependents(c.Coord) {
			d.Dependents = append(d.Dependents, dep.String())
		}
		cells = append(cells, d)
	}

	fmt.Fprintln(a.errW, godump.DumpStr(cells))
}
