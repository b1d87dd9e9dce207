package render

import (
	"io"
	"math"

	"github.com/specialistvlad/rpngrid/internal/cell"
	"github.com/specialistvlad/rpngrid/internal/workbook"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var cellType = cty.Object(map[string]cty.Type{
	"ref":       cty.String,
	"row":       cty.Number,
	"col":       cty.Number,
	"raw":       cty.String,
	"evaluated": cty.Bool,
	"value":     cty.Number,
	"text":      cty.String,
	"circular":  cty.Bool,
})

// JSON writes the workbook as a single JSON document. Values that are not
// finite are reported as null, with their text form kept in "text".
func JSON(w io.Writer, wb *workbook.Workbook) error {
	doc := Value(wb)
	buf, err := ctyjson.Marshal(doc, doc.Type())
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

// Value converts the workbook outcome to a cty.Value.
func Value(wb *workbook.Workbook) cty.Value {
	cells := wb.Cells()

	list := cty.ListValEmpty(cellType)
	if len(cells) > 0 {
		vals := make([]cty.Value, 0, len(cells))
		for _, c := range cells {
			vals = append(vals, cellValue(wb, c))
		}
		list = cty.ListVal(vals)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"width":    cty.NumberIntVal(int64(wb.Width)),
		"height":   cty.NumberIntVal(int64(wb.Height)),
		"circular": cty.BoolVal(wb.IsCircular()),
		"cells":    list,
	})
}

func cellValue(wb *workbook.Workbook, c *cell.Cell) cty.Value {
	v, ok := c.Value()

	value := cty.NullVal(cty.Number)
	if ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		value = cty.NumberFloatVal(v)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"ref":       cty.StringVal(c.Coord.String()),
		"row":       cty.NumberIntVal(int64(c.Coord.Row)),
		"col":       cty.NumberIntVal(int64(c.Coord.Col)),
		"raw":       cty.StringVal(c.Raw),
		"evaluated": cty.BoolVal(ok),
		"value":     value,
		"text":      cty.StringVal(Result(wb, c)),
		"circular":  cty.BoolVal(!ok && wb.IsReferenced(c.Coord)),
	})
}
