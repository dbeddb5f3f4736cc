package render

import (
	"context"
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
)

const (
	gridSize   = 12
	lineHeight = 6.0  // mm per text line at default size
	logoHeight = 22.0 // mm reserved for the logo block
	rowPadding = 1.0
	// Margins in the description use the renderer-agnostic unit (points);
	// maroto positions in millimetres.
	mmPerPoint = 0.3528
)

var lineGray = &props.Color{Red: 180, Green: 180, Blue: 180}

// spacerRow is an empty row used for vertical spacing between blocks.
func spacerRow(height float64) core.Row {
	return row.New(height).Add(col.New(gridSize))
}

// MarotoRenderer renders a document definition to PDF via Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer constructs the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render produces the PDF bytes for def.
func (r *MarotoRenderer) Render(ctx context.Context, def document.Definition) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewRenderError("render", "cancelled", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		Build()

	m := maroto.New(cfg)
	for _, node := range def.Content {
		rows, err := nodeRows(node, document.AlignLeft)
		if err != nil {
			return nil, err
		}
		m.AddRows(rows...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, model.NewRenderError("generate", "document generation failed", err)
	}
	return doc.GetBytes(), nil
}

// nodeRows maps one content block onto maroto rows.
func nodeRows(node document.Node, inherited document.Alignment) ([]core.Row, error) {
	switch v := node.(type) {
	case document.Text:
		comps, h, err := stackComponents([]document.Node{v}, inherited)
		if err != nil {
			return nil, err
		}
		return []core.Row{row.New(h).Add(col.New(gridSize).Add(comps...))}, nil

	case document.Image:
		comps, h, err := stackComponents([]document.Node{v}, inherited)
		if err != nil {
			return nil, err
		}
		return []core.Row{row.New(h).Add(col.New(gridSize).Add(comps...))}, nil

	case document.Stack:
		a := v.Alignment
		if a == "" {
			a = inherited
		}
		var rows []core.Row
		for _, item := range v.Items {
			sub, err := nodeRows(item, a)
			if err != nil {
				return nil, err
			}
			rows = append(rows, sub...)
		}
		return rows, nil

	case document.Columns:
		return columnsRows(v, inherited)

	case document.Table:
		return tableRows(v), nil

	default:
		return nil, model.NewRenderError("render", "unsupported content block", nil)
	}
}

// columnsRows renders side-by-side columns as a single row whose cols place
// their stacked content with vertical offsets.
func columnsRows(v document.Columns, inherited document.Alignment) ([]core.Row, error) {
	widths := gridWidths(columnWidthSpecs(v))

	cols := make([]core.Col, 0, len(v.Columns))
	maxH := 0.0
	for i, c := range v.Columns {
		items, a := columnContent(c, inherited)
		comps, h, err := stackComponents(items, a)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col.New(widths[i]).Add(comps...))
		if h > maxH {
			maxH = h
		}
	}

	rows := []core.Row{row.New(maxH + rowPadding).Add(cols...)}
	if b := v.Margin.Bottom(); b > 0 {
		rows = append(rows, spacerRow(b*mmPerPoint))
	}
	return rows, nil
}

// stackComponents flattens stacked nodes into positioned components and
// reports the consumed height.
func stackComponents(items []document.Node, inherited document.Alignment) ([]core.Component, float64, error) {
	return stackComponentsAt(items, inherited, 0)
}

// stackComponentsAt places stacked nodes starting at the given vertical
// offset. Maroto positions components absolutely within a col, so nested
// stacks flatten into one component list.
func stackComponentsAt(items []document.Node, inherited document.Alignment, start float64) ([]core.Component, float64, error) {
	var comps []core.Component
	top := start

	for _, n := range items {
		switch v := n.(type) {
		case document.Text:
			top += v.Margin.Top() * mmPerPoint
			h := lineHeight
			if v.FontSize > 0 {
				h = v.FontSize * 0.55
			}
			comps = append(comps, text.New(v.Value, props.Text{
				Top:   top,
				Size:  v.FontSize,
				Align: alignOf(v.Alignment, inherited),
			}))
			top += h + v.Margin.Bottom()*mmPerPoint

		case document.Image:
			data, ext, err := dataURIBytes(v.DataURI, v.MIME)
			if err != nil {
				return nil, 0, err
			}
			comps = append(comps, image.NewFromBytes(data, ext, props.Rect{
				Top:     top,
				Percent: 60,
			}))
			top += logoHeight

		case document.Stack:
			a := v.Alignment
			if a == "" {
				a = inherited
			}
			sub, end, err := stackComponentsAt(v.Items, a, top)
			if err != nil {
				return nil, 0, err
			}
			comps = append(comps, sub...)
			top = end

		case document.Columns:
			// A nested label/value layout inside a column: render each
			// paired line with staggered right padding, which keeps two
			// right-aligned runs apart inside one grid col.
			lines := pairedLines(v)
			for _, ln := range lines {
				pad := float64(len(ln)-1) * 26.0
				for _, cell := range ln {
					comps = append(comps, text.New(cell, props.Text{
						Top:   top,
						Align: align.Right,
						Right: pad + 1,
					}))
					pad -= 26.0
				}
				top += lineHeight
			}
			if b := v.Margin.Bottom(); b > 0 {
				top += b * mmPerPoint
			}

		default:
			return nil, 0, model.NewRenderError("render", "unsupported block inside a column", nil)
		}
	}
	return comps, top, nil
}

// tableRows renders a table block, one maroto row per body row.
func tableRows(t document.Table) []core.Row {
	widths := gridWidths(t.Widths)

	var rows []core.Row
	for ri, body := range t.Body {
		header := ri < t.HeaderRows
		cols := make([]core.Col, 0, len(body))
		for ci, cell := range body {
			style := fontstyle.Normal
			if header {
				style = fontstyle.Bold
			}
			cols = append(cols, col.New(widths[ci]).Add(text.New(cell.Text, props.Text{
				Top:   rowPadding,
				Size:  9,
				Align: alignOf(cell.Alignment, document.AlignLeft),
				Style: style,
			})))
		}
		rows = append(rows, row.New(lineHeight+rowPadding).Add(cols...))

		if t.Layout == document.LayoutLightHorizontalLines {
			rows = append(rows, line.NewRow(1, props.Line{Color: lineGray, Thickness: 0.3}))
		}
	}

	if b := t.Margin.Bottom(); b > 0 {
		rows = append(rows, spacerRow(b*mmPerPoint))
	}
	return rows
}

// columnContent unwraps a column's content into stackable items.
func columnContent(c document.Column, inherited document.Alignment) ([]document.Node, document.Alignment) {
	if s, ok := c.Content.(document.Stack); ok {
		a := s.Alignment
		if a == "" {
			a = inherited
		}
		return s.Items, a
	}
	return []document.Node{c.Content}, inherited
}

// pairedLines zips the text lines of a nested Columns block: line i holds
// the i-th text of every column that has one.
func pairedLines(v document.Columns) [][]string {
	perCol := make([][]string, len(v.Columns))
	maxLen := 0
	for i, c := range v.Columns {
		items, _ := columnContent(c, "")
		for _, n := range items {
			if t, ok := n.(document.Text); ok {
				perCol[i] = append(perCol[i], t.Value)
			}
		}
		if len(perCol[i]) > maxLen {
			maxLen = len(perCol[i])
		}
	}

	lines := make([][]string, 0, maxLen)
	for li := 0; li < maxLen; li++ {
		var ln []string
		for _, colTexts := range perCol {
			if li < len(colTexts) {
				ln = append(ln, colTexts[li])
			}
		}
		lines = append(lines, ln)
	}
	return lines
}

// alignOf resolves a node's alignment against the inherited default.
func alignOf(a, inherited document.Alignment) align.Type {
	if a == "" {
		a = inherited
	}
	if a == document.AlignRight {
		return align.Right
	}
	return align.Left
}

func columnWidthSpecs(v document.Columns) []string {
	specs := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		specs[i] = c.Width
	}
	return specs
}

// gridWidths maps width specs onto maroto's 12-col grid: percentages get a
// proportional share (at least 1), stars split the remainder.
func gridWidths(specs []string) []int {
	widths := make([]int, len(specs))
	remaining := gridSize
	var stars []int

	for i, spec := range specs {
		if pct, ok := parsePercent(spec); ok {
			w := int(math.Round(pct * gridSize / 100))
			if w < 1 {
				w = 1
			}
			widths[i] = w
			remaining -= w
		} else {
			stars = append(stars, i)
		}
	}

	if len(stars) > 0 {
		if remaining < len(stars) {
			remaining = len(stars)
		}
		share := remaining / len(stars)
		extra := remaining % len(stars)
		for _, i := range stars {
			widths[i] = share
			if extra > 0 {
				widths[i]++
				extra--
			}
		}
	}
	return widths
}

func parsePercent(spec string) (float64, bool) {
	if !strings.HasSuffix(spec, "%") {
		return 0, false
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(spec, "%"), 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

// dataURIBytes recovers raw image bytes from an embeddable data URI.
func dataURIBytes(uri, mime string) ([]byte, extension.Type, error) {
	i := strings.Index(uri, ",")
	if i < 0 || !strings.Contains(uri[:i], ";base64") {
		return nil, "", model.NewRenderError("render", "malformed image data URI", nil)
	}
	data, err := base64.StdEncoding.DecodeString(uri[i+1:])
	if err != nil {
		return nil, "", model.NewRenderError("render", "malformed image data URI", err)
	}

	ext := extension.Jpg
	if strings.Contains(mime, "png") {
		ext = extension.Png
	}
	return data, ext, nil
}
