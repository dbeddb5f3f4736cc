// Package document defines the renderer-agnostic document description and
// the builder that maps an Invoice onto it.
//
// A Definition is an ordered tree of content nodes (text, stacks, columns,
// tables, images) carrying layout hints only: alignment, margins, relative
// column widths, table border styles. A rendering backend consumes the tree
// and decides actual geometry.
package document

// Definition is a complete document: ordered top-level content blocks.
type Definition struct {
	Content []Node
}

// Node is one content block. Concrete kinds: Text, Image, Stack, Columns,
// Table.
type Node interface {
	node()
}

// Alignment is horizontal text alignment within the enclosing box.
// The zero value inherits from the enclosing stack or defaults to left.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Margin is spacing around a block: left, top, right, bottom.
type Margin [4]float64

// Bottom returns the bottom component.
func (m Margin) Bottom() float64 { return m[3] }

// Top returns the top component.
func (m Margin) Top() float64 { return m[1] }

// Text is a leaf text block.
type Text struct {
	Value     string
	FontSize  float64 // 0 means the renderer's default size
	Alignment Alignment
	Margin    Margin
}

// Image is an embedded image leaf. DataURI holds the full embeddable
// representation; MIME is the detected media type.
type Image struct {
	DataURI string
	MIME    string
	Margin  Margin
}

// Stack lays its items out vertically. Alignment, when set, is the default
// for items that carry none of their own.
type Stack struct {
	Items     []Node
	Alignment Alignment
}

// Column is one column of a Columns block. Width is a width spec: "" or
// "*" for a share of the remaining space, or a percentage like "63%".
type Column struct {
	Width   string
	Content Node
}

// Columns lays its columns out side by side.
type Columns struct {
	Columns []Column
	Gap     float64
	Margin  Margin
}

// Cell is one table cell.
type Cell struct {
	Text      string
	Alignment Alignment
}

// LayoutStyle selects a table border treatment.
type LayoutStyle string

const (
	// LayoutLightHorizontalLines draws thin horizontal separators only.
	LayoutLightHorizontalLines LayoutStyle = "lightHorizontalLines"
	// LayoutNoBorders draws no borders at all.
	LayoutNoBorders LayoutStyle = "noBorders"
)

// Table is a grid of cells. Widths uses the same specs as Column.Width and
// must match the body's column count. The first HeaderRows rows are header.
type Table struct {
	Widths     []string
	HeaderRows int
	Body       [][]Cell
	Layout     LayoutStyle
	Margin     Margin
}

func (Text) node()    {}
func (Image) node()   {}
func (Stack) node()   {}
func (Columns) node() {}
func (Table) node()   {}
