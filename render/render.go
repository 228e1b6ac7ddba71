// Package render draws a maze and an optional route as an SVG document.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/beka-birhanu/aisle/maze"
)

// NoCell marks an unset Scene position or target.
const NoCell = -1

const (
	defaultSquareSize = 100
	defaultLineWidth  = 6

	positionGlyph  = "🚶"
	targetGlyph    = "⭐"
	highlightGlyph = "🟩"
)

// Scene is what gets drawn on top of the floor plan.
type Scene struct {
	Route    []int // cells in walking order; empty draws no overlay
	Position int   // current cell, NoCell for none
	Target   int   // next cell to reach, NoCell for none
}

// EmptyScene draws the bare floor plan.
func EmptyScene() Scene {
	return Scene{Position: NoCell, Target: NoCell}
}

// Renderer turns mazes into SVG. The zero value is not usable; use New.
type Renderer struct {
	size      int
	lineWidth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSquareSize sets the side of one cell in user units.
func WithSquareSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.size = n
		}
	}
}

// WithLineWidth sets the wall stroke width.
func WithLineWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.lineWidth = n
		}
	}
}

// New returns a Renderer with 100 unit squares and 6 unit walls unless
// overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{size: defaultSquareSize, lineWidth: defaultLineWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) offset() int  { return r.lineWidth / 2 }
func (r *Renderer) margins() int { return 2 * (r.offset() + r.lineWidth) }

// painter draws the role-specific part of a cell at its top-left corner.
type painter func(r *Renderer, parent *etree.Element, x, y int)

var painters = map[maze.Role]painter{
	maze.Wall:     tile("lightgray"),
	maze.Exterior: tile("white"),
	maze.Exit:     glyph("🏁"),
	maze.Enemy:    glyph("👻"),
	maze.Reward:   glyph("⭐"),
}

func tile(fill string) painter {
	return func(r *Renderer, parent *etree.Element, x, y int) {
		rect := parent.CreateElement("rect")
		setAttrs(rect,
			"x", itoa(x), "y", itoa(y),
			"width", itoa(r.size), "height", itoa(r.size),
			"stroke-width", itoa(r.lineWidth),
			"stroke", "none",
			"fill", fill,
		)
	}
}

func glyph(s string) painter {
	return func(r *Renderer, parent *etree.Element, x, y int) {
		r.label(parent, s, x, y)
	}
}

// Render draws m and the scene. Every cell the scene names must exist in m.
func (r *Renderer) Render(m *maze.Maze, sc Scene) (*SVG, error) {
	if err := checkScene(m, sc); err != nil {
		return nil, err
	}

	width := r.margins() + m.Width()*r.size
	height := r.margins() + m.Height()*r.size

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	setAttrs(svg,
		"xmlns", "http://www.w3.org/2000/svg",
		"stroke-linejoin", "round",
		"width", itoa(width),
		"height", itoa(height),
		"viewBox", fmt.Sprintf("0 0 %d %d", width, height),
	)

	arrowMarker(svg)
	bg := svg.CreateElement("rect")
	setAttrs(bg, "width", "100%", "height", "100%", "fill", "white")

	for _, c := range m.Cells() {
		r.drawCell(svg, c, sc)
	}
	if sc.Target != NoCell {
		c, _ := m.Cell(sc.Target)
		x, y := r.topLeft(c)
		hl := text(svg, highlightGlyph, x+r.size/2, y+r.size/2+8)
		setAttrs(hl,
			"fill", "green",
			"font-size", fmt.Sprintf("%dpx", r.size),
			"text-anchor", "middle",
			"dominant-baseline", "middle",
		)
	}
	for _, reg := range m.Regions() {
		r.drawRegion(svg, reg.Name, m.Slice(reg.From, reg.To))
	}
	if len(sc.Route) > 0 {
		r.drawRoute(svg, m, sc.Route)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return nil, fmt.Errorf("writing svg: %w", err)
	}
	return &SVG{xml: out, width: width, height: height}, nil
}

func checkScene(m *maze.Maze, sc Scene) error {
	for _, i := range sc.Route {
		if !m.Contains(i) {
			return fmt.Errorf("route: %w: %d", maze.ErrCellNotFound, i)
		}
	}
	if sc.Position != NoCell && !m.Contains(sc.Position) {
		return fmt.Errorf("position: %w: %d", maze.ErrCellNotFound, sc.Position)
	}
	if sc.Target != NoCell && !m.Contains(sc.Target) {
		return fmt.Errorf("target: %w: %d", maze.ErrCellNotFound, sc.Target)
	}
	return nil
}

func (r *Renderer) drawCell(parent *etree.Element, c maze.Cell, sc Scene) {
	x, y := r.topLeft(c)
	if paint, ok := painters[c.Role]; ok {
		paint(r, parent, x, y)
	}
	if c.Index == sc.Position {
		r.label(parent, positionGlyph, x, y)
	}
	if c.Index == sc.Target {
		r.label(parent, targetGlyph, x, y)
	}
	if d := borderPath(c.Border, x, y, r.size); d != "" {
		p := parent.CreateElement("path")
		setAttrs(p,
			"d", d,
			"stroke-width", itoa(r.lineWidth),
			"stroke", "black",
			"fill", "none",
		)
	}
}

// borderPath draws one segment per wall bit that is set.
func borderPath(b maze.Border, x, y, size int) string {
	var segs []string
	seg := func(x1, y1, x2, y2 int) {
		segs = append(segs, fmt.Sprintf("M %d,%d L %d,%d", x1, y1, x2, y2))
	}
	if b.Has(maze.Top) {
		seg(x, y, x+size, y)
	}
	if b.Has(maze.Bottom) {
		seg(x, y+size, x+size, y+size)
	}
	if b.Has(maze.Left) {
		seg(x, y, x, y+size)
	}
	if b.Has(maze.Right) {
		seg(x+size, y, x+size, y+size)
	}
	return strings.Join(segs, " ")
}

// drawRegion centres the region name on the average position of its cells.
func (r *Renderer) drawRegion(parent *etree.Element, name string, cells []maze.Cell) {
	if len(cells) == 0 {
		return
	}
	var rows, cols float64
	for _, c := range cells {
		rows += float64(c.Row)
		cols += float64(c.Column)
	}
	n := float64(len(cells))
	half := float64(r.offset() + r.size/2)
	x := cols/n*float64(r.size) + half
	y := rows/n*float64(r.size) + half

	t := parent.CreateElement("text")
	setAttrs(t,
		"x", ftoa(x), "y", ftoa(y),
		"font-size", fmt.Sprintf("%dpx", r.size/2),
		"text-anchor", "middle",
		"dominant-baseline", "middle",
		"fill", "black",
		"font-weight", "bold",
	)
	t.SetText(name)
}

func (r *Renderer) drawRoute(parent *etree.Element, m *maze.Maze, route []int) {
	points := make([]string, 0, len(route))
	for _, i := range route {
		c, _ := m.Cell(i)
		x, y := r.topLeft(c)
		points = append(points, fmt.Sprintf("%d,%d", x+r.size/2, y+r.size/2))
	}
	pl := parent.CreateElement("polyline")
	setAttrs(pl,
		"points", strings.Join(points, " "),
		"stroke-width", itoa(r.lineWidth*2),
		"stroke-opacity", "50%",
		"stroke", "red",
		"fill", "none",
		"marker-end", "url(#arrow)",
	)
}

func (r *Renderer) topLeft(c maze.Cell) (int, int) {
	return c.Column*r.size + r.offset(), c.Row*r.size + r.offset()
}

// label draws a glyph centred in the cell whose top-left corner is (x, y).
func (r *Renderer) label(parent *etree.Element, s string, x, y int) {
	half := r.size / 2
	t := text(parent, s, x+half, y+half)
	setAttrs(t,
		"font-size", fmt.Sprintf("%dpx", half),
		"text-anchor", "middle",
		"dominant-baseline", "middle",
	)
}

func arrowMarker(parent *etree.Element) {
	marker := parent.CreateElement("defs").CreateElement("marker")
	setAttrs(marker,
		"id", "arrow",
		"viewBox", "0 0 20 20",
		"refX", "2",
		"refY", "5",
		"markerUnits", "strokeWidth",
		"markerWidth", "10",
		"markerHeight", "10",
		"orient", "auto",
	)
	p := marker.CreateElement("path")
	setAttrs(p,
		"d", "M 0,0 L 10,5 L 0,10 2,5 z",
		"fill", "red",
		"fill-opacity", "50%",
	)
}

func text(parent *etree.Element, s string, x, y int) *etree.Element {
	t := parent.CreateElement("text")
	setAttrs(t, "x", itoa(x), "y", itoa(y))
	t.SetText(s)
	return t
}

func setAttrs(el *etree.Element, kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		el.CreateAttr(kv[i], kv[i+1])
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
