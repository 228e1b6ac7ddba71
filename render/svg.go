package render

import "fmt"

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>SVG Preview</title>
</head>
<body>
%s
</body>
</html>`

// SVG is a rendered, self-contained document.
type SVG struct {
	xml    string
	width  int
	height int
}

// XML returns the <svg> markup.
func (s *SVG) XML() string {
	return s.xml
}

// HTML wraps the markup in a standalone preview page.
func (s *SVG) HTML() string {
	return fmt.Sprintf(htmlPage, s.xml)
}

// Width returns the canvas width in user units.
func (s *SVG) Width() int {
	return s.width
}

// Height returns the canvas height in user units.
func (s *SVG) Height() int {
	return s.height
}
