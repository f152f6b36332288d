package render

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"
	gotree "github.com/justanotherdot/hedgehog-sub000/tree"
)

const (
	svgNodeRadius  = 18
	svgLevelHeight = 70
	svgLeafGap     = 60
)

// WriteSVG draws a shrink tree as an SVG diagram, one circle per node
// labelled with its value, laid out level by level. It forces the whole
// tree, so reserve it for already-shrunk counterexample trees rather than
// a generator's raw, potentially unbounded output.
func WriteSVG[T any](w io.Writer, t gotree.Tree[T]) {
	leafCount := countLeaves(t)
	if leafCount == 0 {
		leafCount = 1
	}
	width := leafCount*svgLeafGap + svgLeafGap
	height := (t.Depth()+2)*svgLevelHeight + svgLevelHeight

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	next := 0
	drawNode(canvas, t, 0, &next, width)
}

func countLeaves[T any](t gotree.Tree[T]) int {
	children := t.Children()
	if len(children) == 0 {
		return 1
	}
	total := 0
	for _, c := range children {
		total += countLeaves(c)
	}
	return total
}

func drawNode[T any](canvas *svg.SVG, t gotree.Tree[T], depth int, next *int, width int) (x int) {
	children := t.Children()
	y := depth*svgLevelHeight + svgLevelHeight

	if len(children) == 0 {
		x = (*next)*svgLeafGap + svgLeafGap
		*next++
	} else {
		childX := make([]int, len(children))
		for i, c := range children {
			childX[i] = drawNode(canvas, c, depth+1, next, width)
		}
		sum := 0
		for _, cx := range childX {
			sum += cx
		}
		x = sum / len(childX)

		cy := (depth+1)*svgLevelHeight + svgLevelHeight
		for _, cx := range childX {
			canvas.Line(x, y, cx, cy, "stroke:#888;stroke-width:1")
		}
	}

	canvas.Circle(x, y, svgNodeRadius, "fill:#eef;stroke:#336")
	canvas.Text(x, y+4, fmt.Sprintf("%v", t.Value), "text-anchor:middle;font-size:11px")
	return x
}
