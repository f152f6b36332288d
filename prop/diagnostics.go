package prop

import (
	"io"

	rendertree "github.com/justanotherdot/hedgehog-sub000/render"
	"github.com/justanotherdot/hedgehog-sub000/tree"
)

// WriteCounterexampleSVG draws t — typically the final shrunk tree behind a
// Fail TestResult — as an SVG diagram to w. The core runner never calls
// this itself; callers who want a visual artifact on disk open the file
// and pass its handle in, keeping filesystem access out of Run and Check.
func WriteCounterexampleSVG[T any](w io.Writer, t tree.Tree[T]) {
	rendertree.WriteSVG(w, t)
}
