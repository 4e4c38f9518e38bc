package taprunes

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func newTestCanvas() RecorderCanvas {
	return NewRecorderCanvas(800, 600)
}

// strokePaths returns the paths of every recorded stroke, in order.
func strokePaths(c RecorderCanvas) []*gg.Path {
	rec := c.FinishRecording()
	var out []*gg.Path
	for _, cmd := range rec.Commands() {
		if s, ok := cmd.(recording.StrokePathCommand); ok {
			out = append(out, rec.Resources().GetPath(s.Path))
		}
	}
	return out
}

func countCommands(c RecorderCanvas, typ recording.CommandType) int {
	n := 0
	for _, cmd := range c.FinishRecording().Commands() {
		if cmd.Type() == typ {
			n++
		}
	}
	return n
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func pointsEqual(a, b gg.Point, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

var errCanvasBroken = errors.New("canvas broken")

// brokenCanvas records like RecorderCanvas but fails every stroke.
type brokenCanvas struct {
	RecorderCanvas
	strokes int
}

func (b *brokenCanvas) Stroke() error {
	b.strokes++
	b.RecorderCanvas.Recorder.Stroke()
	return errCanvasBroken
}
