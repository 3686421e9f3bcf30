package export

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/headmap/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.SetColor(0, 0, color.RGBA{R: 255, A: 255})
	c.SetColor(3, 3, color.RGBA{G: 255, A: 255})

	svg := CanvasToSVG(c, 4)
	if !strings.HasPrefix(svg, "<?xml") {
		t.Errorf("missing xml header")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#00ff00"`) {
		t.Errorf("cell colors not carried into svg")
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Errorf("unexpected size in %q", svg[:120])
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Errorf("nil canvas should produce nothing")
	}
}
