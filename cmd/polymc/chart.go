package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jmlaurent/polymc/integrate"
	"github.com/jmlaurent/polymc/poly"
)

// renderChart writes a PNG with the polynomial curve, the bounding rectangle
// and the three classes of samples, each with its own marker color.
func renderChart(path string, p poly.Polynomial, res integrate.Result) error {

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("P(x) = %s", p)
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "y"

	rect := res.Rect

	curve := plotter.NewFunction(p.Evaluate)
	curve.Color = color.RGBA{B: 200, A: 255}
	curve.Width = vg.Points(1.5)
	curve.Samples = 500
	plt.Add(curve)
	plt.Legend.Add("P(x)", curve)

	outline, err := plotter.NewLine(plotter.XYs{
		{X: rect.A, Y: rect.YMin},
		{X: rect.B, Y: rect.YMin},
		{X: rect.B, Y: rect.YMax},
		{X: rect.A, Y: rect.YMax},
		{X: rect.A, Y: rect.YMin},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	outline.Color = color.Gray{Y: 100}
	plt.Add(outline)
	plt.Legend.Add("bounding rectangle", outline)

	for _, class := range []struct {
		name   string
		points []integrate.Point
		color  color.RGBA
	}{
		{"positive", res.Positive, color.RGBA{G: 180, A: 255}},
		{"negative", res.Negative, color.RGBA{R: 200, A: 255}},
		{"outside", res.Outside, color.RGBA{R: 160, G: 160, B: 160, A: 255}},
	} {
		if len(class.points) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(toXYs(class.points))
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = class.color
		scatter.GlyphStyle.Radius = vg.Points(1)
		plt.Add(scatter)
		plt.Legend.Add(class.name, scatter)
	}

	// Frame the rectangle with a small margin.
	mx, my := 0.05*rect.Width(), 0.05*rect.Height()
	plt.X.Min, plt.X.Max = rect.A-mx, rect.B+mx
	plt.Y.Min, plt.Y.Max = rect.YMin-my, rect.YMax+my

	return plt.Save(8*vg.Inch, 5*vg.Inch, path)
}

func toXYs(points []integrate.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
