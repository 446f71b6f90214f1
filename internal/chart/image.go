package chart

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/is7098"
)

// ExportDropProfile writes the voltage-drop profile to an image file.
// The format follows the file extension (png, svg, pdf).
func ExportDropProfile(req cable.Request, filename string) error {
	profile, err := DropProfile(req)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Voltage Drop by Cross-Section"
	p.X.Label.Text = "Cross-section (mm²)"
	p.Y.Label.Text = "Voltage drop (%)"

	pts := make(plotter.XYs, len(is7098.Sizes))
	for i, size := range is7098.Sizes {
		pts[i] = plotter.XY{X: size, Y: profile[i]}
	}

	profileLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	profileLine.LineStyle.Width = vg.Points(2)
	profileLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(profileLine)
	p.Legend.Add("drop %", profileLine)

	// Allowed-limit reference line
	limitLine, err := plotter.NewLine(plotter.XYs{
		{X: is7098.Sizes[0], Y: req.MaxDropPercent},
		{X: is7098.Sizes[len(is7098.Sizes)-1], Y: req.MaxDropPercent},
	})
	if err != nil {
		return err
	}
	limitLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limitLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(limitLine)
	p.Legend.Add("limit", limitLine)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
