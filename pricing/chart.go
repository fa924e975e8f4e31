package pricing

import (
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// chartSize is the width and height of the saved chart.
const chartSize = 5 * vg.Inch

// Chart plots observed against predicted prices with the identity line as the
// perfect-fit reference.
func (r *Report) Chart() (*plot.Plot, error) {
	if len(r.Rows) == 0 {
		return nil, errors.NewEmptyDataError("Report.Chart")
	}

	p := plot.New()
	p.Title.Text = r.Scenario + " : prix réel / prix prédit"
	p.X.Label.Text = "Prix réel (" + r.Formula.Symbol() + ")"
	p.Y.Label.Text = "Prix prédit (" + r.Formula.Symbol() + ")"

	pts := make(plotter.XYs, len(r.Rows))
	for i, row := range r.Rows {
		pts[i].X = row.Actual
		pts[i].Y = row.Predicted
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "scatter")
	}
	identity := plotter.NewFunction(func(x float64) float64 { return x })
	identity.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), identity, scatter)
	p.Legend.Add("observations", scatter)
	p.Legend.Add("y = x", identity)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// SaveChart writes the chart to path. The image format follows the file
// extension (png, svg, pdf, ...).
func (r *Report) SaveChart(path string) error {
	return errors.SafeExecute("Report.SaveChart", func() error {
		p, err := r.Chart()
		if err != nil {
			return err
		}
		if err := p.Save(chartSize, chartSize, path); err != nil {
			return errors.Wrapf(err, "save chart %s", path)
		}
		return nil
	})
}
