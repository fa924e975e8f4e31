package pricing

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/farefit/dataset"
	"github.com/YuminosukeSato/farefit/linear"
	"github.com/YuminosukeSato/farefit/metrics"
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"github.com/YuminosukeSato/farefit/pkg/log"
	"github.com/shopspring/decimal"
)

// Row compares one training observation with its prediction.
type Row struct {
	Distance  float64
	Time      float64
	Actual    float64
	Predicted float64
	AbsError  float64
}

// Quote is the price of one example trip.
type Quote struct {
	dataset.Example
	Price decimal.Decimal
}

// Report holds everything printed for one scenario.
type Report struct {
	Scenario string
	Formula  Formula
	Rows     []Row
	R2       float64
	MAE      float64
	RMSE     float64
	Quotes   []Quote
}

// Fitter produces a fare model from observations. *linear.Regressor satisfies it.
type Fitter interface {
	Fit(observations []linear.Observation) (linear.FittedModel, error)
}

// Analyze fits the scenario with r and builds its report.
func Analyze(s *dataset.Scenario, r Fitter) (*Report, error) {
	logger := log.GetLogger().With(
		log.ComponentKey, "pricing",
		log.OperationKey, log.OperationReport,
		log.ScenarioKey, s.Name,
	)

	model, err := r.Fit(s.Observations)
	if err != nil {
		return nil, err
	}

	report, err := NewReport(s, model)
	if err != nil {
		return nil, err
	}

	logger.Info("Pricing formula fitted",
		log.SamplesKey, len(s.Observations),
		log.R2ScoreKey, report.R2,
		log.MAEKey, report.MAE,
	)
	return report, nil
}

// NewReport evaluates model against the scenario. It fails with
// ConstantTargetError when every observed price is identical.
func NewReport(s *dataset.Scenario, model linear.FittedModel) (*Report, error) {
	r2, err := linear.RSquared(model, s.Observations)
	if err != nil {
		return nil, errors.Wrap(err, "report")
	}

	preds := linear.PredictAll(model, s.Observations)
	actual := make([]float64, len(s.Observations))
	rows := make([]Row, len(s.Observations))
	for i, o := range s.Observations {
		actual[i] = o.Price
		rows[i] = Row{
			Distance:  o.Distance,
			Time:      o.Time,
			Actual:    o.Price,
			Predicted: preds[i],
			AbsError:  math.Abs(o.Price - preds[i]),
		}
	}

	mae, err := metrics.MAE(actual, preds)
	if err != nil {
		return nil, err
	}
	rmse, err := metrics.RMSE(actual, preds)
	if err != nil {
		return nil, err
	}

	formula := Formula{Model: model, Currency: s.Currency}
	quotes := make([]Quote, len(s.Examples))
	for i, e := range s.Examples {
		quotes[i] = Quote{Example: e, Price: formula.Quote(e.Distance, e.Time)}
	}

	return &Report{
		Scenario: s.Name,
		Formula:  formula,
		Rows:     rows,
		R2:       r2,
		MAE:      mae,
		RMSE:     rmse,
		Quotes:   quotes,
	}, nil
}

var banner = strings.Repeat("=", 60)

// Render writes the plain-text report.
func (r *Report) Render(w io.Writer) error {
	sym := r.Formula.Symbol()
	p := &printer{w: w}

	p.section("FORMULE DE " + strings.ToUpper(r.Scenario))
	p.printf("\nPrix de base : %.2f %s\n", r.Formula.BaseFee(), sym)
	p.printf("Prix par km : %.2f %s/km\n", r.Formula.PerKm(), sym)
	p.printf("Prix par minute : %.2f %s/min\n", r.Formula.PerMinute(), sym)

	p.printf("\n")
	p.section("FORMULE COMPLÈTE :")
	p.printf("%s\n", r.Formula)

	p.printf("\n")
	p.section("VÉRIFICATION DES PRÉDICTIONS")
	p.printf("%-12s %-12s %-15s %-15s %-10s\n", "Distance", "Temps", "Prix réel", "Prix prédit", "Écart")
	p.printf("%s\n", strings.Repeat("-", 70))
	for _, row := range r.Rows {
		p.printf("%-12.1f %-12s %-15.2f %-15.2f %-10.2f\n",
			row.Distance, formatNumber(row.Time), row.Actual, row.Predicted, row.AbsError)
	}

	p.printf("\n%s\n", banner)
	p.printf("Précision du modèle (R²) : %.4f\n", r.R2)
	p.printf("(1.0000 = parfait, >0.95 = excellent)\n")
	p.printf("Écart moyen : %.2f %s (RMSE %.2f %s)\n", r.MAE, sym, r.RMSE, sym)
	p.printf("%s\n", banner)

	if len(r.Quotes) > 0 {
		p.printf("\n")
		p.section("EXEMPLES DE CALCUL")
		for _, q := range r.Quotes {
			p.printf("\n%s:\n", q.Description)
			p.printf("  Distance: %s km, Temps: %s min\n", formatNumber(q.Distance), formatNumber(q.Time))
			p.printf("  Prix estimé: %s %s\n", q.Price.StringFixed(2), sym)
		}
	}
	return p.err
}

// printer keeps the first write error so Render can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	p.printf("%s\n%s\n%s\n", banner, title, banner)
}

// formatNumber prints whole numbers without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
