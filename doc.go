// Package farefit fits a transfer-fare pricing model to observed trips.
//
// A fare is modelled as a base fee plus a per-kilometre rate and a per-minute
// rate. The coefficients are estimated by ordinary least squares on a small set
// of observations (distance, duration, price) and the resulting formula is used
// to quote new trips.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/farefit/dataset"
//	    "github.com/YuminosukeSato/farefit/linear"
//	)
//
//	func main() {
//	    s, err := dataset.Default()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := linear.NewRegressor().Fit(s.Observations)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("%.2f\n", model.Predict(20, 30))
//	}
//
// # Packages
//
//   - linear: least-squares regressor, prediction and R²
//   - metrics: R², MAE, RMSE
//   - dataset: embedded reference scenario and YAML loading
//   - pricing: pricing formula, quotes, text report and diagnostic chart
//   - core/parallel: parallel processing utilities
//   - pkg/errors: typed errors with stack traces
//   - pkg/log: structured logging
//
// The farefit command in cmd/farefit prints the full analysis report.
package farefit
