// Package pricing turns a fitted regression into a fare formula, quotes
// example trips and renders the analysis report.
package pricing

import (
	"fmt"

	"github.com/YuminosukeSato/farefit/linear"
	"github.com/shopspring/decimal"
)

// Formula is a fitted fare model expressed in a currency.
type Formula struct {
	Model    linear.FittedModel
	Currency string
}

// BaseFee is the fixed part of the fare.
func (f Formula) BaseFee() float64 { return f.Model.Intercept }

// PerKm is the price per kilometre.
func (f Formula) PerKm() float64 { return f.Model.CoefDistance }

// PerMinute is the price per minute.
func (f Formula) PerMinute() float64 { return f.Model.CoefTime }

// Quote prices a trip, rounded half away from zero to the cent.
func (f Formula) Quote(distance, minutes float64) decimal.Decimal {
	return decimal.NewFromFloat(f.Model.Predict(distance, minutes)).Round(2)
}

// String renders the formula as a human-readable equation.
func (f Formula) String() string {
	return fmt.Sprintf("Prix = %.2f + (%.2f × distance_km) + (%.2f × temps_min)",
		f.BaseFee(), f.PerKm(), f.PerMinute())
}

// Symbol returns the display symbol of the formula currency.
func (f Formula) Symbol() string {
	return currencySymbol(f.Currency)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR", "":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code
	}
}
