package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDegenerateFitError(t *testing.T) {
	err := NewDegenerateFitError("Regressor.Fit", 2, 3, 2)

	want := "farefit: Regressor.Fit: degenerate fit: design matrix has rank 2, need 3 (samples: 2)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var degErr *DegenerateFitError
	if !As(err, &degErr) {
		t.Fatal("Error should be castable to *DegenerateFitError")
	}
	if degErr.Rank != 2 || degErr.Params != 3 {
		t.Errorf("unexpected fields: %+v", degErr)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestNewConstantTargetError(t *testing.T) {
	err := NewConstantTargetError("RSquared", 4.5)

	if !strings.Contains(err.Error(), "total sum of squares is zero") {
		t.Errorf("Error() = %v", err.Error())
	}

	var ctErr *ConstantTargetError
	if !As(err, &ctErr) {
		t.Fatal("Error should be castable to *ConstantTargetError")
	}
	if ctErr.Value != 4.5 {
		t.Errorf("Value = %v, want 4.5", ctErr.Value)
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("R2Score", 6, 5)

	want := "farefit: R2Score: length mismatch. Expected 6, got 5"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewEmptyDataError(t *testing.T) {
	err := NewEmptyDataError("Regressor.Fit")

	if !Is(err, ErrEmptyData) {
		t.Error("Expected Is(err, ErrEmptyData) to be true")
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Fatal("Error should be castable to *ValueError")
	}
	if valErr.Op != "Regressor.Fit" {
		t.Errorf("Op = %v", valErr.Op)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("observations[2].distance", "must be non-negative", -1.5)

	want := "farefit: validation failed for parameter 'observations[2].distance': must be non-negative (got: -1.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestCheckFinite(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"all finite", []float64{1, -2, 0}, false},
		{"empty", nil, false},
		{"nan", []float64{1, math.NaN()}, true},
		{"inf", []float64{math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFinite("test", tt.values...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFinite() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var numErr *NumericalInstabilityError
				if !As(err, &numErr) {
					t.Errorf("Expected NumericalInstabilityError, got %T", err)
				}
			}
		})
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	degErr := &DegenerateFitError{Op: "Regressor.Fit", Rank: 1, Params: 3, Samples: 1}
	logger.Error().Object("error", degErr).Msg("fit failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	fields, ok := entry["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("error field missing: %s", buf.String())
	}
	if fields["type"] != "DegenerateFitError" || fields["rank"] != float64(1) {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestWrapfAndIs(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d rows", "Fit", 3)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in Fit: expected 3 rows"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestStacktrace(t *testing.T) {
	err := NewDegenerateFitError("Regressor.Fit", 1, 3, 1)
	if st := Stacktrace(err); !strings.Contains(st, "errors_test.go") {
		t.Errorf("Stacktrace() should mention the calling file, got %q", st)
	}

	// ラップされても内側のスタックトレースを取得できる
	wrapped := fmt.Errorf("outer: %w", err)
	if Stacktrace(wrapped) == "" {
		t.Error("Expected stack trace through a fmt wrapper")
	}

	if st := Stacktrace(fmt.Errorf("plain")); st != "" {
		t.Errorf("Expected empty stack trace for plain error, got %q", st)
	}
}
