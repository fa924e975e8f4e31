package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/farefit/pkg/errors"
)

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3},
			yPred: []float64{1, 2, 3},
			want:  0,
		},
		{
			name:  "simple case",
			yTrue: []float64{10, 20, 30},
			yPred: []float64{12, 18, 33},
			want:  7.0 / 3.0, // (2 + 2 + 3) / 3
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1, 2, 3},
			yPred:   []float64{1, 2},
			wantErr: true,
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MAE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{1, 2, 3, 4}, []float64{1.5, 2.5, 2.5, 3.5})
	if err != nil {
		t.Fatal(err)
	}
	// MSE = 0.25
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("RMSE() = %v, want 0.5", got)
	}

	if _, err := RMSE(nil, nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("RMSE(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4, 5},
			yPred: []float64{1, 2, 3, 4, 5},
			want:  1.0,
		},
		{
			name:  "mean prediction",
			yTrue: []float64{1, 2, 3, 4, 5},
			yPred: []float64{3, 3, 3, 3, 3},
			want:  0.0,
		},
		{
			name:  "worse than mean",
			yTrue: []float64{1, 2, 3},
			yPred: []float64{3, 2, 1},
			want:  -3.0, // RSS = 8, TSS = 2
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1, 2},
			yPred:   []float64{1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2ScoreConstantTarget(t *testing.T) {
	_, err := R2Score([]float64{7, 7, 7}, []float64{7, 6, 8})

	var ctErr *errors.ConstantTargetError
	if !errors.As(err, &ctErr) {
		t.Fatalf("expected ConstantTargetError, got %v", err)
	}
	if ctErr.Value != 7 {
		t.Errorf("Value = %v, want 7", ctErr.Value)
	}
}
