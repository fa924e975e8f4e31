package metrics

import (
	"math"

	"github.com/YuminosukeSato/farefit/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// checkPair は入力の共通検証を行う
func checkPair(op string, yTrue, yPred []float64) error {
	n := len(yTrue)
	if n == 0 {
		return errors.NewEmptyDataError(op)
	}
	if len(yPred) != n {
		return errors.NewDimensionError(op, n, len(yPred))
	}
	return nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("RMSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// RMSE = ||yTrue - yPred||₂ / √n
	return floats.Distance(yTrue, yPred, 2) / math.Sqrt(float64(len(yTrue))), nil
}

// R2Score は決定係数（R²）を計算する
// 目的変数の分散が0の場合はConstantTargetErrorを返す
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean := stat.Mean(yTrue, nil)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := range yTrue {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if tss == 0 {
		return 0, errors.NewConstantTargetError("R2Score", yTrue[0])
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}
