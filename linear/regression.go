package linear

import (
	"time"

	"github.com/YuminosukeSato/farefit/core/parallel"
	"github.com/YuminosukeSato/farefit/metrics"
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"github.com/YuminosukeSato/farefit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// numParams は推定するパラメータ数（切片、距離係数、時間係数）
const numParams = 3

// defaultParallelThreshold 以下の行数では逐次処理を使用する
const defaultParallelThreshold = 1000

// Observation は1件の学習データ（距離、所要時間、価格）
type Observation struct {
	Distance float64 // 距離（km）
	Time     float64 // 所要時間（分）
	Price    float64 // 実際の価格
}

// FittedModel は学習済みの料金モデル
// Fit が一度だけ生成し、以降は読み取り専用
type FittedModel struct {
	Intercept    float64 // 切片（基本料金）
	CoefDistance float64 // 距離1単位あたりの係数
	CoefTime     float64 // 時間1単位あたりの係数
}

// Predict は intercept + coefDistance·distance + coefTime·minutes を返す
// 学習範囲外の入力にも警告なしで外挿する
func (m FittedModel) Predict(distance, minutes float64) float64 {
	return m.Intercept + m.CoefDistance*distance + m.CoefTime*minutes
}

// Coefficients は [切片, 距離係数, 時間係数] を返す
func (m FittedModel) Coefficients() []float64 {
	return []float64{m.Intercept, m.CoefDistance, m.CoefTime}
}

// Predict は学習済みモデルで1件の予測を行う
func Predict(model FittedModel, distance, minutes float64) float64 {
	return model.Predict(distance, minutes)
}

// PredictAll は各観測に対する予測値を入力順で返す
func PredictAll(model FittedModel, observations []Observation) []float64 {
	return predictAll(model, observations, defaultParallelThreshold)
}

func predictAll(model FittedModel, observations []Observation, threshold int) []float64 {
	preds := make([]float64, len(observations))
	parallel.ParallelizeWithThreshold(len(observations), threshold, func(start, end int) {
		for i := start; i < end; i++ {
			preds[i] = model.Predict(observations[i].Distance, observations[i].Time)
		}
	})
	return preds
}

// RSquared は観測に対する決定係数 1 - SS_res/SS_tot を計算する
// 価格がすべて同じ値の場合は ConstantTargetError を返す
func RSquared(model FittedModel, observations []Observation) (float64, error) {
	if len(observations) == 0 {
		return 0, errors.NewEmptyDataError("RSquared")
	}
	return metrics.R2Score(prices(observations), PredictAll(model, observations))
}

// Regressor は距離と時間の2説明変数による最小二乗回帰
type Regressor struct {
	rcond             float64
	parallelThreshold int
	logger            log.Logger
}

// NewRegressor は新しいRegressorを作成する
func NewRegressor(opts ...Option) *Regressor {
	r := &Regressor{
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit は残差平方和 Σ(price - (b0 + b1·distance + b2·time))² を最小化する係数を求める
//
// 計画行列 [1, distance, time] を特異値分解で解く。
// 計画行列がランク落ちしている場合（独立な観測が3件未満、距離と時間が線形従属など）は
// DegenerateFitError を返す。同じ入力に対しては常に同じ係数を返す。
func (r *Regressor) Fit(observations []Observation) (model FittedModel, err error) {
	defer errors.Recover(&err, "Regressor.Fit")

	logger := r.getLogger().With(log.OperationKey, log.OperationFit)

	n := len(observations)
	if n == 0 {
		return FittedModel{}, errors.NewEmptyDataError("Regressor.Fit")
	}

	start := time.Now()

	X := designMatrix(observations, r.parallelThreshold)
	y := mat.NewVecDense(n, prices(observations))

	beta, rank, err := LeastSquares(X, y, r.rcond)
	if err != nil {
		logger.Debug("Least squares failed", log.SamplesKey, n, log.RankKey, rank, log.ParamsKey, numParams)
		return FittedModel{}, errors.Wrap(err, "Regressor.Fit")
	}

	model = FittedModel{
		Intercept:    beta.AtVec(0),
		CoefDistance: beta.AtVec(1),
		CoefTime:     beta.AtVec(2),
	}

	logger.Debug("Fit completed",
		log.SamplesKey, n,
		log.RankKey, rank,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return model, nil
}

func (r *Regressor) getLogger() log.Logger {
	if r.logger != nil {
		return r.logger
	}
	return log.GetLogger().With(log.ComponentKey, "linear")
}

// designMatrix は先頭に定数1の列を持つ n×3 の計画行列を作る
func designMatrix(observations []Observation, threshold int) *mat.Dense {
	X := mat.NewDense(len(observations), numParams, nil)
	parallel.ParallelizeWithThreshold(len(observations), threshold, func(start, end int) {
		for i := start; i < end; i++ {
			X.Set(i, 0, 1.0) // 切片項
			X.Set(i, 1, observations[i].Distance)
			X.Set(i, 2, observations[i].Time)
		}
	})
	return X
}

func prices(observations []Observation) []float64 {
	y := make([]float64, len(observations))
	for i, o := range observations {
		y[i] = o.Price
	}
	return y
}
