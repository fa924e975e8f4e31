package linear

import (
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// DefaultRcond はランク判定の既定閾値（最大特異値に対する比）
// 厳密に共線なデータで丸め誤差として残る特異値（1e-15 程度）を確実に0とみなす
const DefaultRcond = 1e-12

// LeastSquares は ||y - X·β||₂ を最小化する β を特異値分解で求める
//
// rcond 以下（最大特異値に対する比）の特異値は0とみなしてランクを数える。
// rcond <= 0 の場合は DefaultRcond を使う。
// ランクが列数に満たない場合、解は一意に定まらないため DegenerateFitError を返す。
//
// 戻り値:
//   - *mat.VecDense: 解ベクトル（長さは X の列数）
//   - int: X の実効ランク
//   - error: ランク落ちや分解失敗時のエラー
func LeastSquares(X mat.Matrix, y mat.Vector, rcond float64) (beta *mat.VecDense, rank int, err error) {
	defer errors.Recover(&err, "LeastSquares")

	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, 0, errors.NewEmptyDataError("LeastSquares")
	}
	if y.Len() != rows {
		return nil, 0, errors.NewDimensionError("LeastSquares", rows, y.Len())
	}
	if rcond <= 0 {
		rcond = DefaultRcond
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, 0, errors.NewValueError("LeastSquares", "singular value decomposition failed")
	}

	rank = svd.Rank(rcond)
	if rank < cols {
		return nil, rank, errors.NewDegenerateFitError("LeastSquares", rank, cols, rows)
	}

	beta = mat.NewVecDense(cols, nil)
	svd.SolveVecTo(beta, y, rank)

	if err := errors.CheckFinite("LeastSquares", beta.RawVector().Data...); err != nil {
		return nil, rank, err
	}
	return beta, rank, nil
}
