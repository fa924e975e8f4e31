// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// 各エラー型はスタックトレース付きで生成され、zerologで構造化ログとして出力できます。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	回帰特有のエラー型
//
// ===========================================================================

// DegenerateFitError は計画行列がランク落ちしており、最小二乗解が一意に定まらない場合のエラーです。
// 観測数が不足している場合や、説明変数が全行で線形従属な場合に発生します。
type DegenerateFitError struct {
	Op      string
	Rank    int // 計画行列の実効ランク
	Params  int // 推定するパラメータ数（切片を含む）
	Samples int // 観測数
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("farefit: %s: degenerate fit: design matrix has rank %d, need %d (samples: %d)",
		e.Op, e.Rank, e.Params, e.Samples)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegenerateFitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rank", e.Rank).
		Int("params", e.Params).
		Int("samples", e.Samples).
		Str("type", "DegenerateFitError")
}

// NewDegenerateFitError は新しいDegenerateFitErrorを作成し、スタックトレースを付与します。
func NewDegenerateFitError(op string, rank, params, samples int) error {
	err := &DegenerateFitError{Op: op, Rank: rank, Params: params, Samples: samples}
	return errors.WithStack(err)
}

// ConstantTargetError は目的変数がすべて同じ値で、決定係数が定義できない場合のエラーです。
type ConstantTargetError struct {
	Op    string
	Value float64 // すべての観測が取る値
}

func (e *ConstantTargetError) Error() string {
	return fmt.Sprintf("farefit: %s: target is constant (%g): total sum of squares is zero", e.Op, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConstantTargetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("value", e.Value).
		Str("type", "ConstantTargetError")
}

// NewConstantTargetError は新しいConstantTargetErrorを作成し、スタックトレースを付与します。
func NewConstantTargetError(op string, value float64) error {
	err := &ConstantTargetError{Op: op, Value: value}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は入力データの長さが期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("farefit: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("farefit: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切な場合に発生するエラーです。
// Errに原因となるエラー（ErrEmptyDataなど）を保持できます。
type ValueError struct {
	Op      string
	Message string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("farefit: %s: %s", e.Op, e.Message)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NewEmptyDataError は空の入力に対するValueErrorを作成します。ErrEmptyDataとしても判定できます。
func NewEmptyDataError(op string) error {
	err := &ValueError{Op: op, Message: "empty data", Err: ErrEmptyData}
	return errors.WithStack(err)
}

// NumericalInstabilityError は計算結果にNaNやInfが含まれる場合のエラーです。
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("farefit: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Stacktrace はエラーチェーンのうち最も外側で記録されたスタックトレースを返します。
// スタックトレースが存在しない場合は空文字列を返します。
func Stacktrace(err error) string {
	for _, payload := range errors.GetAllSafeDetails(err) {
		if len(payload.SafeDetails) > 0 && payload.SafeDetails[0] != "" {
			return payload.SafeDetails[0]
		}
	}
	return ""
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
