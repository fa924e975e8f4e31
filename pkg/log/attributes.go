// Package log defines standard attribute keys for regression and pricing logs.
//
// The keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so that log lines can be filtered consistently.

package log

// Operation context.
const (
	// ComponentKey identifies which package is logging.
	// Examples: "linear", "dataset", "pricing"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "report"
	OperationKey = "ml.operation"

	// RunIDKey correlates every log line of one program run.
	RunIDKey = "run.id"

	// ScenarioKey names the pricing scenario being analysed.
	ScenarioKey = "scenario.name"
)

// Data shape.
const (
	// SamplesKey is the number of observations.
	SamplesKey = "data.samples"

	// ParamsKey is the number of estimated parameters, intercept included.
	ParamsKey = "model.params"

	// RankKey is the effective rank of the design matrix.
	RankKey = "model.rank"
)

// Metrics.
const (
	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// MAEKey records the mean absolute error.
	MAEKey = "metrics.mae"

	// DurationMsKey records the execution time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorKey holds the error message.
	ErrorKey = "error"

	// StacktraceKey holds the stack trace recorded by pkg/errors.
	StacktraceKey = "error.stacktrace"
)

// Standard operation values.
const (
	OperationFit    = "fit"
	OperationScore  = "score"
	OperationReport = "report"
)
