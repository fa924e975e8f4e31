// Command farefit fits the transfer pricing formula to the observed fares and
// prints the analysis report.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/YuminosukeSato/farefit/dataset"
	"github.com/YuminosukeSato/farefit/linear"
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"github.com/YuminosukeSato/farefit/pkg/log"
	"github.com/YuminosukeSato/farefit/pricing"
	"github.com/google/uuid"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.GetLogger().Error("farefit failed", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("farefit", flag.ContinueOnError)
	configPath := fs.String("config", "", "scenario YAML file (default: embedded Carthage Transfer fares)")
	plotPath := fs.String("plot", "", "write an actual-vs-predicted chart to this file (.png, .svg, .pdf)")
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := log.SetupLogger(*logLevel); err != nil {
		return err
	}
	logger := log.GetLogger().With(log.RunIDKey, uuid.NewString())
	log.SetLogger(logger)

	scenario, err := loadScenario(*configPath)
	if err != nil {
		return err
	}
	logger.Debug("Scenario loaded",
		log.ScenarioKey, scenario.Name,
		log.SamplesKey, len(scenario.Observations),
	)

	report, err := pricing.Analyze(scenario, linear.NewRegressor())
	if err != nil {
		return err
	}

	if err := report.Render(stdout); err != nil {
		return errors.Wrap(err, "write report")
	}

	if *plotPath != "" {
		if err := report.SaveChart(*plotPath); err != nil {
			return err
		}
		logger.Info("Chart written", "path", *plotPath)
	}
	return nil
}

func loadScenario(path string) (*dataset.Scenario, error) {
	if path == "" {
		return dataset.Default()
	}
	return dataset.Load(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
