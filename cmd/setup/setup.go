// Package setup holds the flags and bootstrap shared by every holidays
// subcommand.
package setup

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/metrics"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	configDesc  = "set the path for the holidays YAML configuration file"
	catalogDesc = "set the path for a holiday rule catalog (yaml or csv), overriding the configuration"
	outputDesc  = "output format: text, json, yaml, csv or msgpack"
)

var (
	// ConfigFilePath set flag for a path to the config file.
	ConfigFilePath string
	// CatalogPath set flag for a path to the rule catalog.
	CatalogPath string
	// Output set flag for the output format.
	Output string
)

// RegisterFlags adds the shared persistent flags to the root command.
func RegisterFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&ConfigFilePath, "config", "c", "", configDesc)
	c.PersistentFlags().StringVar(&CatalogPath, "catalog", "", catalogDesc)
	c.PersistentFlags().StringVarP(&Output, "output", "o", "", outputDesc)
}

// Load reads the configuration, applies flag overrides and returns the
// wired container.
func Load() (*di.Container, error) {
	start := time.Now()

	config := utils.InstanceConfig
	if ConfigFilePath != "" {
		data, err := os.ReadFile(ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file error: %w", err)
		}
		log.Debug("using %v for configuration", ConfigFilePath)
		parsed, err := utils.ParseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse configuration file error: %w", err)
		}
		config = *parsed
	}

	if CatalogPath != "" {
		config.CatalogPath = CatalogPath
		config.CatalogFormat = utils.FormatFromPath(CatalogPath)
	}

	if Output != "" {
		config.DefaultOutput = Output
	}
	if !frontend.ValidOutput(config.DefaultOutput) {
		return nil, frontend.UnknownOutput(config.DefaultOutput)
	}

	utils.InstanceConfig = config
	metrics.StartupTime.Set(time.Since(start).Seconds())
	return di.NewContainer(&config), nil
}

// Finish writes the metrics textfile when one is configured.
func Finish(c *di.Container) error {
	defer log.Sync()
	path := c.GetConfig().MetricsFile
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.Error("failed to write metrics: %v", err)
		return err
	}
	return nil
}

// Run loads the container, runs fn and always finishes, returning the
// first error.
func Run(fn func(c *di.Container) error) error {
	c, err := Load()
	if err != nil {
		return err
	}
	runErr := fn(c)
	finishErr := Finish(c)
	if runErr != nil {
		return runErr
	}
	return finishErr
}

// ErrArgs is returned when a positional argument can not be parsed.
var ErrArgs = errors.New("invalid arguments")
