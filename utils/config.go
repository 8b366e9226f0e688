package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	defaultWorkers = 4
	defaultOutput  = "text"
)

var InstanceConfig = HolidaysConfig{
	Workers:       defaultWorkers,
	DefaultOutput: defaultOutput,
}

type HolidaysConfig struct {
	// CatalogPath is the rule catalog file. Empty means the built-in catalog.
	CatalogPath string
	// CatalogFormat is "yaml" or "csv".
	CatalogFormat string
	LogLevel      log.Level
	// Workers bounds how many years are resolved concurrently.
	Workers int
	// MetricsFile receives a prometheus text dump on exit when set.
	MetricsFile   string
	DefaultOutput string
}

// ParseConfig parses the YAML configuration and applies the log level.
func ParseConfig(data []byte) (*HolidaysConfig, error) {
	var m HolidaysConfig
	if err := m.Parse(data); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *HolidaysConfig) Parse(data []byte) error {
	var aux struct {
		CatalogPath   string `yaml:"catalog_path"`
		CatalogFormat string `yaml:"catalog_format"`
		LogLevel      string `yaml:"log_level"`
		Workers       int    `yaml:"workers"`
		MetricsFile   string `yaml:"metrics_file"`
		DefaultOutput string `yaml:"default_output"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	m.CatalogPath = aux.CatalogPath
	m.CatalogFormat = strings.ToLower(aux.CatalogFormat)
	if m.CatalogFormat == "" && m.CatalogPath != "" {
		m.CatalogFormat = FormatFromPath(m.CatalogPath)
	}
	switch m.CatalogFormat {
	case "", "yaml", "csv":
	default:
		return fmt.Errorf("invalid catalog_format: %q", aux.CatalogFormat)
	}

	m.LogLevel = log.ParseLevel(aux.LogLevel)
	log.SetLevel(m.LogLevel)

	if aux.Workers < 0 {
		return errors.New("invalid workers: must not be negative")
	}
	m.Workers = aux.Workers
	if m.Workers == 0 {
		m.Workers = defaultWorkers
	}

	m.MetricsFile = aux.MetricsFile

	m.DefaultOutput = aux.DefaultOutput
	if m.DefaultOutput == "" {
		m.DefaultOutput = defaultOutput
	}

	return nil
}

// FormatFromPath guesses the catalog format from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	default:
		return "yaml"
	}
}
