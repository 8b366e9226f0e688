package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidaystore/utils/log"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
catalog_path: ./festivos.csv
log_level: error
workers: 8
metrics_file: /tmp/holidaystore.prom
default_output: json
`))
	require.Nil(t, err)
	assert.Equal(t, "./festivos.csv", cfg.CatalogPath)
	assert.Equal(t, "csv", cfg.CatalogFormat)
	assert.Equal(t, log.ERROR, cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "/tmp/holidaystore.prom", cfg.MetricsFile)
	assert.Equal(t, "json", cfg.DefaultOutput)
	log.SetLevel(log.INFO)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	require.Nil(t, err)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, "", cfg.CatalogFormat)
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.Equal(t, defaultWorkers, cfg.Workers)
	assert.Equal(t, defaultOutput, cfg.DefaultOutput)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "catalog_path: [",
		"bad format":       "catalog_path: x.yml\ncatalog_format: xml",
		"negative workers": "workers: -1",
	}
	for name, data := range tests {
		_, err := ParseConfig([]byte(data))
		assert.NotNil(t, err, name)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "csv", FormatFromPath("rules.CSV"))
	assert.Equal(t, "yaml", FormatFromPath("rules.yml"))
	assert.Equal(t, "yaml", FormatFromPath("rules"))
}
