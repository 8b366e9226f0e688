package di

import (
	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/catalog"
	"github.com/alpacahq/holidaystore/utils"
	"github.com/alpacahq/holidaystore/utils/log"
)

type Container struct {
	config     *utils.HolidaysConfig
	ruleSource calendar.RuleSource
	resolver   *calendar.Resolver
}

func NewContainer(cfg *utils.HolidaysConfig) *Container {
	return &Container{config: cfg}
}

func (c *Container) GetConfig() *utils.HolidaysConfig {
	return c.config
}

// GetRuleSource returns the file backed catalog when a catalog path is
// configured and the built-in catalog otherwise.
func (c *Container) GetRuleSource() calendar.RuleSource {
	if c.ruleSource != nil {
		return c.ruleSource
	}
	if c.config.CatalogPath == "" {
		log.Debug("using the built-in holiday catalog")
		c.ruleSource = catalog.Default()
		return c.ruleSource
	}

	format := c.config.CatalogFormat
	if format == "" {
		format = utils.FormatFromPath(c.config.CatalogPath)
	}
	log.Debug("using holiday catalog %s (%s)", c.config.CatalogPath, format)
	c.ruleSource = catalog.NewFile(c.config.CatalogPath, format)
	return c.ruleSource
}

func (c *Container) GetResolver() *calendar.Resolver {
	if c.resolver != nil {
		return c.resolver
	}
	c.resolver = calendar.NewResolver(c.GetRuleSource())
	return c.resolver
}
