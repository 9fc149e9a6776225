package main

import (
	"strings"
	"sync"

	"github.com/llehouerou/weddingstory/internal/config"
	"github.com/llehouerou/weddingstory/internal/content"
)

type commandContext struct {
	configFlag  *string
	contentFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	contentOnce sync.Once
	content     *content.Invitation
	contentErr  error
}

func newCommandContext(configFlag, contentFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		contentFlag: contentFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// ensureContent loads the invitation. The --content flag wins over the
// content file named in the config.
func (c *commandContext) ensureContent() (*content.Invitation, error) {
	c.contentOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.contentErr = err
			return
		}
		path := cfg.Content.File
		if c.contentFlag != nil && strings.TrimSpace(*c.contentFlag) != "" {
			path = strings.TrimSpace(*c.contentFlag)
		}
		c.content, c.contentErr = content.Load(path)
	})
	return c.content, c.contentErr
}
