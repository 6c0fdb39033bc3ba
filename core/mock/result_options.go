package mock

import (
	"github.com/rowset/rowset/core"
)

type resultStreamConfig struct {
	header core.Header
}

type ResultStreamOption func(*resultStreamConfig)

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}
