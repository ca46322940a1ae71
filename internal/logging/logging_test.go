package logging

import (
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		p, err := NewProvider(Config{Level: "error", Format: format})
		require.NoError(t, err, format)

		logger := p.GetLogger("cmddoc.test")
		require.NotNil(t, logger)
		logger.Debug("provider.initialised", "format", format)
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	_, err := NewProvider(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestNilProviderIsNop(t *testing.T) {
	var p *Provider
	logger := p.GetLogger("x")
	assert.Equal(t, Nop(), logger)
	logger.Info("ignored")
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, glog.Warn, normalizeLevel(" WARNING "))
	assert.Equal(t, glog.Debug, normalizeLevel("debug"))
	assert.Equal(t, "", normalizeLevel("verbose"))
}
