package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fapimcp/pkg/core"
	"fapimcp/pkg/exchange/binance"
)

func TestWriteTools_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTools(&buf, binance.Tools(), "json"))

	var tools []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tools))
	require.Len(t, tools, 18)
	assert.Equal(t, "get_account_info", tools[0]["name"])
	assert.Equal(t, "/fapi/v2/account", tools[0]["path"])
	assert.NotContains(t, buf.String(), "Normalize")
}

func TestWriteTools_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTools(&buf, binance.Tools(), "yaml"))

	var tools []core.ToolSpec
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &tools))
	require.Len(t, tools, 18)
	assert.Equal(t, "cancel_order", tools[7].Name)
	assert.Equal(t, core.EncodingStrict, tools[7].Encoding)
	assert.Equal(t, [][]string{{"orderId", "origClientOrderId"}}, tools[7].OneOf)
}

func TestWriteTools_UnknownFormat(t *testing.T) {
	err := writeTools(&bytes.Buffer{}, nil, "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, "warn")

	logger.Info().Msg("hidden")
	logger.Warn().Object("credentials", core.NewCredentials("abcd1234efgh5678", "top-secret")).Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "abcd****5678")
	assert.NotContains(t, out, "top-secret")
}

func TestNewLoggerTo_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	defaultLogger := newLoggerTo(&buf, "")
	defaultLogger.Debug().Msg("debug")
	bogusLogger := newLoggerTo(&buf, "bogus")
	bogusLogger.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"info"`)
}
