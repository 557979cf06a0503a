package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_TagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init("production", "debug")
	Logger().SetOutput(&buf)

	ctx := WithRequestID(context.Background(), "rid-123")
	FromContext(ctx).WithField("operation", "test").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rid-123", line["request_id"])
	assert.Equal(t, "test", line["operation"])
	assert.Equal(t, "hello", line["msg"])
}

func TestFromContext_UnknownWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init("production", "info")
	Logger().SetOutput(&buf)

	FromContext(context.Background()).Info("x")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "unknown", line["request_id"])
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Logger().SetOutput(&buf)
	Init("development", "chatty")
	Logger().SetOutput(&buf)

	assert.Equal(t, "info", Logger().GetLevel().String())
}
