package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	log := New("warn", false)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestFromContext(t *testing.T) {
	t.Run("should return the stored logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := WithContext(context.Background(), NewWithWriter(buf))

		log := FromContext(ctx)
		log.Info().Msg("from context")

		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("should fall back to a default logger", func(t *testing.T) {
		log := FromContext(context.Background())
		assert.NotEqual(t, zerolog.Disabled, log.GetLevel())
	})
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf), map[string]interface{}{
		"request_id": "abc",
		"status":     204,
	})

	log.Info().Msg("request")

	output := buf.String()
	require.NotEmpty(t, output)
	assert.Contains(t, output, `"request_id":"abc"`)
	assert.Contains(t, output, `"status":204`)
}
