/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZap(t *testing.T) {
	t.Run("With info", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("With formatted output", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		logger.Warnf("count=%d", 42)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
		assert.Equal(t, "count=42", entry["msg"])
		assert.Equal(t, "warn", entry["level"])
	})

	t.Run("With messages below the level filtered", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		logger.Info("invisible")
		logger.Debug("invisible")
		assert.Zero(t, buffer.Len())

		logger.Error("visible")
		assert.NotZero(t, buffer.Len())
	})

	t.Run("With level and outputs exposed", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		assert.Equal(t, DebugLevel, logger.LogLevel())
		require.Len(t, logger.LogOutput(), 1)
		assert.Same(t, buffer, logger.LogOutput()[0].(*bytes.Buffer))
	})
}

func TestDiscardLogger(t *testing.T) {
	// none of these must panic or write anywhere
	DiscardLogger.Info("ignored")
	DiscardLogger.Infof("ignored %d", 1)
	DiscardLogger.Warn("ignored")
	DiscardLogger.Warnf("ignored %d", 1)
	DiscardLogger.Error("ignored")
	DiscardLogger.Errorf("ignored %d", 1)
	DiscardLogger.Debug("ignored")
	DiscardLogger.Debugf("ignored %d", 1)
	assert.Empty(t, DiscardLogger.LogOutput())
}

func TestLevelString(t *testing.T) {
	testCases := map[Level]string{
		InfoLevel:    "INFO",
		WarningLevel: "WARNING",
		ErrorLevel:   "ERROR",
		FatalLevel:   "FATAL",
		DebugLevel:   "DEBUG",
		Disabled:     "",
	}
	for level, expected := range testCases {
		assert.Equal(t, expected, level.String())
	}
}
