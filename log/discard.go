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

import "io"

// discardLogger implements Logger and swallows every message.
// It is handy in tests where log output is just noise.
type discardLogger struct{}

// enforce compilation and linter error
var _ Logger = discardLogger{}

// Debug implements Logger.
func (discardLogger) Debug(...any) {}

// Debugf implements Logger.
func (discardLogger) Debugf(string, ...any) {}

// Info implements Logger.
func (discardLogger) Info(...any) {}

// Infof implements Logger.
func (discardLogger) Infof(string, ...any) {}

// Warn implements Logger.
func (discardLogger) Warn(...any) {}

// Warnf implements Logger.
func (discardLogger) Warnf(string, ...any) {}

// Error implements Logger.
func (discardLogger) Error(...any) {}

// Errorf implements Logger.
func (discardLogger) Errorf(string, ...any) {}

// Fatal implements Logger.
func (discardLogger) Fatal(...any) {}

// Fatalf implements Logger.
func (discardLogger) Fatalf(string, ...any) {}

// LogLevel implements Logger.
func (discardLogger) LogLevel() Level {
	return Disabled
}

// LogOutput implements Logger.
func (discardLogger) LogOutput() []io.Writer {
	return nil
}
