// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger for the given level
//  Input:
//   level -- 0 trace, 1 debug, 2 info, 3 warn, 4 error, 5 critical, 6 off
//   quiet -- no logging at all
func NewLogger(level int, quiet bool) (*zap.Logger, error) {
	if quiet || level >= 6 {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapLevel(level))
	logger, err := config.Build()
	if err != nil {
		return nil, chk.Err("cannot initialise logger:\n%v", err)
	}
	return logger, nil
}

// zapLevel converts a level in 0..5 to a zap level
func zapLevel(level int) zapcore.Level {
	switch {
	case level <= 1:
		return zapcore.DebugLevel
	case level == 2:
		return zapcore.InfoLevel
	case level == 3:
		return zapcore.WarnLevel
	case level == 4:
		return zapcore.ErrorLevel
	}
	return zapcore.DPanicLevel
}
