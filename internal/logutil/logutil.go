// Copyright 2026 The Queryopt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil is a thin wrapper over the process-wide zap logger,
// mirroring tidb's util/logutil package: callers fetch a logger with
// Logger() instead of reaching for zap's global directly, so a single
// place controls how the optimizer's background diagnostics are
// configured.
package logutil

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Logger returns the shared diagnostics logger. It is safe for
// concurrent use. The optimizer only ever logs at Debug level here:
// these are notes about statistics falling back to defaults, never
// planning errors (the CORE never fails, see the optimizer package).
func Logger() *zap.Logger {
	return log.L().With(zap.String("component", "queryopt"))
}
