// Licensed to ClickHouse, Inc. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. ClickHouse, Inc. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package clickhouse

import (
	"fmt"
	"log/slog"
	"os"
)

// initDebugf resolves the packet-level debug logger for a connection.
// A caller-supplied Debugf wins; otherwise Debug turns on an slog text
// handler, and the default is a no-op.
func initDebugf(opt *Options) func(format string, v ...any) {
	switch {
	case opt.Debugf != nil:
		return opt.Debugf
	case opt.Debug:
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		return func(format string, v ...any) {
			logger.Debug(fmt.Sprintf(format, v...))
		}
	default:
		return func(string, ...any) {}
	}
}
