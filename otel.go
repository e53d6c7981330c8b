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
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName    = "github.com/ClickHouse/ch-native-go"
	instrumentationVersion = "1.1.0"
)

func otelTracer() trace.Tracer {
	return otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
}

func startSpan(ctx context.Context, name, statement, serverAddr string) (context.Context, trace.Span) {
	return otelTracer().Start(ctx, name, trace.WithAttributes(spanAttributes(statement, serverAddr)...))
}

func spanAttributes(statement, serverAddr string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "clickhouse"),
	}
	if serverAddr != "" {
		attrs = append(attrs, attribute.String("db.server.address", serverAddr))
	}
	if statement != "" {
		attrs = append(attrs, attribute.String("db.statement", statement))
	}
	return attrs
}

func endSpan(span trace.Span, err *error) {
	if err != nil && *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
