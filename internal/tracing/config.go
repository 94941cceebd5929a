// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/canonical/glassworks-service/internal/logging"
)

// Config selects the span exporter. The gRPC endpoint wins over the HTTP
// one; with neither set spans go to stdout.
type Config struct {
	Enabled      bool
	GRPCEndpoint string
	HTTPEndpoint string

	// SampleRatio is the fraction of new traces recorded, 0 or 1 records all.
	SampleRatio    float64
	ServiceVersion string

	Logger logging.LoggerInterface
}

func (c *Config) sampler() sdktrace.Sampler {
	if c.SampleRatio <= 0 || c.SampleRatio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
}
