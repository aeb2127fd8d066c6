// File: pool/options.go
// Author: momentics <momentics@gmail.com>

package pool

import "go.uber.org/zap"

type poolOptions struct {
	logger    *zap.Logger
	hugepages bool
}

// Option customizes BufferPool construction.
type Option func(*poolOptions)

// WithLogger routes pool diagnostics (exhaustion, leaked buffers on
// close) to the given logger instead of discarding them.
func WithLogger(l *zap.Logger) Option {
	return func(o *poolOptions) { o.logger = l }
}

// WithHugepages requests hugepage backing for the arena where the
// platform supports it; the pool falls back to regular pages when the
// request cannot be satisfied.
func WithHugepages(enabled bool) Option {
	return func(o *poolOptions) { o.hugepages = enabled }
}

func defaultOptions() poolOptions {
	return poolOptions{logger: zap.NewNop()}
}
