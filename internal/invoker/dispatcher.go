package invoker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/internal/observability"
	"github.com/pitabwire/fabconsole/model"
)

// Dispatcher builds requests and passes them to a transport. It keeps no
// per-call state; results and transport errors are returned unchanged.
type Dispatcher struct {
	builder   *Builder
	transport model.Transport
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics records rejected calls on m.
func WithMetrics(m *observability.Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(b *Builder, t model.Transport, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		builder:   b,
		transport: t,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Call validates and builds the request for desc, then executes it. When
// validation fails the transport is not called.
func (d *Dispatcher) Call(ctx context.Context, desc model.OperationDescriptor, params model.CallParameters) (*model.ResponseEnvelope, error) {
	if d.transport == nil {
		return nil, fmt.Errorf("invoker: %s: no transport configured", desc.ID)
	}

	ctx, span := observability.StartSpan(ctx, "console."+desc.ID,
		observability.AttrOperation.String(desc.ID),
		observability.AttrMethod.String(desc.Method),
	)

	logger := observability.OperationLogger(ctx, d.logger, desc.ID)

	req, err := d.builder.Build(desc, params)
	if err != nil {
		var mpe *model.MissingParameterError
		if errors.As(err, &mpe) {
			d.metrics.RecordMissingParameter(desc.ID)
			span.SetAttributes(observability.AttrMissingCnt.Int(len(mpe.Fields)))
			logger.Debug("call rejected", zap.Strings("missing", mpe.Fields))
		}
		observability.EndSpanWithError(span, err)
		return nil, err
	}
	span.SetAttributes(observability.AttrPath.String(req.Path))

	logger.Debug("dispatching",
		zap.String("method", req.Method),
		zap.String("url", req.FullURL()),
	)

	start := time.Now()
	resp, err := d.transport.Execute(observability.WithLogger(ctx, logger), req)
	if err != nil {
		logger.Debug("call failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		observability.EndSpanWithError(span, err)
		return resp, err
	}

	logger.Debug("call completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	observability.EndSpanWithError(span, nil)
	return resp, nil
}
