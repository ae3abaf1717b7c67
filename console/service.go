// Package console is the client for the blockchain console REST API.
//
// A Service exposes one typed method per console operation and a generic
// Call for callers that work from operation ids:
//
//	cfg, _ := config.Load("fabconsole.yaml")
//	svc, err := console.New(cfg)
//	resp, err := svc.GetComponent(ctx, &console.GetComponentOptions{ID: "org1ca"})
//
// Required parameters are checked before any request is sent; a missing
// one fails with *model.MissingParameterError naming all of them.
package console

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/auth"
	"github.com/pitabwire/fabconsole/config"
	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/internal/invoker"
	"github.com/pitabwire/fabconsole/internal/observability"
	"github.com/pitabwire/fabconsole/internal/transport"
	"github.com/pitabwire/fabconsole/model"
)

// ErrUnknownOperation is returned by Call for an id the catalog does not define.
var ErrUnknownOperation = errors.New("console: unknown operation")

// Service is safe for concurrent use.
type Service struct {
	cfg        config.Config
	dispatcher *invoker.Dispatcher
	transport  model.Transport
	logger     *zap.Logger
	metrics    *observability.Metrics
}

type options struct {
	transport     model.Transport
	authenticator auth.Authenticator
	httpClient    *http.Client
	logger        *zap.Logger
	registerer    prometheus.Registerer
}

// Option configures a Service.
type Option func(*options)

// WithTransport replaces the HTTP transport, typically in tests.
func WithTransport(t model.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithAuthenticator overrides the authenticator selected by the config.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(o *options) { o.authenticator = a }
}

// WithHTTPClient sets the client used for console and IAM requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics registers the client metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New creates a Service. cfg is copied; later changes to it have no effect.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("console: config is nil")
	}
	if cfg.ServiceURL == "" {
		return nil, errors.New("console: service url is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	s := &Service{cfg: *cfg, logger: o.logger}
	if o.registerer != nil {
		s.metrics = observability.InitMetrics(o.registerer)
	}

	s.transport = o.transport
	if s.transport == nil {
		authenticator := o.authenticator
		if authenticator == nil {
			var err error
			authenticator, err = auth.New(cfg.Auth, o.httpClient,
				auth.WithLogger(o.logger),
				auth.WithRefreshHook(s.metrics.RecordTokenRefresh),
			)
			if err != nil {
				return nil, fmt.Errorf("console: %w", err)
			}
		}
		s.transport = transport.New(&s.cfg,
			transport.WithHTTPClient(o.httpClient),
			transport.WithAuthenticator(authenticator),
			transport.WithLogger(o.logger),
			transport.WithMetrics(s.metrics),
		)
	}

	s.dispatcher = invoker.NewDispatcher(
		invoker.NewBuilder(s.cfg.ServiceBase(), s.cfg.DefaultHeaders),
		s.transport,
		invoker.WithLogger(o.logger),
		invoker.WithMetrics(s.metrics),
	)

	o.logger.Debug("console client ready",
		zap.String("service_url", s.cfg.ServiceBase()),
		zap.String("auth", cfg.Auth.Type),
		zap.Int("operations", len(catalog.IDs())),
	)
	return s, nil
}

// Call invokes the operation with the given id.
func (s *Service) Call(ctx context.Context, operationID string, params model.CallParameters) (*model.ResponseEnvelope, error) {
	desc, ok := catalog.Lookup(operationID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, operationID)
	}
	resp, err := s.dispatcher.Call(ctx, desc, params)
	if err != nil {
		return nil, err
	}
	if s.cfg.FixCaseResults && resp != nil {
		resp.Result = model.FixCase(resp.Result)
	}
	return resp, nil
}

func (s *Service) call(ctx context.Context, operationID string, opts any) (*model.ResponseEnvelope, error) {
	params, err := toParams(opts)
	if err != nil {
		return nil, err
	}
	return s.Call(ctx, operationID, params)
}

// Operations returns a copy of every operation descriptor in catalog order.
func (s *Service) Operations() []model.OperationDescriptor {
	return catalog.All()
}

// Operation returns the descriptor for id.
func (s *Service) Operation(id string) (model.OperationDescriptor, bool) {
	return catalog.Lookup(id)
}
