// perch
// (C) 2025, Deutsche Telekom IT GmbH
//
// Deutsche Telekom IT GmbH and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package perch

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/api"
	"github.com/perchdash/perch/pkg/config"
	"github.com/perchdash/perch/pkg/factory"
	"github.com/perchdash/perch/pkg/metrics"
)

const (
	routeStatus  = "/status"
	routeOpenapi = "/openapi"
	routeMetrics = "/metrics"
)

// Perch is the main object of the status service
type Perch struct {
	cfg        *config.Config
	api        api.API
	aggregator *Aggregator
	metrics    metrics.Metrics
}

// New creates a perch from a configuration.
// The service checks are built once here, the configuration is
// not reloaded afterwards.
func New(cfg *config.Config) (*Perch, error) {
	cks, err := factory.NewChecksFromConfig(cfg.Services)
	if err != nil {
		return nil, fmt.Errorf("failed to create checks: %w", err)
	}

	p := &Perch{
		cfg:        cfg,
		api:        api.New(cfg.Api),
		aggregator: NewAggregator(cks),
		metrics:    metrics.NewMetrics(),
	}
	p.metrics.GetRegistry().MustRegister(p.aggregator.GetMetricCollectors()...)

	return p, nil
}

// Run registers the api routes and serves the api.
// Blocks until the context is done or a termination signal
// triggers a graceful shutdown.
func (p *Perch) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	if err := p.api.RegisterRoutes(ctx, p.routes()...); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	cErr := make(chan error, 1)
	go func() {
		cErr <- p.api.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-cErr:
		return err
	case sig := <-sigCh:
		log.Info("Received signal, shutting down", "signal", sig.String())
		return p.Shutdown(ctx)
	}
}

// Shutdown gracefully stops the api server
func (p *Perch) Shutdown(ctx context.Context) error {
	return p.api.Shutdown(ctx)
}

// routes returns all routes of the status api
func (p *Perch) routes() []api.Route {
	return []api.Route{
		{
			Path:    routeStatus,
			Method:  http.MethodGet,
			Handler: p.handleStatus,
		},
		{
			Path:    routeOpenapi,
			Method:  http.MethodGet,
			Handler: p.handleOpenAPI,
		},
		{
			Path:   routeMetrics,
			Method: "Handle",
			Handler: promhttp.HandlerFor(
				p.metrics.GetRegistry(),
				promhttp.HandlerOpts{Registry: p.metrics.GetRegistry()},
			).ServeHTTP,
		},
	}
}
