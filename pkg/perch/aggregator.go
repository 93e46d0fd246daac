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
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks"
)

// Aggregator queries all configured service checks and collects
// their results
type Aggregator struct {
	checks  map[string]checks.Check
	metrics statusMetrics
}

// NewAggregator creates an aggregator for the given checks
func NewAggregator(cks map[string]checks.Check) *Aggregator {
	return &Aggregator{
		checks:  cks,
		metrics: newStatusMetrics(),
	}
}

// GetMetricCollectors returns all metric collectors of the aggregator
func (a *Aggregator) GetMetricCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		a.metrics,
	}
}

// CheckAll gets the status of every service in a separate routine.
// The returned map contains a result for each configured service,
// services that could not be reached report their failure as a result.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]checks.Result {
	log := logger.FromContext(ctx)
	log.Debug("Getting status of each service in separate routine", "amount", len(a.checks))

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[string]checks.Result, len(a.checks))

	for n, c := range a.checks {
		name := n
		check := c
		wg.Add(1)

		go func() {
			defer wg.Done()
			res := check.Check(ctx)

			mu.Lock()
			defer mu.Unlock()
			results[name] = res

			a.metrics.WithLabelValues(name).Set(float64(res.Status))
		}()
	}

	log.Debug("Waiting for all routines to finish")
	wg.Wait()

	return results
}
