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

package arr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks"
)

var _ checks.Check = (*check)(nil)

// systemStatus is the subset of the system status response that the
// check evaluates.
type systemStatus struct {
	Version string `json:"version"`
}

// check is the implementation of the Sonarr family adapter.
// It verifies that the service answers its status endpoint with a version.
type check struct {
	name   string
	config Config
	client *http.Client
}

// NewCheck creates a check for the named Sonarr family service
func NewCheck(service string, cfg Config) checks.Check {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &check{
		name:   service,
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Name returns the name of the monitored service
func (ch *check) Name() string {
	return ch.name
}

// Check requests the system status endpoint once and derives the
// service status from the answer
func (ch *check) Check(ctx context.Context) checks.Result {
	log := logger.FromContext(ctx).With("service", ch.name)

	endpoint := fmt.Sprintf("%s/api/system/status?apikey=%s", ch.config.URL, ch.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		log.Error("Error while creating request", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPI}
	}

	resp, err := ch.client.Do(req)
	if err != nil {
		log.Warn("Service did not answer the status request", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPI}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("Status request was not ok", "status", resp.Status)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPI}
	}

	var status systemStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		log.Warn("Status response is not valid JSON", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadJSON}
	}

	if status.Version == "" {
		log.Warn("Status response carries no version")
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadAPI}
	}

	return checks.Result{Status: checks.Active, Detail: "Online"}
}
