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

package nzbget

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks"
)

var _ checks.Check = (*check)(nil)

// statusResponse is the envelope of the JSON-RPC status answer.
// Result stays nil when the answer is JSON but not an RPC result.
type statusResponse struct {
	Result *serverStatus `json:"result"`
}

// serverStatus is the subset of the NZBGet server state the check evaluates.
type serverStatus struct {
	DownloadRate   float64 `json:"DownloadRate"`
	DownloadPaused bool    `json:"DownloadPaused"`
	ServerStandBy  bool    `json:"ServerStandBy"`
}

// check is the implementation of the NZBGet adapter.
// It reads the server status over the JSON-RPC interface and reports
// whether the instance is downloading, standing by or paused.
type check struct {
	config Config
	client *http.Client
}

// NewCheck creates an NZBGet check
func NewCheck(cfg Config) checks.Check {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &check{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Name returns the name of the monitored service
func (*check) Name() string {
	return ServiceName
}

// Check reads the server status once and derives the service status.
// A paused queue outranks a standby report, which outranks the rate.
func (ch *check) Check(ctx context.Context) checks.Result {
	log := logger.FromContext(ctx).With("service", ServiceName)

	endpoint := fmt.Sprintf("%s/jsonrpc/status", ch.config.URL)
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

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		log.Warn("Status response is not valid JSON", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadJSON}
	}

	if status.Result == nil {
		log.Warn("Status response carries no result")
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadAPI}
	}

	switch {
	case status.Result.DownloadPaused:
		return checks.Result{Status: checks.Warn, Detail: "Paused"}
	case status.Result.ServerStandBy:
		return checks.Result{Status: checks.Idle, Detail: "Idle"}
	default:
		return checks.Result{Status: checks.Active, Detail: checks.FormatRate(status.Result.DownloadRate)}
	}
}
