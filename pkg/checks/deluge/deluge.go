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

package deluge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks"
)

var _ checks.Check = (*check)(nil)

// rpcRequest is the envelope of a deluge-web JSON-RPC call
type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	ID     int    `json:"id"`
}

// updateUIResponse is the envelope of the web.update_ui answer.
// Result and Stats stay nil when the session is not authenticated or
// the web UI is not connected to a daemon.
type updateUIResponse struct {
	Result *updateUIResult `json:"result"`
}

type updateUIResult struct {
	Stats *sessionStats `json:"stats"`
}

// sessionStats is the subset of the session statistics the check evaluates.
type sessionStats struct {
	DownloadRate float64 `json:"download_rate"`
	UploadRate   float64 `json:"upload_rate"`
}

// check is the implementation of the Deluge adapter.
// The web UI only answers authenticated sessions, so every check logs in
// first and queries the session statistics afterwards.
type check struct {
	config Config
}

// NewCheck creates a Deluge check
func NewCheck(cfg Config) checks.Check {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &check{
		config: cfg,
	}
}

// Name returns the name of the monitored service
func (*check) Name() string {
	return ServiceName
}

// Check logs into the web UI and derives the service status from the
// session statistics. The session cookie must not outlive the check,
// so every run gets its own cookie jar.
func (ch *check) Check(ctx context.Context) checks.Result {
	log := logger.FromContext(ctx).With("service", ServiceName)

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Error("Error while creating cookie jar", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPILogin}
	}
	client := &http.Client{
		Timeout: ch.config.Timeout,
		Jar:     jar,
	}

	resp, err := ch.call(ctx, client, rpcRequest{Method: "auth.login", Params: []any{ch.config.Password}, ID: 2})
	if err != nil {
		log.Warn("Login against the web UI failed", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPILogin}
	}
	resp.Body.Close()

	resp, err = ch.call(ctx, client, rpcRequest{Method: "web.update_ui", Params: []any{[]string{"queue"}, map[string]any{}}, ID: 3})
	if err != nil {
		log.Warn("Service did not answer the session query", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailNoAPI}
	}
	defer resp.Body.Close()

	var status updateUIResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		log.Warn("Session query response is not valid JSON", "error", err)
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadJSON}
	}

	if status.Result == nil || status.Result.Stats == nil {
		log.Warn("Session query response carries no stats")
		return checks.Result{Status: checks.Error, Detail: checks.DetailBadAPI}
	}

	stats := status.Result.Stats
	switch {
	case stats.DownloadRate > 0:
		return checks.Result{Status: checks.Active, Detail: checks.FormatRate(stats.DownloadRate)}
	case stats.UploadRate > 0:
		return checks.Result{Status: checks.Idle, Detail: "Seeding"}
	default:
		return checks.Result{Status: checks.Idle, Detail: "Idle"}
	}
}

// call posts one JSON-RPC request and hands back the response if the
// service answered within the 2xx range
func (ch *check) call(ctx context.Context, client *http.Client, rpc rpcRequest) (*http.Response, error) {
	body, err := json.Marshal(rpc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ch.config.URL+"/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("request failed, status is %s", resp.Status)
	}

	return resp, nil
}
