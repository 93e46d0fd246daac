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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/perchdash/perch/pkg/checks"
)

func TestPerch_handleStatus(t *testing.T) {
	p := &Perch{
		aggregator: NewAggregator(map[string]checks.Check{
			"nzbget": &stubCheck{name: "nzbget", result: checks.Result{Status: checks.Warn, Detail: "Paused"}},
			"deluge": &stubCheck{name: "deluge", result: checks.Result{Status: checks.Idle, Detail: "Seeding"}},
			"sonarr": &stubCheck{name: "sonarr", result: checks.Result{Status: checks.Active, Detail: "Online"}},
			"radarr": &stubCheck{name: "radarr", result: checks.Result{Status: checks.Error, Detail: checks.DetailBadJSON}},
		}),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", http.NoBody)

	p.handleStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Perch.handleStatus() = %v, want %v", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var got map[string][2]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := map[string][2]string{
		"nzbget": {"warning", "Paused"},
		"deluge": {"info", "Seeding"},
		"sonarr": {"success", "Online"},
		"radarr": {"danger", "BadJSON"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected status response: +want -got\n%s", diff)
	}
}

func TestPerch_handleOpenAPI(t *testing.T) {
	p := &Perch{}

	type args struct {
		request  *http.Request
		response *httptest.ResponseRecorder
		headers  map[string]string
	}

	type test struct {
		name    string
		args    args
		decoder func(*httptest.ResponseRecorder) error
	}

	tests := []test{
		{name: "yaml is default", args: args{request: httptest.NewRequest(http.MethodGet, "/openapi", bytes.NewBuffer([]byte{})), response: httptest.NewRecorder(), headers: map[string]string{}}, decoder: func(rr *httptest.ResponseRecorder) error {
			b := rr.Body.Bytes()
			return yaml.Unmarshal(b, &openapi3.T{})
		}},
		{name: "set json via accept header", args: args{request: httptest.NewRequest(http.MethodGet, "/openapi", bytes.NewBuffer([]byte{})), response: httptest.NewRecorder(), headers: map[string]string{"Accept": "application/json"}}, decoder: func(rr *httptest.ResponseRecorder) error {
			b := rr.Body.Bytes()
			return json.Unmarshal(b, &openapi3.T{})
		}},
		{name: "set yaml via accept header", args: args{request: httptest.NewRequest(http.MethodGet, "/openapi", bytes.NewBuffer([]byte{})), response: httptest.NewRecorder(), headers: map[string]string{"Accept": "text/yaml"}}, decoder: func(rr *httptest.ResponseRecorder) error {
			b := rr.Body.Bytes()
			return yaml.Unmarshal(b, &openapi3.T{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for h, v := range tt.args.headers {
				tt.args.request.Header.Add(h, v)
			}

			p.handleOpenAPI(tt.args.response, tt.args.request)

			if err := tt.decoder(tt.args.response); err != nil {
				t.Errorf("failed to decode response Perch.handleOpenAPI() = %v", err)
			}

			if tt.args.response.Code != http.StatusOK {
				t.Errorf("Perch.handleOpenAPI() = %v, want %v", tt.args.response.Code, http.StatusOK)
			}
		})
	}
}
