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

package config

import (
	"context"
	"testing"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks/arr"
	"github.com/perchdash/perch/pkg/checks/deluge"
	"github.com/perchdash/perch/pkg/checks/nzbget"
	"github.com/perchdash/perch/pkg/checks/runtime"
)

func validServices() runtime.Config {
	return runtime.Config{
		Nzbget: &nzbget.Config{URL: "http://localhost:6789"},
		Deluge: &deluge.Config{URL: "http://localhost:8112", Password: "deluge"},
		Sonarr: &arr.Config{URL: "http://localhost:8989", APIKey: "sonarr-key"},
		Radarr: &arr.Config{URL: "http://localhost:7878", APIKey: "radarr-key"},
	}
}

func TestConfig_Validate(t *testing.T) {
	ctx, cancel := logger.NewContextWithLogger(context.Background())
	defer cancel()

	fm := &RunFlagsNameMapping{
		ApiAddress:   "apiAddress",
		ServicesFile: "config",
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "config ok",
			config: Config{
				Api:      ApiConfig{ListeningAddress: ":8080"},
				Services: validServices(),
			},
			wantErr: false,
		},
		{
			name: "address without port",
			config: Config{
				Api:      ApiConfig{ListeningAddress: "localhost"},
				Services: validServices(),
			},
			wantErr: true,
		},
		{
			name: "address empty",
			config: Config{
				Services: validServices(),
			},
			wantErr: true,
		},
		{
			name: "service section missing",
			config: func() Config {
				c := Config{Api: ApiConfig{ListeningAddress: ":8080"}, Services: validServices()}
				c.Services.Deluge = nil
				return c
			}(),
			wantErr: true,
		},
		{
			name: "service section invalid",
			config: func() Config {
				c := Config{Api: ApiConfig{ListeningAddress: ":8080"}, Services: validServices()}
				c.Services.Sonarr.APIKey = ""
				return c
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(ctx, fm); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
