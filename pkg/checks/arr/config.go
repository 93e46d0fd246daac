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
	"fmt"
	"net/url"
	"time"

	"github.com/perchdash/perch/pkg/checks"
)

// Services of the Sonarr family share one API surface, so a single
// adapter covers both.
const (
	Sonarr = "sonarr"
	Radarr = "radarr"
)

const defaultTimeout = 200 * time.Millisecond

// Config defines the connection parameters for a service of the Sonarr family
type Config struct {
	// URL is the base URL of the service, without a trailing slash
	URL string `json:"url" yaml:"url"`
	// APIKey authenticates perch against the service API
	APIKey string `json:"apiKey" yaml:"apiKey"`
	// Timeout bounds the status request; defaults to 200ms
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Validate checks if the configuration is valid for the named service
func (c *Config) Validate(service string) error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return checks.ErrInvalidConfig{Service: service, Field: "url", Reason: "invalid URL"}
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return checks.ErrInvalidConfig{Service: service, Field: "url", Reason: "URL must start with 'https://' or 'http://'"}
	}

	if c.APIKey == "" {
		return checks.ErrInvalidConfig{Service: service, Field: "apiKey", Reason: "API key must not be empty"}
	}

	if c.Timeout < 0 {
		return checks.ErrInvalidConfig{Service: service, Field: "timeout", Reason: fmt.Sprintf("timeout must not be negative, got %v", c.Timeout)}
	}

	return nil
}
