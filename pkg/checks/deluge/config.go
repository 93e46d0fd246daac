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
	"fmt"
	"net/url"
	"time"

	"github.com/perchdash/perch/pkg/checks"
)

const ServiceName = "deluge"

// The deluge-web UI needs two round trips per check, so it gets a more
// generous default than the single request adapters.
const defaultTimeout = 500 * time.Millisecond

// Config defines the connection parameters for a Deluge web UI instance
type Config struct {
	// URL is the base URL of the deluge-web interface, without a trailing slash
	URL string `json:"url" yaml:"url"`
	// Password authenticates the web UI session
	Password string `json:"password" yaml:"password"`
	// Timeout bounds each of the two session requests; defaults to 500ms
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return checks.ErrInvalidConfig{Service: ServiceName, Field: "url", Reason: "invalid URL"}
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return checks.ErrInvalidConfig{Service: ServiceName, Field: "url", Reason: "URL must start with 'https://' or 'http://'"}
	}

	if c.Password == "" {
		return checks.ErrInvalidConfig{Service: ServiceName, Field: "password", Reason: "password must not be empty"}
	}

	if c.Timeout < 0 {
		return checks.ErrInvalidConfig{Service: ServiceName, Field: "timeout", Reason: fmt.Sprintf("timeout must not be negative, got %v", c.Timeout)}
	}

	return nil
}
