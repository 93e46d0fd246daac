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
	"github.com/perchdash/perch/pkg/checks/runtime"
)

type Config struct {
	// Services holds the configuration of the monitored services.
	// It is read once at startup and fixed for the lifetime of the process.
	Services runtime.Config
	Api      ApiConfig
}

// ApiConfig is the configuration for the status API
type ApiConfig struct {
	ListeningAddress string
}

// NewConfig creates a new Config
func NewConfig() *Config {
	return &Config{}
}

func (c *Config) SetApiAddress(address string) {
	c.Api.ListeningAddress = address
}
