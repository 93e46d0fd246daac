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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/perchdash/perch/internal/logger"
	"github.com/perchdash/perch/pkg/checks/runtime"
)

// Load reads the services configuration from the file at path.
// The service set is fixed for the lifetime of the process, so the file
// is read exactly once at startup.
func Load(ctx context.Context, path string) (runtime.Config, error) {
	log := logger.FromContext(ctx)
	log.Info("Reading services config from file", "file", path)

	var cfg runtime.Config
	b, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", "path", path, "error", err)
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		log.Error("Failed to parse config file", "error", err)
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
