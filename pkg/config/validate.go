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
	"net"

	"github.com/perchdash/perch/internal/logger"
)

// Validates the config
func (c *Config) Validate(ctx context.Context, fm *RunFlagsNameMapping) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	ok := true
	if _, _, err := net.SplitHostPort(c.Api.ListeningAddress); err != nil {
		ok = false
		log.ErrorContext(ctx, "The api address is not a valid listen address",
			fm.ApiAddress, c.Api.ListeningAddress)
	}

	if err := c.Services.Validate(); err != nil {
		ok = false
		log.ErrorContext(ctx, "The services configuration is incomplete or invalid",
			"error", err)
	}

	if !ok {
		return fmt.Errorf("validation of configuration failed")
	}
	return nil
}
