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

package factory

import (
	"github.com/perchdash/perch/pkg/checks"
	"github.com/perchdash/perch/pkg/checks/arr"
	"github.com/perchdash/perch/pkg/checks/deluge"
	"github.com/perchdash/perch/pkg/checks/nzbget"
	"github.com/perchdash/perch/pkg/checks/runtime"
)

// NewChecksFromConfig creates the check for every configured service,
// keyed by service name
func NewChecksFromConfig(cfg runtime.Config) (map[string]checks.Check, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	all := []checks.Check{
		nzbget.NewCheck(*cfg.Nzbget),
		deluge.NewCheck(*cfg.Deluge),
		arr.NewCheck(arr.Sonarr, *cfg.Sonarr),
		arr.NewCheck(arr.Radarr, *cfg.Radarr),
	}

	result := make(map[string]checks.Check, len(all))
	for _, c := range all {
		result[c.Name()] = c
	}
	return result, nil
}
