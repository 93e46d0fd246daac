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

package runtime

import (
	"errors"

	"github.com/perchdash/perch/pkg/checks"
	"github.com/perchdash/perch/pkg/checks/arr"
	"github.com/perchdash/perch/pkg/checks/deluge"
	"github.com/perchdash/perch/pkg/checks/nzbget"
)

// Config holds the configuration for all services perch watches.
// Every section is required; perch refuses to start with a partial set
// instead of silently reporting fewer services.
type Config struct {
	Nzbget *nzbget.Config `yaml:"nzbget" json:"nzbget"`
	Deluge *deluge.Config `yaml:"deluge" json:"deluge"`
	Sonarr *arr.Config    `yaml:"sonarr" json:"sonarr"`
	Radarr *arr.Config    `yaml:"radarr" json:"radarr"`
}

// Validate checks that every service is configured and valid
func (c Config) Validate() (err error) {
	if c.Nzbget == nil {
		err = errors.Join(err, checks.ErrMissingConfig{Service: nzbget.ServiceName})
	} else {
		err = errors.Join(err, c.Nzbget.Validate())
	}

	if c.Deluge == nil {
		err = errors.Join(err, checks.ErrMissingConfig{Service: deluge.ServiceName})
	} else {
		err = errors.Join(err, c.Deluge.Validate())
	}

	if c.Sonarr == nil {
		err = errors.Join(err, checks.ErrMissingConfig{Service: arr.Sonarr})
	} else {
		err = errors.Join(err, c.Sonarr.Validate(arr.Sonarr))
	}

	if c.Radarr == nil {
		err = errors.Join(err, checks.ErrMissingConfig{Service: arr.Radarr})
	} else {
		err = errors.Join(err, c.Radarr.Validate(arr.Radarr))
	}

	return err
}
