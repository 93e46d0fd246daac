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

package checks

import (
	"fmt"
)

// ErrMissingConfig is returned when the services configuration lacks the
// section for a service
type ErrMissingConfig struct {
	Service string
}

func (e ErrMissingConfig) Error() string {
	return fmt.Sprintf("missing configuration for service %q", e.Service)
}

// ErrInvalidConfig is returned when a service configuration is invalid
type ErrInvalidConfig struct {
	Service string
	Field   string
	Reason  string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid configuration field %q for service %q: %s", e.Field, e.Service, e.Reason)
}
