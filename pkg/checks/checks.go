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
	"context"
	"encoding/json"

	"github.com/dustin/go-humanize"
)

// Status classifies the condition of a monitored service.
// The set is closed; adapters must not invent new statuses.
type Status int

const (
	// Active means the service is reachable and doing work.
	Active Status = iota
	// Idle means the service is reachable and healthy but has nothing to do.
	Idle
	// Warn means the service is reachable but in a degraded or paused state.
	Warn
	// Error means the service could not be reached or gave an unusable answer.
	Error
	// Unknown is reported for services no adapter covers.
	Unknown
)

// String returns the label of the status. The labels are part of the API
// contract; consumers key their severity styling off them.
func (s Status) String() string {
	switch s {
	case Active:
		return "success"
	case Idle:
		return "info"
	case Warn:
		return "warning"
	case Error:
		return "danger"
	default:
		return "default"
	}
}

// Details reported alongside an Error status. Each one names the first
// step of the check that failed.
const (
	// DetailNoAPI means the service endpoint could not be reached or
	// answered outside the 2xx range.
	DetailNoAPI = "NoAPI"
	// DetailNoAPILogin means the session login step failed.
	DetailNoAPILogin = "NoAPILogin"
	// DetailBadJSON means the response body was not parseable JSON.
	DetailBadJSON = "BadJSON"
	// DetailBadAPI means the response parsed but lacked the expected fields.
	DetailBadAPI = "BadAPI"
)

// Result is the outcome of a single service check.
type Result struct {
	Status Status
	Detail string
}

// MarshalJSON encodes the result as a two-element array of status label
// and detail, e.g. ["success","Online"].
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Status.String(), r.Detail})
}

// Check probes a single service once. Implementations translate every
// failure into a Result instead of returning an error, so a broken
// service can never break the aggregate.
type Check interface {
	// Check performs one probe of the service. It must honor ctx and
	// must not share connection state with previous invocations.
	Check(ctx context.Context) Result
	// Name returns the unique name of the monitored service.
	Name() string
}

// FormatRate renders a transfer rate in bytes per second as a short
// human readable string with SI units, e.g. "1.0 MB/s".
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}
