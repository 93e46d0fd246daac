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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{name: "active maps to success", status: Active, want: "success"},
		{name: "idle maps to info", status: Idle, want: "info"},
		{name: "warn maps to warning", status: Warn, want: "warning"},
		{name: "error maps to danger", status: Error, want: "danger"},
		{name: "unknown maps to default", status: Unknown, want: "default"},
		{name: "out of range maps to default", status: Status(42), want: "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{name: "active service", result: Result{Status: Active, Detail: "Online"}, want: `["success","Online"]`},
		{name: "failed service", result: Result{Status: Error, Detail: DetailNoAPI}, want: `["danger","NoAPI"]`},
		{name: "zero value", result: Result{}, want: `["success",""]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{name: "zero", rate: 0, want: "0 B/s"},
		{name: "bytes", rate: 42, want: "42 B/s"},
		{name: "kilobytes", rate: 500000, want: "500 kB/s"},
		{name: "megabytes", rate: 1048576, want: "1.0 MB/s"},
		{name: "negative clamps to zero", rate: -512, want: "0 B/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.rate))
		})
	}
}
