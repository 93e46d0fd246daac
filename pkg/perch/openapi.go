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

package perch

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/perchdash/perch/internal/logger"
)

var ErrCreateOpenapiSchema = errors.New("failed to get schema for status response")

var oapiBoilerplate = openapi3.T{
	// this object should probably be user defined
	OpenAPI: "3.0.0",
	Info: &openapi3.Info{
		Title:       "Perch Status API",
		Description: "Serves the aggregated status of the monitored services",
		Contact: &openapi3.Contact{
			URL:  "https://github.com/perchdash/perch",
			Name: "Perch Maintainers",
		},
	},
	Extensions: make(map[string]any),
	Components: &openapi3.Components{
		Schemas: make(openapi3.Schemas),
	},
	Servers: openapi3.Servers{},
}

// Openapi builds the OpenAPI document for the status api
func (p *Perch) Openapi(ctx context.Context) (openapi3.T, error) {
	log := logger.FromContext(ctx)
	doc := oapiBoilerplate
	// the copy is shallow, give every call its own paths map
	doc.Paths = make(openapi3.Paths, 1)

	ref, err := statusSchema()
	if err != nil {
		log.Error("failed to get schema for status response", "error", err)
		return openapi3.T{}, fmt.Errorf("%w: %w", ErrCreateOpenapiSchema, err)
	}

	bodyDesc := "Status of every monitored service"
	doc.Paths[routeStatus] = &openapi3.PathItem{
		Description: "Aggregated service status",
		Get: &openapi3.Operation{
			Description: "Returns the current status of every monitored service",
			Tags:        []string{"Status"},
			Responses: openapi3.Responses{
				"200": &openapi3.ResponseRef{
					Value: &openapi3.Response{
						Description: &bodyDesc,
						Content:     openapi3.NewContentWithSchemaRef(ref, []string{"application/json"}),
					},
				},
			},
		},
	}

	return doc, nil
}

// statusSchema returns the schema of the status response body,
// a map of service name to a status label and detail pair
func statusSchema() (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(map[string][]string{}, openapi3.Schemas{})
}
