/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var jwtSegmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ResponseValidator checks decoded JSON responses against the registered
// schemas. In strict mode a mismatch is returned as a descriptive error, in
// lenient mode it only yields false.
type ResponseValidator struct {
	log *zap.Logger
}

func NewResponseValidator(log *zap.Logger) *ResponseValidator {
	if log == nil {
		log = zap.NewNop()
	}

	return &ResponseValidator{log: log}
}

// ValidateResponse checks data against the named schema.
func (v *ResponseValidator) ValidateResponse(data any, name SchemaName, strict bool) (bool, error) {
	schema, ok := schemaRegistry[name]
	if !ok {
		// Unreachable via the package constants, kept defensive for raw
		// string conversions.
		v.log.Warn("schema not registered", zap.String("schema", string(name)))
		return false, nil
	}

	if err := schema.Validate(data); err != nil {
		v.log.Debug("schema validation failed",
			zap.String("schema", string(name)),
			zap.Error(err))

		if strict {
			return false, fmt.Errorf("response does not match schema %q: %w", name, err)
		}

		return false, nil
	}

	return true, nil
}

// ValidateListResponse checks every element of a JSON array against the named
// schema, failing on the first non-conforming element.
func (v *ResponseValidator) ValidateListResponse(data any, itemSchema SchemaName, strict bool) (bool, error) {
	items, ok := asList(data)
	if !ok {
		if strict {
			return false, fmt.Errorf("expected a list response, got %T", data)
		}

		return false, nil
	}

	for i, item := range items {
		if ok, err := v.ValidateResponse(item, itemSchema, strict); !ok {
			if strict && err != nil {
				return false, fmt.Errorf("item %d: %w", i, err)
			}

			return false, nil
		}
	}

	return true, nil
}

// ValidatePaginationResponse checks a paginated envelope (content array plus
// page metadata) and each content element against the named schema.
func (v *ResponseValidator) ValidatePaginationResponse(data any, contentSchema SchemaName, strict bool) (bool, error) {
	if err := paginationSchema.Validate(data); err != nil {
		if strict {
			return false, fmt.Errorf("response is not a paginated envelope: %w", err)
		}

		return false, nil
	}

	envelope, ok := data.(map[string]any)
	if !ok {
		if strict {
			return false, fmt.Errorf("expected an object envelope, got %T", data)
		}

		return false, nil
	}

	return v.ValidateListResponse(envelope["content"], contentSchema, strict)
}

// ValidateJWTToken reports whether the token looks like a JWT: exactly three
// dot-separated URL-safe base64 segments. Shape only, no signature or claims
// verification.
func (v *ResponseValidator) ValidateJWTToken(token string) bool {
	if token == "" {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	for _, part := range parts {
		if !jwtSegmentPattern.MatchString(part) {
			return false
		}
	}

	return true
}

func asList(data any) ([]any, bool) {
	switch items := data.(type) {
	case []any:
		return items, true
	case []map[string]any:
		converted := make([]any, len(items))
		for i, item := range items {
			converted[i] = item
		}

		return converted, true
	default:
		return nil, false
	}
}
