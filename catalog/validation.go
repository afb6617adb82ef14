// Copyright 2025 Hirewise Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"fmt"
	"strings"
)

// ValidateCatalogRecord validates a CatalogRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - DurationMinutes, when known, must not be negative
//
// NOT validated:
//   - URL and TestType (both legitimately empty for some catalog entries)
//   - Id (0 is technically a valid hash value)
func ValidateCatalogRecord(record *CatalogRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}

	if record.DurationMinutes != nil && *record.DurationMinutes < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrNegativeDuration)
	}

	return nil
}

// NormalizeStructuredQuery brings a structured query into canonical form,
// recovering from malformed upstream output instead of failing the request:
//
//   - skill and trait strings are whitespace-trimmed; empties are dropped
//   - a non-positive duration limit is treated as "no constraint"
//
// The input is not mutated; a normalized copy is returned. RemoteRequired is
// passed through untouched because absence and false mean different things.
func NormalizeStructuredQuery(q StructuredQuery) StructuredQuery {
	out := StructuredQuery{
		Skills:         cleanTerms(q.Skills),
		Traits:         cleanTerms(q.Traits),
		RemoteRequired: q.RemoteRequired,
	}
	if q.DurationLimit != nil && *q.DurationLimit > 0 {
		limit := *q.DurationLimit
		out.DurationLimit = &limit
	}
	return out
}

// cleanTerms trims each term and drops empty entries, preserving order.
func cleanTerms(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term != "" {
			out = append(out, term)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
