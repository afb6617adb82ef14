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


package indexer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hirewise/assessrec/catalog"
)

// Column headers of the scraped catalog CSV. Job Levels and Languages are
// also present in the file but not consumed here.
const (
	columnName        = "Assessment Name"
	columnURL         = "URL"
	columnTestTypes   = "Test Types"
	columnAdaptive    = "Adaptive"
	columnRemote      = "Remote"
	columnDescription = "Description"
	columnLength      = "Assessment Length"
)

var requiredColumns = []string{
	columnName,
	columnURL,
	columnTestTypes,
	columnAdaptive,
	columnRemote,
	columnDescription,
	columnLength,
}

// ReadCatalogCSV parses the scraped catalog into records, preserving file
// order (which becomes row order). Rows with an empty assessment name are
// skipped. Unparseable duration values become unknown rather than zero;
// unparseable booleans default to false.
func ReadCatalogCSV(r io.Reader) ([]*catalog.CatalogRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	field := func(row []string, name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []*catalog.CatalogRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		name := field(row, columnName)
		if name == "" {
			continue
		}

		url := field(row, columnURL)
		records = append(records, &catalog.CatalogRecord{
			Id:              catalog.RecordID(name, url),
			Name:            name,
			URL:             url,
			TestType:        field(row, columnTestTypes),
			Adaptive:        parseBool(field(row, columnAdaptive)),
			Remote:          parseBool(field(row, columnRemote)),
			DurationMinutes: parseDuration(field(row, columnLength)),
			Description:     field(row, columnDescription),
		})
	}

	return records, nil
}

// parseBool reads the scraper's boolean column values. Anything that is not
// recognizably true is false.
func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}

// parseDuration reads the assessment length column. Non-numeric or negative
// values are unknown, never zero.
func parseDuration(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
