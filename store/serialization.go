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


package store

import (
	"fmt"

	"github.com/hirewise/assessrec/catalog"
)

// MarshalCatalogRecord serializes a CatalogRecord to bytes.
func MarshalCatalogRecord(record *catalog.CatalogRecord) []byte {
	buf := make([]byte, catalog.CatalogRecordMUS.Size(*record))
	catalog.CatalogRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCatalogRecord deserializes a CatalogRecord from bytes.
func UnmarshalCatalogRecord(data []byte) (*catalog.CatalogRecord, error) {
	record, _, err := catalog.CatalogRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
