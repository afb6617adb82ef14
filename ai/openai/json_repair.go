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


package openai

import (
	"strings"
	"unicode"
)

// repairJSON patches the malformed key quoting that small instruction
// models produce in JSON mode. The recurring shape is a key missing its
// opening quote, e.g. `{skills": [...]}` or `, duration_limit": 30`: the
// closing quote and colon survive, so the key can be re-quoted in place.
// Anything else passes through untouched.
func repairJSON(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 16)

	runes := []rune(s)
	for i := 0; i < len(runes); {
		ch := runes[i]
		out.WriteRune(ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		// Keys only appear after an object opener or a separator. Copy the
		// whitespace, then look at what starts the next token.
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			out.WriteRune(runes[i])
			i++
		}
		if i >= len(runes) || runes[i] == '"' || !unicode.IsLetter(runes[i]) {
			continue
		}

		// A bare word here is either a broken key or a literal such as
		// true inside an array. Only the `":` tail marks the broken key.
		start := i
		for i < len(runes) && (unicode.IsLetter(runes[i]) || runes[i] == '_') {
			i++
		}
		if i+1 < len(runes) && runes[i] == '"' && runes[i+1] == ':' {
			out.WriteRune('"')
		}
		out.WriteString(string(runes[start:i]))
	}

	return out.String()
}
