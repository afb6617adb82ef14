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


package httpapi

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the environment variable prefix for service configuration,
// e.g. ASSESSREC_ADDR, ASSESSREC_DB_PATH.
const envPrefix = "assessrec"

// Config holds the serving configuration. Values come from the environment
// and may be overridden by CLI flags.
type Config struct {
	Addr           string        `default:":8080"`
	DBPath         string        `split_words:"true" default:"./data/catalog"`
	IndexPath      string        `split_words:"true" default:"./data/catalog.fvix"`
	EmbeddingHost  string        `split_words:"true" default:"http://localhost:11434/v1"`
	EmbeddingModel string        `split_words:"true" default:"embeddinggemma"`
	ParserHost     string        `split_words:"true" default:"http://localhost:11434/v1"`
	ParserModel    string        `split_words:"true" default:"qwen2.5:3b"`
	EmbedTimeout   time.Duration `split_words:"true" default:"30s"`
}

// ConfigFromEnv reads configuration from ASSESSREC_* environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
