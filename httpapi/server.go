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
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewise/assessrec/ai"
	"github.com/hirewise/assessrec/catalog"
	"github.com/hirewise/assessrec/recommend"
)

// livenessMessage is the fixed payload for health probes.
const livenessMessage = "Assessment Recommender API is running"

// recommendRequest is the POST /recommend body. An explicit structured
// query wins over the free-form text; the text is otherwise handed to the
// intent parser.
type recommendRequest struct {
	Text  string           `json:"text"`
	Query *structuredQuery `json:"query"`
}

// structuredQuery mirrors catalog.StructuredQuery on the wire.
type structuredQuery struct {
	Skills        []string `json:"skills"`
	Traits        []string `json:"traits"`
	DurationLimit *int     `json:"duration_limit"`
	Remote        *bool    `json:"remote"`
}

// Server is the HTTP surface over a recommender and an optional query
// parser. A nil parser means free-form text degrades to an unconstrained
// query instead of being parsed.
type Server struct {
	recommender *recommend.Recommender
	parser      ai.QueryParser
	engine      *gin.Engine
	logger      *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates the HTTP server. The parser may be nil.
func NewServer(recommender *recommend.Recommender, parser ai.QueryParser, opts ...Option) (*Server, error) {
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		recommender: recommender,
		parser:      parser,
		engine:      engine,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	engine.GET("/", s.handleLiveness)
	engine.HEAD("/", s.handleLiveness)
	engine.POST("/recommend", s.handleRecommend)

	return s, nil
}

// Handler returns the underlying http.Handler, used by tests and by
// callers embedding the API into a larger mux.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving recommendations", "addr", addr)
	return s.engine.Run(addr)
}

// handleLiveness answers health probes without touching the pipeline.
func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": livenessMessage})
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	query := s.resolveQuery(c, &req)

	results, err := s.recommender.Recommend(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, recommend.ErrEmbeddingUnavailable) {
			s.logger.Error("embedding service unavailable", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embedding service unavailable"})
			return
		}
		s.logger.Error("recommendation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// resolveQuery turns the request body into a structured query. An explicit
// query object is used as-is; otherwise the text goes through the intent
// parser. Parser absence or failure degrades to an unconstrained query,
// never a failed request.
func (s *Server) resolveQuery(c *gin.Context, req *recommendRequest) catalog.StructuredQuery {
	if req.Query != nil {
		return catalog.StructuredQuery{
			Skills:         req.Query.Skills,
			Traits:         req.Query.Traits,
			DurationLimit:  req.Query.DurationLimit,
			RemoteRequired: req.Query.Remote,
		}
	}

	if req.Text == "" || s.parser == nil {
		return catalog.StructuredQuery{}
	}

	parsed, err := s.parser.ParseQuery(c.Request.Context(), req.Text)
	if err != nil || parsed == nil {
		s.logger.Warn("intent extraction failed, degrading to unconstrained query",
			"text", req.Text, "err", err)
		return catalog.StructuredQuery{}
	}

	return catalog.StructuredQuery{
		Skills:         parsed.Skills,
		Traits:         parsed.Traits,
		DurationLimit:  parsed.DurationLimit,
		RemoteRequired: parsed.Remote,
	}
}
