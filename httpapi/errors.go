package httpapi

import "errors"

// ErrRecommenderRequired is returned by NewServer when no recommender is
// provided.
var ErrRecommenderRequired = errors.New("recommender is required")
