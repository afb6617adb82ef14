// Package httpapi exposes the recommendation pipeline over HTTP.
//
// Two routes: GET/HEAD / answers liveness probes with a fixed payload
// without touching the pipeline, and POST /recommend runs a query. The
// request body carries either raw text (parsed into intent by the query
// parser) or an explicit structured query; when intent extraction fails
// the request degrades to an unconstrained query rather than failing.
package httpapi
