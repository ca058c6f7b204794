// Package middleware holds the HTTP middleware of the admin panel.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
// It has the shape chi's Use and With accept.
type Middleware = func(http.Handler) http.Handler
