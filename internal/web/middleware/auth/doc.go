// Package auth provides the authentication middleware for admin routes.
//
// The middleware checks the session cookie against the session store and
// short-circuits unauthenticated requests with a redirect to the login page.
// It never returns an error status, only a redirect.
//
// Usage:
//
//	app.Get("/admin", auth.RequireAdmin, handler)
package auth
