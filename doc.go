// Package main provides the entry point for the ClimaCurat website.
// It runs a Fiber based web server that renders the public marketing page
// from database stored content (services, testimonials, gallery, benefits,
// settings) and exposes a password gated admin dashboard for editing that
// content. The application uses gorm for data persistence and a SQL backed
// session store for admin authentication.
package main
