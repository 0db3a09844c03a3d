// Package templates holds the templ components of the product dashboard.
//
// Edit the .templ sources and run `templ generate`; the *_templ.go files are
// generated.
package templates
