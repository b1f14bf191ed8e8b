// Package registry provides Registry, a thread-safe table of items keyed by
// name.
//
// It backs the built-in variable table of pkg/variables and the in-memory
// view of templates.txt and projects.txt in pkg/datastore.
package registry
