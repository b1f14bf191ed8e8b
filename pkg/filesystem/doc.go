// Package filesystem provides the afero filesystem used by projup and a few
// whole-tree operations on top of it.
package filesystem
