// Package tokens implements the line-oriented projup text format shared by
// template configuration files and the on-disk registries.
//
// Each meaningful line becomes one Token:
//
//   - [section]        a Tag
//   - key = value...   a Set
//   - value...         a Declare
//
// Lines starting with // and blank lines are ignored. Values are sequences of
// Objects: barewords, "quoted strings", $variable references and
// $variable:"format" references. A backslash escapes the next character.
package tokens
