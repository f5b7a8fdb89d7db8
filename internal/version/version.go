// Package version contains information on the current version of the
// module. It is split out for easy use by diagnostics and serialized table
// headers alike.
package version

// Current is the string representing the current version of the grammar
// analysis/parsing-table engine.
const Current = "0.1.0"
