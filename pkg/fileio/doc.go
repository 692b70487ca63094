// Package fileio reads a period directory from disk into the raw, untyped
// shapes the period validators consume.
//
// CSV files become slices of header-keyed rows with cell values normalized
// (trimmed, smart quotes replaced, whitespace collapsed). JSON files decode
// into the raw structs of package period. Decoding never fails fast: each
// unreadable or malformed file contributes a single report entry and the
// remaining files still load.
package fileio
