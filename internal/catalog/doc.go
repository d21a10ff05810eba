// Package catalog parses, validates, and rewrites trophy catalog files.
//
// A catalog file is plain UTF-8 text with one record per line:
//
//	Game A (50 of 100 Trophies)
//	Another Game (3 of 41 Trophies)
//
// # Parsing
//
// Lines are trimmed before parsing. Blank lines and lines that do not contain
// both "(" and "Trophies" are not records and are ignored without comment.
// Lines that look like records but carry unusable counts produce a
// *ParseError so callers can report them; they never abort a load.
//
// The name is everything before the last "(" in the line, so names may
// themselves contain parentheses:
//
//	Halo (2003) (12 of 50 Trophies)
//
// # Ordering and duplicates
//
// A Catalog keeps names in first-insertion order. Setting a name that is
// already present replaces its counts in place, so when a file lists the same
// game twice the later counts win while the entry keeps the earlier position.
// Save writes entries back in that order.
//
// # Validation
//
// Validate checks a catalog against an embedded JSON Schema (draft 2020-12)
// and reports completed counts that exceed the total as warnings.
package catalog
