// Package textutil turns raw form input into recipe fields and provides the
// text helpers used by search and file naming.
//
// Ingredient input is one entry per line; tag input is comma separated. Both
// are trimmed and empty entries are dropped. Search matching relies on Unicode
// case folding rather than byte-wise lowercasing.
package textutil
