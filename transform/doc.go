// Package transform returns transformed deep copies of decoded records.
// Every string reachable through mappings, sequences and pointers is passed
// through a function; the input is never modified. It backs
// [datavalidation.WithStringFunc] and can be used on its own to normalize a
// record before storing it.
package transform
