// Package document implements the pure line store for Vellum.
//
// Each row keeps two forms of its line: the logical bytes as loaded, and a
// rendered form with tab characters expanded to a fixed tab stop. Columns
// are 0-based byte indexes; content is single-byte ASCII.
package document
