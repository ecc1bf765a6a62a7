// Package cli implements the interactive jobkeeper shell: a line-oriented
// REPL over the application store with commands for editing records, their
// checklists and interview rounds, and for producing exports.
package cli
