// Package cli renders the storage registry for the xatsw command line.
//
// Four output formats are supported:
//   - text: one "name -> path" line per storage, the default storage marked
//   - table: a go-pretty table with a CURRENT marker column
//   - json and yaml: machine-readable documents
//
// An empty registry renders nothing in the text and table formats so that
// scripts can test for emptiness.
package cli
