// Package commands contains the use cases that drive the dispatch office.
// Every command follows the same pattern: a validated command value built by
// its constructor, and a handler that runs it against the office and reports
// the outcome.
package commands
