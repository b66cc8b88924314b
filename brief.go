// Package brief provides a small summarization service for web pages and
// PDF documents. It extracts plain text from a source, dispatches it to one
// of several hosted summarization providers, and returns a single
// formatted summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., openai/, goquery/, gin-based http/).
package brief
