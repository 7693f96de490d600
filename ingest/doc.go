// Package ingest acquires and reads the delimited fix table.
//
// It is format-tolerant on the way in: the delimiter is sniffed from
// the header line, header names are matched case-insensitively against
// a fixed alias table, and rows are surfaced with their 1-based source
// line numbers so rejects stay diagnosable. It does NOT validate row
// contents; that is the trips package's job.
package ingest
