// Package cache records expansion results in SQLite so unchanged sources
// are skipped on the next run.
//
// An entry is keyed by source path and holds the hashes of the source,
// the config fingerprint, and the generated output. A source is up to
// date when all three still match. Every invocation of the tool is a run;
// entries point at the run that last wrote them.
//
// The database uses WAL mode and a single connection, so one Store can be
// shared by concurrent goroutines.
package cache
