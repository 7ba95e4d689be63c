// Package store holds the in-memory state behind the journal: notes, tasks
// and the daily mood diary.
//
// Stores are plain single-writer objects. They do no I/O and no locking; the
// owner (the TUI update loop or a CLI invocation) calls them one operation at
// a time. Persistence plugs in at the boundary through Snapshot/Restore and
// the OnChange observers.
package store
