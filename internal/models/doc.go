// Package models defines the job-application record, its checklist,
// interview rounds and attachments, and the snapshot codec used for storage
// and backups.
//
// Records are plain values. Mutating methods take a pointer receiver and are
// expected to be applied to a copy owned by the caller (see store.Update);
// Clone returns a deep copy that shares no memory with the original.
package models
