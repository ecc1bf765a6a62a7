// Package services connects the application store to durable storage and
// to the file artifacts the user can produce: the SQLite slot that mirrors
// the collection, backups, spreadsheets, calendars and saved attachments.
package services
