// Package storage opens the local SQLite database, applies the embedded
// goose migrations and hands out slot repositories, optionally bound to a
// transaction.
package storage
