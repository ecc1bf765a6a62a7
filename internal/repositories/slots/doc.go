// Package slots stores named binary payloads ("slots") in the local SQLite
// database. The application collection lives in one slot; a corrupt
// payload is parked in a second one.
package slots
