// Package common defines the error kinds shared by every jobkeeper layer.
// Callers should use errors.Is to match the sentinels and errors.As to
// inspect the typed errors.
package common
