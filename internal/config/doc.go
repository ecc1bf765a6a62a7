// Package config assembles the runtime settings of jobkeeper from defaults,
// an optional JSON file (-c/-config) and command-line flags, in that order
// of precedence.
package config
