// Package exitcodes defines the process exit codes used by mcup-locker.
package exitcodes

const (
	GeneralError = 1
	UsageError   = 2
	ConfigError  = 3
	NotFound     = 4
	IOError      = 5
)
