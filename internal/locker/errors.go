package locker

import "errors"

var (
	ErrServerTypeNotFound = errors.New("server type not found")
	ErrServerTypeExists   = errors.New("server type already exists")
	ErrVersionNotFound    = errors.New("version not found")
	ErrVersionExists      = errors.New("version already exists")

	// ErrCorruptStore means the locker file exists but could not be read or
	// does not match the locker format.
	ErrCorruptStore = errors.New("corrupt locker file")

	// ErrPersistence means the locker could not be written.
	ErrPersistence = errors.New("saving locker failed")
)
