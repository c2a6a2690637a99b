package repoconf

import "errors"

var (
	// ErrFile reports a file or directory that could not be read or written.
	ErrFile = errors.New("file error")
	// ErrKeyFile reports text the backend could not parse.
	ErrKeyFile = errors.New("key file error")
	// ErrBadArg reports an invalid call argument, such as an unknown option
	// tag or a value of the wrong kind.
	ErrBadArg = errors.New("bad function argument")
	// ErrValue reports a configured value that is semantically invalid for
	// its option.
	ErrValue = errors.New("invalid value")
	// ErrBadOptionArg reports a write attempted on a read-only option.
	ErrBadOptionArg = errors.New("bad option argument")
	// ErrNotSet reports an option that is legitimately absent and has no
	// default.
	ErrNotSet = errors.New("option not set")
)
