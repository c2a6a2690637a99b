// Package repoconf loads, queries, and mutates yum-style repository
// configuration files.
//
// A Store owns the files loaded through Parse or LoadDir and exposes one
// Entry per configuration section. Entries are read and written through a
// closed set of Option tags, each bound to one value kind; typed accessors
// (GetString, GetBool, ...) and a tagged-union Value keep every access
// kind-checked.
//
// The on-disk format is INI-like text extended with a continuation dialect:
// a line starting with whitespace extends the previous key's value, and
// multiple continuations accumulate as a semicolon-joined list. Raw text is
// normalized into strict key/value grammar before the backend parses it.
//
// All operations are synchronous; callers sharing a Store across goroutines
// must serialize access themselves.
package repoconf
