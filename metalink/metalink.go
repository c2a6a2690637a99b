package metalink

// Hash is a single checksum of the metalink target file.
type Hash struct {
	Type  string // checksum type, e.g. "md5", "sha1", "sha256"
	Value string
}

// URL is a single mirror location for the target file.
type URL struct {
	Protocol   string // "http", "ftp", "rsync", ...
	Type       string
	Location   string // ISO 3166-1 alpha-2 country code
	Preference int    // 1-100, higher is better
	URL        string
}

// Metalink describes one target file and the mirrors that serve it.
type Metalink struct {
	Filename  string
	Timestamp int64
	Size      int64
	Hashes    []Hash
	URLs      []URL
}
