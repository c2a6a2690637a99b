package repoconf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	ini "gopkg.in/ini.v1"
)

// loadOptions configures the backend for the repo file grammar: '=' is the
// only key/value delimiter and ';' inside values is data, never a comment,
// because the continuation dialect joins values with it.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	KeyValueDelimiters:  "=",
}

// loadKeyFile reads path, rewrites the continuation dialect into strict
// key/value grammar, and parses the result.
func loadKeyFile(path string) (*ini.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot load content of %s: %v", ErrFile, path, err)
	}

	kf, err := ini.LoadSources(loadOptions, normalizeMultiline(data))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse key file %s: %v", ErrKeyFile, path, err)
	}
	return kf, nil
}

// normalizeMultiline folds continuation lines into the key line they extend.
// A line starting with whitespace continues the previous line: the first
// continuation after a bare "key =" is appended directly, every further one
// is joined with ';'. The first line of the file can never be a continuation
// because the output buffer is still empty.
func normalizeMultiline(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data))

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.ReplaceAll(line, "\t", " ")

		if strings.HasPrefix(line, " ") && buf.Len() > 0 {
			// Fold into the previous line: drop its newline, then decide
			// whether this is the first value after a bare '='.
			buf.Truncate(buf.Len() - 1)
			line = strings.TrimLeft(line, " ")
			if n := buf.Len(); n > 0 && buf.Bytes()[n-1] != '=' {
				buf.WriteByte(';')
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	out := buf.Bytes()
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}
