package repoconf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	ini "gopkg.in/ini.v1"
)

// repoSuffix is the file-name suffix a directory entry must carry to be
// loaded by LoadDir.
const repoSuffix = ".repo"

// File is one loaded repository configuration file. It owns the backend
// handle for its contents and is owned by the Store that parsed it.
type File struct {
	path string
	kf   *ini.File
}

// Path returns the location the file was loaded from.
func (f *File) Path() string { return f.path }

// Save rewrites the file from the backend's current state, taking an
// advisory lock on the target so concurrent writers do not interleave.
func (f *File) Save() error {
	if f == nil || f.kf == nil {
		return fmt.Errorf("%w: no key file available", ErrBadArg)
	}

	lock := flock.New(f.path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("%w: cannot lock %s: %v", ErrFile, f.path, err)
	}
	defer lock.Unlock()

	if err := f.kf.SaveTo(f.path); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", ErrFile, f.path, err)
	}
	return nil
}

// Entry is one repository definition: a section of a loaded File. The file
// reference is non-owning; an Entry must not be used after its Store is
// gone.
type Entry struct {
	file *File
	id   string
}

// ID returns the section name of the entry. Unique within one file;
// entries from different files may share an ID and remain distinct.
func (e *Entry) ID() string { return e.id }

// File returns the configuration file the entry belongs to.
func (e *Entry) File() *File { return e.file }

// Store owns loaded configuration files and their derived entries, both in
// insertion order. It performs no internal locking; callers sharing a Store
// across goroutines must serialize access.
type Store struct {
	files   []*File
	entries []*Entry
	logger  *slog.Logger
}

// NewStore returns an empty store. A nil logger discards log output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{logger: logger}
}

// Files returns the loaded files in load order. The slice is shared; do not
// modify it.
func (s *Store) Files() []*File { return s.files }

// Entries returns every entry in load order, then section-declaration order
// within each file. The slice is shared; do not modify it.
func (s *Store) Entries() []*Entry { return s.entries }

// Parse loads one repository configuration file and registers an Entry for
// each of its sections. On failure the store is left unchanged.
func (s *Store) Parse(path string) error {
	kf, err := loadKeyFile(path)
	if err != nil {
		return err
	}

	file := &File{path: path, kf: kf}
	sections := kf.Sections()
	entries := make([]*Entry, 0, len(sections))
	for _, sec := range sections {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		entries = append(entries, &Entry{file: file, id: sec.Name()})
	}

	s.files = append(s.files, file)
	s.entries = append(s.entries, entries...)
	s.logger.Debug("parsed repo file", "path", path, "entries", len(entries))
	return nil
}

// LoadDir parses every file in dir whose name ends in ".repo", in raw
// directory-enumeration order. The first failure aborts the call; files
// parsed before the failure stay registered. This no-rollback behavior is
// part of the contract.
func (s *Store) LoadDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: cannot open dir %s: %v", ErrFile, dir, err)
	}
	defer d.Close()

	names, err := d.ReadDir(-1)
	if err != nil {
		return fmt.Errorf("%w: cannot read dir %s: %v", ErrFile, dir, err)
	}

	for _, entry := range names {
		if !strings.HasSuffix(entry.Name(), repoSuffix) {
			continue
		}
		if err := s.Parse(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	s.logger.Debug("loaded repo dir", "dir", dir, "files", len(s.files))
	return nil
}

// Save writes every loaded file back to disk. The first failure aborts.
func (s *Store) Save() error {
	for _, f := range s.files {
		if err := f.Save(); err != nil {
			return err
		}
		s.logger.Debug("saved repo file", "path", f.path)
	}
	return nil
}
