package studytracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// errCorruptStore marks a storage file whose contents cannot be decoded
var errCorruptStore = errors.New("storage file is corrupt")

// FileStore keeps every entry in one JSON object on disk.
// No caching - always reads/writes the file. File locking prevents races.
type FileStore struct {
	filePath string
}

// NewFileStore creates a file-backed store at path, creating its directory
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{
		filePath: path,
	}, nil
}

// Path returns the file backing the store
func (s *FileStore) Path() string {
	return s.filePath
}

// Get reads one entry
// Lock → Read → Unmarshal → Unlock → Return
func (s *FileStore) Get(key string) (string, error) {
	var value string

	err := s.withFileLock(func(file *os.File) error {
		entries, err := s.readEntries(file)
		if err != nil {
			return err
		}
		v, ok := entries[key]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})

	return value, err
}

// Set overwrites one entry, keeping the others
// Lock → Read all → Replace → Write → Unlock
func (s *FileStore) Set(key, value string) error {
	return s.withFileLock(func(file *os.File) error {
		entries, err := s.readEntries(file)
		if errors.Is(err, errCorruptStore) {
			// keep the unreadable bytes around and start over
			if backupErr := s.backupCorrupt(file); backupErr != nil {
				return backupErr
			}
			entries, err = map[string]string{}, nil
		}
		if err != nil {
			return err
		}

		entries[key] = value

		return s.writeEntries(file, entries)
	})
}

// withFileLock executes a function with the file locked
func (s *FileStore) withFileLock(fn func(*os.File) error) error {
	// Open file for read/write, create if not exists
	file, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}

// readEntries reads and unmarshals the entry map from a file
func (s *FileStore) readEntries(file *os.File) (map[string]string, error) {
	data, err := s.readAll(file)
	if err != nil {
		return nil, err
	}

	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptStore, err)
	}

	return entries, nil
}

func (s *FileStore) readAll(file *os.File) ([]byte, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, nil
	}

	data := make([]byte, fileInfo.Size())
	if _, err := file.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// writeEntries marshals and writes the entry map to a file
func (s *FileStore) writeEntries(file *os.File, entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *FileStore) backupCorrupt(file *os.File) error {
	data, err := s.readAll(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.filePath+".corrupt", data, 0644); err != nil {
		return fmt.Errorf("failed to back up corrupt storage: %w", err)
	}
	return nil
}
