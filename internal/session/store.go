package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The two credential entries live and die together.
const (
	tokenFile  = "token"
	userIDFile = "user_id"
)

// Store persists the credential pair across restarts.
type Store interface {
	ReadCredentials() (token, userID string, err error)
	WriteCredentials(token, userID string) error
	Clear() error
}

// DefaultDir returns ~/.roomscout.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".roomscout"), nil
}

// FileStore keeps the token and user id as two files in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) ReadCredentials() (string, string, error) {
	token, err := s.read(tokenFile)
	if err != nil {
		return "", "", err
	}
	userID, err := s.read(userIDFile)
	if err != nil {
		return "", "", err
	}
	return token, userID, nil
}

func (s *FileStore) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteCredentials persists both entries, token first. A crash between
// the two writes leaves a pair that Bootstrap treats as unauthenticated.
func (s *FileStore) WriteCredentials(token, userID string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userIDFile), []byte(userID), 0600); err != nil {
		return fmt.Errorf("write user id: %w", err)
	}
	return nil
}

// Clear removes both entries. Missing files are not an error.
func (s *FileStore) Clear() error {
	for _, name := range []string{tokenFile, userIDFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	token  string
	userID string
}

func (s *MemoryStore) ReadCredentials() (string, string, error) {
	return s.token, s.userID, nil
}

func (s *MemoryStore) WriteCredentials(token, userID string) error {
	s.token, s.userID = token, userID
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token, s.userID = "", ""
	return nil
}
