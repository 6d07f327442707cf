package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const tokenFileName = "token"

// FileStore persists the token as a single file under a configuration
// directory, surviving process restarts the way the browser console's
// localStorage entry survives reloads.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the containing directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("[NewFileStore] dir is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] os.MkdirAll")
	}
	return &FileStore{path: filepath.Join(dir, tokenFileName)}, nil
}

func (fs *FileStore) Read() (string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", errors.Wrap(err, "[FileStore.Read] os.ReadFile")
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (fs *FileStore) Write(token string) error {
	if err := os.WriteFile(fs.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Write] os.WriteFile")
	}
	return nil
}

func (fs *FileStore) Delete() error {
	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Delete] os.Remove")
	}
	return nil
}
