package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/km1000101/the-Editors-hub/internal/storage/interfaces"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// KeyValueStore is the persistence contract: whole-slice load/save by key,
// last-write-wins, no migrations.
type KeyValueStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps one zstd-compressed file per key under a directory.
// Writes go through a temp file, fsync and rename, so a crash mid-save
// leaves the previous value intact.
type FileStore struct {
	mu         sync.Mutex
	dir        string
	compressor interfaces.CompressorInterface
}

func NewFileStore(conf *structures.Config, compressor interfaces.CompressorInterface) (KeyValueStore, error) {
	dir := conf.Persistence.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create persistence dir: %w", err)
	}
	return &FileStore{dir: dir, compressor: compressor}, nil
}

func (fs *FileStore) path(key string) string {
	// Keys are fixed slice names; the replacement just keeps a stray
	// separator from escaping the store directory.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(fs.dir, safe+".dat")
}

func (fs *FileStore) Load(key string) ([]byte, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	plain, err := fs.compressor.Decompress(data)
	if err != nil {
		return nil, false, fmt.Errorf("decompress %q: %w", key, err)
	}
	return plain, true, nil
}

func (fs *FileStore) Save(key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := fs.compressor.Compress(value)
	if err != nil {
		return err
	}

	fileName := fs.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, fileName)
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
