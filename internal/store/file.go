package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

// FileStore keeps the log as a JSON array of snapshots in a single file, the
// same shape earlier builds persisted. Writes go through a temp file and
// rename so readers never observe a partial log.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) ReadAll() []services.Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []services.Snapshot{}
	}
	return services.NormalizeLog(data)
}

func (s *FileStore) WriteAll(log []services.Snapshot) error {
	if log == nil {
		log = []services.Snapshot{}
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode snapshot log: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

func (s *FileStore) Append(snapshot services.Snapshot) ([]services.Snapshot, error) {
	log := append(s.ReadAll(), snapshot)
	if err := s.WriteAll(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *FileStore) Clear() error {
	return s.WriteAll(nil)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
