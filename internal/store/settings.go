package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

// SettingsFile persists the admin target score as a plain numeric string.
type SettingsFile struct {
	mu   sync.Mutex
	path string
}

func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: path}
}

// TargetScore returns the stored target, falling back to the default when
// nothing valid is persisted.
func (s *SettingsFile) TargetScore() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return services.DefaultTargetScore
	}
	return services.NormalizeStoredTarget(string(data))
}

// SetTargetScore validates and persists raw user input. Invalid input is
// rejected and the prior value retained; the effective target is returned
// either way.
func (s *SettingsFile) SetTargetScore(raw string) (float64, error) {
	v, ok := services.ParseTargetScore(raw)
	if !ok {
		return s.TargetScore(), services.NewInvalidError("target score must be a number between 0 and 24")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeFileAtomic(s.path, []byte(strconv.FormatFloat(v, 'f', -1, 64))); err != nil {
		return v, fmt.Errorf("persist target score: %w", err)
	}
	return v, nil
}

// InviteFile persists the invite list as a JSON array, dropping malformed
// entries on read.
type InviteFile struct {
	mu   sync.Mutex
	path string
}

func NewInviteFile(path string) *InviteFile {
	return &InviteFile{path: path}
}

func (s *InviteFile) ReadAll() []services.Invite {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []services.Invite{}
	}
	return services.NormalizeInvites(data)
}

func (s *InviteFile) WriteAll(invites []services.Invite) error {
	if invites == nil {
		invites = []services.Invite{}
	}
	data, err := json.Marshal(invites)
	if err != nil {
		return fmt.Errorf("encode invites: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFileAtomic(s.path, data)
}
