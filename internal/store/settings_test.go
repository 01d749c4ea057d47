package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/services"
)

func TestSettingsFileTargetScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.txt")
	s := NewSettingsFile(path)

	if got := s.TargetScore(); got != services.DefaultTargetScore {
		t.Fatalf("missing file should yield default, got %v", got)
	}

	v, err := s.SetTargetScore("15.5")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if v != 15.5 || s.TargetScore() != 15.5 {
		t.Fatalf("expected 15.5 persisted, got %v / %v", v, s.TargetScore())
	}

	// Invalid input is rejected; the prior value is kept and returned.
	v, err = s.SetTargetScore("not a number")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Code != services.ErrorInvalid {
		t.Fatalf("expected invalid-input service error, got %v", err)
	}
	if v != 15.5 || s.TargetScore() != 15.5 {
		t.Fatalf("prior value should survive rejection, got %v / %v", v, s.TargetScore())
	}

	// Out-of-range input is clamped, not rejected.
	if v, err = s.SetTargetScore("99"); err != nil || v != 24 {
		t.Fatalf("expected clamp to 24, got (%v, %v)", v, err)
	}
}

func TestInviteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invites.json")
	f := NewInviteFile(path)

	if got := f.ReadAll(); len(got) != 0 {
		t.Fatalf("missing file should yield empty list, got %d", len(got))
	}

	invites := []services.Invite{
		services.NewInvite("Parliament A"),
		services.NewInvite("Parliament B"),
	}
	if err := f.WriteAll(invites); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := f.ReadAll()
	if len(got) != 2 || got[0].Label != "Parliament A" || got[1].Label != "Parliament B" {
		t.Fatalf("unexpected reread: %+v", got)
	}

	revoked, found := services.RevokeInvite(got, got[0].Token)
	if !found {
		t.Fatalf("expected token to be found")
	}
	if err := f.WriteAll(revoked); err != nil {
		t.Fatalf("write: %v", err)
	}
	if again := f.ReadAll(); again[0].Status != services.InviteRevoked {
		t.Fatalf("revocation not persisted: %+v", again)
	}
}
