package services

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Invite is a grouping token handed to one assessment subject. The core
// treats the token as opaque; it only has to be unique.
type Invite struct {
	Token     string `json:"token"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"`
}

const (
	InviteActive  = "active"
	InviteRevoked = "revoked"
)

// NewInvite issues a fresh active invite for the given label.
func NewInvite(label string) Invite {
	return Invite{
		Token:     uuid.NewString(),
		Label:     strings.TrimSpace(label),
		CreatedAt: isoNow(),
		Status:    InviteActive,
	}
}

// NormalizeInvites decodes persisted invite content, dropping anything that
// is not a well-formed invite. Unparsable content yields an empty list.
func NormalizeInvites(raw []byte) []Invite {
	out := []Invite{}
	if len(raw) == 0 {
		return out
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return out
	}
	arr, ok := decoded.([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		m, ok := asRecord(item)
		if !ok {
			continue
		}
		token, tok := m["token"].(string)
		label, lok := m["label"].(string)
		createdAt, cok := m["createdAt"].(string)
		status, sok := m["status"].(string)
		if !tok || !lok || !cok || !sok {
			continue
		}
		if status != InviteActive && status != InviteRevoked {
			continue
		}
		out = append(out, Invite{Token: token, Label: label, CreatedAt: createdAt, Status: status})
	}
	return out
}

// RevokeInvite marks the invite with the given token as revoked. The second
// return reports whether the token was found.
func RevokeInvite(invites []Invite, token string) ([]Invite, bool) {
	out := append([]Invite(nil), invites...)
	found := false
	for i := range out {
		if out[i].Token == token {
			out[i].Status = InviteRevoked
			found = true
		}
	}
	return out, found
}
