package tontine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Member is a person registered in the ledger. A member may hold positions
// in several tontines. The CNI (national identity number) is unique across
// the registry.
type Member struct {
	ID       string
	Name     string
	CNI      string
	Phone    string
	Email    string
	Address  string
	JoinedAt Date
}

// NewMember creates a member with a fresh identifier, joined today.
func NewMember(name, cni, phone string) *Member {
	return &Member{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		CNI:      strings.TrimSpace(cni),
		Phone:    strings.TrimSpace(phone),
		JoinedAt: Today(),
	}
}

// Validate checks the member's own fields, not registry-wide uniqueness.
func (m *Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: member has no id", ErrValidation)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: member has no name", ErrValidation)
	}
	if m.CNI == "" {
		return fmt.Errorf("%w: member %q has no national identity number", ErrValidation, m.Name)
	}
	return nil
}

func (m *Member) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("name", m.Name)
	w.Append("cni", m.CNI)
	w.Optional("phone", m.Phone)
	w.Optional("email", m.Email)
	w.Optional("address", m.Address)
	w.Optional("joinedAt", m.JoinedAt)
	return w.MarshalJSON()
}

func (m *Member) UnmarshalJSON(b []byte) error {
	var temp struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		CNI      string `json:"cni"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Address  string `json:"address"`
		JoinedAt Date   `json:"joinedAt"`
	}
	if err := json.Unmarshal(b, &temp); err != nil {
		return err
	}
	m.ID = temp.ID
	m.Name = temp.Name
	m.CNI = temp.CNI
	m.Phone = temp.Phone
	m.Email = temp.Email
	m.Address = temp.Address
	m.JoinedAt = temp.JoinedAt
	return nil
}
