package session

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an account identifier. The API sends identifiers either as JSON
// strings or numbers; both decode into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// AccountGroup describes the group an account belongs to.
type AccountGroup struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile is the user profile cached from the token's "data" member.
type Profile struct {
	ID             ID            `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	AccountID      ID            `json:"account_id"`
	AccountGroupID string        `json:"account_group_id,omitempty"`
	AccountGroup   *AccountGroup `json:"account_group,omitempty"`
}

// profileFromData maps the token's data object onto Profile. Members other
// than the profile fields are ignored.
func profileFromData(data json.RawMessage) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
