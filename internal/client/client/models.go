package client

import (
	"bytes"
	"encoding/json"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of POST /accounts/login. User is kept raw: the
// session profile is derived from the token, not from this member.
type LoginResponse struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

type AccountGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Account struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	CPF            string        `json:"cpf"`
	Birthday       string        `json:"birthday"`
	AccountGroupID string        `json:"account_group_id"`
	AccountGroup   *AccountGroup `json:"account_group,omitempty"`
	CreatedAt      string        `json:"created_at,omitempty"`
	UpdatedAt      string        `json:"updated_at,omitempty"`
}

type CreateAccountRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	CPF            string `json:"cpf"`
	Birthday       string `json:"birthday"`
	AccountGroupID string `json:"account_group_id"`
	Password       string `json:"password"`
}

type AccountDetails struct {
	Street string `json:"street"`
	City   string `json:"city"`
	CEP    string `json:"cep"`
	Phone  string `json:"phone"`
}

// Ocorrencia is an incident report.
type Ocorrencia struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	AccountID   string   `json:"account_id"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// OcorrenciaQuery selects a page of ocorrências. Page is 1-based; zero
// values fall back to page 1 and DefaultPageSize.
type OcorrenciaQuery struct {
	Page      int
	PageSize  int
	AccountID string
}

const DefaultPageSize = 5

type OcorrenciaPage struct {
	Items []Ocorrencia `json:"data"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Total int          `json:"total"`
}

// UnmarshalJSON accepts either the paginated envelope or a bare array.
func (p *OcorrenciaPage) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Ocorrencia
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*p = OcorrenciaPage{Items: items, Total: len(items)}
		return nil
	}
	type envelope OcorrenciaPage
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	*p = OcorrenciaPage(e)
	return nil
}
