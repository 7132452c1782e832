package client

import "context"

type Client interface {
	Login(ctx context.Context, email string, password []byte) (*LoginResponse, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	GetAccountDetails(ctx context.Context, accountID string) (*AccountDetails, error)
	UpdateAccountDetails(ctx context.Context, accountID string, details AccountDetails) (*AccountDetails, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	ListAccountGroups(ctx context.Context) ([]AccountGroup, error)
	ListOcorrencias(ctx context.Context, q OcorrenciaQuery) (*OcorrenciaPage, error)
}

// TokenSource yields the bearer token for the next request; "" sends none.
type TokenSource func() string
