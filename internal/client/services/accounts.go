package services

import (
	"context"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/session"
	"github.com/smrc/smrc-cli/internal/common"
)

// AccountService reads and edits account data of the logged-in user.
type AccountService interface {
	Groups(ctx context.Context) ([]client.AccountGroup, error)
	Details(ctx context.Context) (*client.AccountDetails, error)
	UpdateDetails(ctx context.Context, d client.AccountDetails) (*client.AccountDetails, error)
	ListAccounts(ctx context.Context) ([]client.Account, error)
}

type accountService struct {
	client client.Client
	store  *session.Store
}

func NewAccountService(c client.Client, store *session.Store) AccountService {
	return &accountService{client: c, store: store}
}

func (s *accountService) Groups(ctx context.Context) ([]client.AccountGroup, error) {
	return s.client.ListAccountGroups(ctx)
}

func (s *accountService) Details(ctx context.Context) (*client.AccountDetails, error) {
	id, err := s.accountID()
	if err != nil {
		return nil, err
	}
	return s.client.GetAccountDetails(ctx, id)
}

func (s *accountService) UpdateDetails(ctx context.Context, d client.AccountDetails) (*client.AccountDetails, error) {
	id, err := s.accountID()
	if err != nil {
		return nil, err
	}
	return s.client.UpdateAccountDetails(ctx, id, d)
}

// ListAccounts is reserved to authority profiles.
func (s *accountService) ListAccounts(ctx context.Context) ([]client.Account, error) {
	if _, ok := s.store.Profile(); !ok {
		return nil, common.ErrNoSession
	}
	if !s.store.IsAuthority() {
		return nil, common.ErrUnauthorized
	}
	return s.client.ListAccounts(ctx)
}

// accountID prefers the profile's account id and falls back to the user id
// for tokens that omit it.
func (s *accountService) accountID() (string, error) {
	p, ok := s.store.Profile()
	if !ok {
		return "", common.ErrNoSession
	}
	if p.AccountID != "" {
		return p.AccountID.String(), nil
	}
	return p.ID.String(), nil
}
