package services

import (
	"context"
	"testing"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/config"
	"github.com/smrc/smrc-cli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_RequiresSession(t *testing.T) {
	svc := NewAccountService(&fakeClient{}, setupStore(t, setupRepo(t)))
	ctx := context.Background()

	_, err := svc.Details(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
	_, err = svc.UpdateDetails(ctx, client.AccountDetails{})
	require.ErrorIs(t, err, common.ErrNoSession)
	_, err = svc.ListAccounts(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestAccountService_DetailsUseAccountID(t *testing.T) {
	store := setupStore(t, setupRepo(t))
	ctx := context.Background()
	require.NoError(t, store.SetFromToken(ctx, makeToken(t, "")))

	fc := &fakeClient{DetailsRet: &client.AccountDetails{City: "Natal"}}
	svc := NewAccountService(fc, store)

	d, err := svc.Details(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Natal", d.City)
	assert.Equal(t, "acc-1", fc.LastDetailsID)

	_, err = svc.UpdateDetails(ctx, client.AccountDetails{Phone: "84 9999"})
	require.NoError(t, err)
	assert.Equal(t, "84 9999", fc.LastUpdate.Phone)
}

func TestAccountService_ListAccountsAuthorityOnly(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{AccountsRet: []client.Account{{ID: "a"}}}

	citizen := setupStore(t, setupRepo(t))
	require.NoError(t, citizen.SetFromToken(ctx, makeToken(t, "")))
	_, err := NewAccountService(fc, citizen).ListAccounts(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	authority := setupStore(t, setupRepo(t))
	require.NoError(t, authority.SetFromToken(ctx, makeToken(t, config.DefaultAuthorityGroupID)))
	accounts, err := NewAccountService(fc, authority).ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountService_Groups(t *testing.T) {
	fc := &fakeClient{GroupsRet: []client.AccountGroup{{ID: "g1", Name: "Cidadão"}}}
	groups, err := NewAccountService(fc, setupStore(t, setupRepo(t))).Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cidadão", groups[0].Name)
}
