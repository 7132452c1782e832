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

func TestOcorrenciaService_CitizenSeesOwnReports(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t, setupRepo(t))
	require.NoError(t, store.SetFromToken(ctx, makeToken(t, "")))
	fc := &fakeClient{PageRet: &client.OcorrenciaPage{Items: []client.Ocorrencia{{ID: "o1"}}}}

	page, err := NewOcorrenciaService(fc, store).List(ctx, 2, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, client.OcorrenciaQuery{Page: 2, PageSize: 10, AccountID: "acc-1"}, fc.LastQuery)
}

func TestOcorrenciaService_AuthoritySeesAll(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t, setupRepo(t))
	require.NoError(t, store.SetFromToken(ctx, makeToken(t, config.DefaultAuthorityGroupID)))
	fc := &fakeClient{PageRet: &client.OcorrenciaPage{}}

	_, err := NewOcorrenciaService(fc, store).List(ctx, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, fc.LastQuery.AccountID)
}

func TestOcorrenciaService_RequiresSession(t *testing.T) {
	_, err := NewOcorrenciaService(&fakeClient{}, setupStore(t, setupRepo(t))).List(context.Background(), 1, 5)
	require.ErrorIs(t, err, common.ErrNoSession)
}
