package services

import (
	"context"

	"github.com/smrc/smrc-cli/internal/client/client"
	"github.com/smrc/smrc-cli/internal/client/session"
	"github.com/smrc/smrc-cli/internal/common"
)

// OcorrenciaService lists incident reports. Citizens only see their own;
// authority profiles see every report.
type OcorrenciaService interface {
	List(ctx context.Context, page, pageSize int) (*client.OcorrenciaPage, error)
}

type ocorrenciaService struct {
	client client.Client
	store  *session.Store
}

func NewOcorrenciaService(c client.Client, store *session.Store) OcorrenciaService {
	return &ocorrenciaService{client: c, store: store}
}

func (s *ocorrenciaService) List(ctx context.Context, page, pageSize int) (*client.OcorrenciaPage, error) {
	p, ok := s.store.Profile()
	if !ok {
		return nil, common.ErrNoSession
	}

	q := client.OcorrenciaQuery{Page: page, PageSize: pageSize}
	if !s.store.IsAuthority() {
		q.AccountID = p.AccountID.String()
		if q.AccountID == "" {
			q.AccountID = p.ID.String()
		}
	}
	return s.client.ListOcorrencias(ctx, q)
}
