package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/smrc/smrc-cli/internal/common"
)

// maxErrorBody bounds how much of an error response is quoted in errors.
const maxErrorBody = 512

type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewHTTPClient returns a client for the API rooted at baseURL. A nil token
// source sends every request unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*LoginResponse, error) {
	var resp LoginResponse
	req := loginRequest{Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/accounts/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodPost, "/accounts", nil, req, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) GetAccountDetails(ctx context.Context, accountID string) (*AccountDetails, error) {
	var d AccountDetails
	if err := c.do(ctx, http.MethodGet, "/accounts/"+url.PathEscape(accountID)+"/details", nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) UpdateAccountDetails(ctx context.Context, accountID string, details AccountDetails) (*AccountDetails, error) {
	var d AccountDetails
	if err := c.do(ctx, http.MethodPost, "/accounts/"+url.PathEscape(accountID)+"/details", nil, details, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *HTTPClient) ListAccountGroups(ctx context.Context) ([]AccountGroup, error) {
	var groups []AccountGroup
	if err := c.do(ctx, http.MethodGet, "/account-groups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) ListOcorrencias(ctx context.Context, q OcorrenciaQuery) (*OcorrenciaPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.PageSize))
	if q.AccountID != "" {
		params.Set("account_id", q.AccountID)
	}

	var page OcorrenciaPage
	if err := c.do(ctx, http.MethodGet, "/ocurrencies", params, nil, &page); err != nil {
		return nil, err
	}
	if page.Page == 0 {
		page.Page = q.Page
	}
	if page.Limit == 0 {
		page.Limit = q.PageSize
	}
	return &page, nil
}

// do performs one JSON round trip. in is encoded as the request body when
// non-nil; out receives the decoded 2xx body when non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
