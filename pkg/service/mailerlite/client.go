package mailerlite

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/interfaces"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
)

var _ interfaces.MailerLite = (*Service)(nil)

// Service performs one HTTP request per call against the MailerLite API
type Service struct {
	baseURL    string
	httpClient interfaces.HTTPClient
}

// Option configures a Service
type Option func(*Service)

// WithBaseURL overrides the API root
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the client used to execute requests
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// New creates a new MailerLite service
func New(opts ...Option) *Service {
	s := &Service{
		baseURL:    model.DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListGroups fetches groups and projects each into {name, value: id}
func (s *Service) ListGroups(ctx context.Context, cred model.Credential) ([]model.GroupOption, error) {
	body, err := s.ListGroupsRaw(ctx, cred)
	if err != nil {
		return nil, err
	}

	var list model.GroupList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, goerr.Wrap(err, "failed to parse group list",
			goerr.V("body", string(body)),
			goerr.T(model.ErrTagAPI))
	}
	if list.Data == nil {
		return nil, goerr.New("group list has no data field",
			goerr.V("body", string(body)),
			goerr.T(model.ErrTagAPI))
	}

	return list.Options(), nil
}

// ListGroupsRaw fetches groups and returns the response body unmodified
func (s *Service) ListGroupsRaw(ctx context.Context, cred model.Credential) (json.RawMessage, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	return s.do(ctx, cred, http.MethodGet, "/groups", nil)
}

// AddSubscriber adds an email address to a group
func (s *Service) AddSubscriber(ctx context.Context, cred model.Credential, req model.SubscriptionRequest) (json.RawMessage, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	path := "/groups/" + url.PathEscape(req.GroupID.String()) + "/subscribers"
	return s.do(ctx, cred, http.MethodPost, path, req.Body())
}

// TestCredential probes GET /subscribers. Any 2xx response means the key is valid.
func (s *Service) TestCredential(ctx context.Context, cred model.Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}
	_, err := s.send(ctx, cred, http.MethodGet, "/subscribers", nil)
	return err
}

// do sends the request and checks the response body is JSON
func (s *Service) do(ctx context.Context, cred model.Credential, method, path string, payload any) (json.RawMessage, error) {
	body, err := s.send(ctx, cred, method, path, payload)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, goerr.New("MailerLite returned a non-JSON body",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("body", string(body)),
			goerr.T(model.ErrTagAPI))
	}

	return json.RawMessage(body), nil
}

func (s *Service) send(ctx context.Context, cred model.Credential, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body",
				goerr.V("path", path),
				goerr.T(model.ErrTagAPI))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.T(model.ErrTagAPI))
	}
	req.Header.Set("Authorization", cred.BearerToken())
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := ctxlog.From(ctx)
	logger.Debug("MailerLite request",
		"method", method,
		"path", path,
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send request to MailerLite",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.T(model.ErrTagAPI))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read MailerLite response",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagAPI))
	}

	logger.Debug("MailerLite response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("MailerLite returned an error status",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.T(model.ErrTagAPI))
	}

	return body, nil
}
