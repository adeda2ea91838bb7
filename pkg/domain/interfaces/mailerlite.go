package interfaces

//go:generate moq -out mocks/mailerlite_mock.go -pkg mocks . MailerLite

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/mailnode/pkg/domain/model"
)

// HTTPClient executes outbound requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MailerLite defines the remote operations the node performs
type MailerLite interface {
	// ListGroups fetches groups and projects them into dropdown options
	ListGroups(ctx context.Context, cred model.Credential) ([]model.GroupOption, error)

	// ListGroupsRaw fetches groups and returns the response body unmodified
	ListGroupsRaw(ctx context.Context, cred model.Credential) (json.RawMessage, error)

	// AddSubscriber adds an email address to a group
	AddSubscriber(ctx context.Context, cred model.Credential, req model.SubscriptionRequest) (json.RawMessage, error)

	// TestCredential probes the API to check the key is accepted
	TestCredential(ctx context.Context, cred model.Credential) error
}
