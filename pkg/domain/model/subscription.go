package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// SubscriptionRequest asks MailerLite to add an email address to a group
type SubscriptionRequest struct {
	GroupID types.GroupID
	Email   types.Email
}

// Validate checks required fields. The email format is left to MailerLite.
func (r SubscriptionRequest) Validate() error {
	if r.GroupID == "" {
		return goerr.New("group ID is required", goerr.T(ErrTagInvalidParameter))
	}
	if r.Email == "" {
		return goerr.New("email is required", goerr.T(ErrTagInvalidParameter))
	}
	return nil
}

// subscriberBody is the request body of POST /groups/{id}/subscribers
type subscriberBody struct {
	Email string `json:"email"`
}

// Body returns the JSON-serializable request body
func (r SubscriptionRequest) Body() any {
	return subscriberBody{Email: r.Email.String()}
}
