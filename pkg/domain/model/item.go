package model

import (
	"encoding/json"

	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// InvocationItem is one unit of input supplied by the host. Its fields are the
// node parameters resolved for that item.
type InvocationItem struct {
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
	GroupID   string `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
}

// SubscriptionRequest builds the add-subscriber request for this item
func (i InvocationItem) SubscriptionRequest() SubscriptionRequest {
	return SubscriptionRequest{
		GroupID: types.GroupID(i.GroupID),
		Email:   types.Email(i.Email),
	}
}

// ExecutionResult wraps the remote response for one item
type ExecutionResult struct {
	JSON json.RawMessage `json:"json"`
}
