package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// Error tags for categorization
var (
	// ErrTagAPI marks any failure of an outbound MailerLite call: transport
	// error, non-2xx status or a body that is not JSON.
	ErrTagAPI = goerr.NewTag("mailerlite_api")

	// ErrTagInvalidCredential marks a credential rejected before any request is made
	ErrTagInvalidCredential = goerr.NewTag("invalid_credential")

	// ErrTagInvalidParameter marks a node parameter rejected before any request is made
	ErrTagInvalidParameter = goerr.NewTag("invalid_parameter")
)

// NodeAPIError is the classified error surfaced to the host when an item fails.
// It carries the node context and the original cause.
type NodeAPIError struct {
	Node      string
	ItemIndex int
	Operation types.Operation
	Err       error
}

func (e *NodeAPIError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("%s: item %d: %v", e.Node, e.ItemIndex, e.Err)
	}
	return fmt.Sprintf("%s: item %d (%s): %v", e.Node, e.ItemIndex, e.Operation, e.Err)
}

func (e *NodeAPIError) Unwrap() error {
	return e.Err
}
