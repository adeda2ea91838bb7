package usecase

import (
	"context"
	"encoding/json"

	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// NodeUseCase defines the operations the host invokes on the node
type NodeUseCase interface {
	// Description returns the node metadata
	Description() *model.NodeDescription

	// CredentialDescription returns the credential type metadata
	CredentialDescription() *model.CredentialDescription

	// Dispatch runs one operation for one item
	Dispatch(ctx context.Context, op types.Operation, cred model.Credential, item model.InvocationItem) (json.RawMessage, error)

	// Execute runs every item sequentially and stops at the first failure
	Execute(ctx context.Context, cred model.Credential, items []model.InvocationItem) ([]model.ExecutionResult, error)

	// LoadOptions populates a dynamic option list
	LoadOptions(ctx context.Context, method string, cred model.Credential) ([]model.GroupOption, error)

	// TestCredential validates a credential against the remote API
	TestCredential(ctx context.Context, cred model.Credential) *model.CredentialTestResult
}
