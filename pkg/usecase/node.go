package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/interfaces"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// ErrTagUnknownLoadOptions marks a dynamic option method the node does not provide
var ErrTagUnknownLoadOptions = goerr.NewTag("unknown_load_options")

// Node implements NodeUseCase on top of a MailerLite client
type Node struct {
	client      interfaces.MailerLite
	description *model.NodeDescription
	credential  *model.CredentialDescription
}

var _ NodeUseCase = (*Node)(nil)

// NewNode creates a new Node
func NewNode(client interfaces.MailerLite) *Node {
	return &Node{
		client:      client,
		description: model.NewNodeDescription(),
		credential:  model.NewCredentialDescription(),
	}
}

// Description returns the node metadata
func (u *Node) Description() *model.NodeDescription {
	return u.description
}

// CredentialDescription returns the credential type metadata
func (u *Node) CredentialDescription() *model.CredentialDescription {
	return u.credential
}

// Dispatch runs one operation for one item. getGroups returns the listing
// unprojected; addSubscriber returns the created subscriber.
func (u *Node) Dispatch(ctx context.Context, op types.Operation, cred model.Credential, item model.InvocationItem) (json.RawMessage, error) {
	switch op {
	case types.OperationGetGroups:
		return u.client.ListGroupsRaw(ctx, cred)
	case types.OperationAddSubscriber:
		return u.client.AddSubscriber(ctx, cred, item.SubscriptionRequest())
	default:
		return nil, goerr.New("unsupported operation",
			goerr.V("operation", op.String()),
			goerr.T(types.ErrTagUnsupportedOperation))
	}
}

// Execute processes items strictly in input order. Result i belongs to item i.
// The first failure aborts the batch; results of the items before it are
// returned along with a *model.NodeAPIError.
func (u *Node) Execute(ctx context.Context, cred model.Credential, items []model.InvocationItem) ([]model.ExecutionResult, error) {
	execID := types.NewExecutionID()
	logger := ctxlog.From(ctx).With(
		slog.String("execution_id", execID.String()),
		slog.String("node", u.description.Name),
	)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Executing node",
		slog.Int("items", len(items)),
		slog.Any("credential", cred),
	)

	results := make([]model.ExecutionResult, 0, len(items))
	for i, item := range items {
		op, err := types.ParseOperation(item.Operation)
		if err != nil {
			return results, u.classify(i, "", err)
		}

		resp, err := u.Dispatch(ctx, op, cred, item)
		if err != nil {
			return results, u.classify(i, op, err)
		}

		results = append(results, model.ExecutionResult{JSON: resp})
		logger.Debug("Item processed",
			slog.Int("index", i),
			slog.String("operation", op.String()),
		)
	}

	logger.Info("Node execution completed", slog.Int("results", len(results)))
	return results, nil
}

func (u *Node) classify(index int, op types.Operation, err error) error {
	return &model.NodeAPIError{
		Node:      u.description.Name,
		ItemIndex: index,
		Operation: op,
		Err:       err,
	}
}

// LoadOptions populates the group selector. getGroups is the only method.
func (u *Node) LoadOptions(ctx context.Context, method string, cred model.Credential) ([]model.GroupOption, error) {
	if method != model.LoadOptionsGetGroups {
		return nil, goerr.New("unknown load options method",
			goerr.V("method", method),
			goerr.T(ErrTagUnknownLoadOptions))
	}

	return u.client.ListGroups(ctx, cred)
}

// TestCredential runs the credential probe and reports the outcome
func (u *Node) TestCredential(ctx context.Context, cred model.Credential) *model.CredentialTestResult {
	if err := u.client.TestCredential(ctx, cred); err != nil {
		ctxlog.From(ctx).Info("Credential test failed", "error", err)
		return &model.CredentialTestResult{
			Status:  model.CredentialTestError,
			Message: err.Error(),
		}
	}

	return &model.CredentialTestResult{
		Status:  model.CredentialTestOK,
		Message: "Connection successful",
	}
}
