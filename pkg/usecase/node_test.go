package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mailnode/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
	"github.com/secmon-lab/mailnode/pkg/service/mailerlite"
	"github.com/secmon-lab/mailnode/pkg/usecase"
)

const rawGroups = `{"data":[{"id":"g1","name":"Customers"}]}`

func newMockClient() *mocks.MailerLiteMock {
	return &mocks.MailerLiteMock{
		ListGroupsRawFunc: func(ctx context.Context, cred model.Credential) (json.RawMessage, error) {
			return json.RawMessage(rawGroups), nil
		},
		ListGroupsFunc: func(ctx context.Context, cred model.Credential) ([]model.GroupOption, error) {
			return []model.GroupOption{{Name: "Customers", Value: "g1"}}, nil
		},
		AddSubscriberFunc: func(ctx context.Context, cred model.Credential, req model.SubscriptionRequest) (json.RawMessage, error) {
			return json.RawMessage(`{"data":{"email":"` + req.Email.String() + `"}}`), nil
		},
		TestCredentialFunc: func(ctx context.Context, cred model.Credential) error {
			return nil
		},
	}
}

func TestNodeExecute(t *testing.T) {
	ctx := context.Background()
	cred := model.NewCredential("key")

	t.Run("one result per item in input order", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		items := []model.InvocationItem{
			{Operation: "addSubscriber", GroupID: "g1", Email: "first@example.com"},
			{Operation: "getGroups"},
			{Operation: "addSubscriber", GroupID: "g1", Email: "third@example.com"},
		}

		results, err := node.Execute(ctx, cred, items)
		gt.NoError(t, err).Required()
		gt.A(t, results).Length(3)
		gt.Equal(t, `{"data":{"email":"first@example.com"}}`, string(results[0].JSON))
		gt.Equal(t, rawGroups, string(results[1].JSON))
		gt.Equal(t, `{"data":{"email":"third@example.com"}}`, string(results[2].JSON))

		calls := client.AddSubscriberCalls()
		gt.A(t, calls).Length(2)
		gt.Equal(t, types.Email("first@example.com"), calls[0].Req.Email)
		gt.Equal(t, types.Email("third@example.com"), calls[1].Req.Email)
		gt.Equal(t, types.GroupID("g1"), calls[0].Req.GroupID)
		gt.Equal(t, cred, calls[0].Cred)
		gt.A(t, client.ListGroupsRawCalls()).Length(1)
	})

	t.Run("missing operation defaults to getGroups", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		results, err := node.Execute(ctx, cred, []model.InvocationItem{{}})
		gt.NoError(t, err)
		gt.A(t, results).Length(1)
		gt.A(t, client.ListGroupsRawCalls()).Length(1)
	})

	t.Run("getGroups result is never projected", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		results, err := node.Execute(ctx, cred, []model.InvocationItem{{Operation: "getGroups"}})
		gt.NoError(t, err)
		gt.Equal(t, rawGroups, string(results[0].JSON))
		gt.A(t, client.ListGroupsCalls()).Length(0)
	})

	t.Run("empty batch", func(t *testing.T) {
		node := usecase.NewNode(newMockClient())
		results, err := node.Execute(ctx, cred, nil)
		gt.NoError(t, err)
		gt.A(t, results).Length(0)
	})

	t.Run("first failure aborts the batch", func(t *testing.T) {
		client := newMockClient()
		apiErr := goerr.New("MailerLite returned an error status",
			goerr.V("status", 422),
			goerr.T(model.ErrTagAPI))
		client.AddSubscriberFunc = func(ctx context.Context, cred model.Credential, req model.SubscriptionRequest) (json.RawMessage, error) {
			if req.Email == "bad" {
				return nil, apiErr
			}
			return json.RawMessage(`{}`), nil
		}
		node := usecase.NewNode(client)

		items := []model.InvocationItem{
			{Operation: "addSubscriber", GroupID: "g1", Email: "ok@example.com"},
			{Operation: "addSubscriber", GroupID: "g1", Email: "bad"},
			{Operation: "addSubscriber", GroupID: "g1", Email: "never@example.com"},
		}

		results, err := node.Execute(ctx, cred, items)
		gt.Error(t, err)
		gt.A(t, results).Length(1)
		gt.A(t, client.AddSubscriberCalls()).Length(2)

		var nodeErr *model.NodeAPIError
		gt.True(t, errors.As(err, &nodeErr))
		gt.Equal(t, 1, nodeErr.ItemIndex)
		gt.Equal(t, model.NodeName, nodeErr.Node)
		gt.Equal(t, types.OperationAddSubscriber, nodeErr.Operation)
		gt.True(t, errors.Is(err, apiErr))
		gt.B(t, goerr.HasTag(err, model.ErrTagAPI)).True()
	})

	t.Run("unknown operation aborts with explicit error", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		items := []model.InvocationItem{
			{Operation: "getGroups"},
			{Operation: "removeSubscriber"},
			{Operation: "getGroups"},
		}

		results, err := node.Execute(ctx, cred, items)
		gt.Error(t, err)
		gt.A(t, results).Length(1)
		gt.B(t, goerr.HasTag(err, types.ErrTagUnsupportedOperation)).True()
		gt.A(t, client.ListGroupsRawCalls()).Length(1)

		var nodeErr *model.NodeAPIError
		gt.True(t, errors.As(err, &nodeErr))
		gt.Equal(t, 1, nodeErr.ItemIndex)
	})
}

func TestNodeDispatch(t *testing.T) {
	ctx := context.Background()
	node := usecase.NewNode(newMockClient())

	_, err := node.Dispatch(ctx, types.Operation("bogus"), model.NewCredential("key"), model.InvocationItem{})
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, types.ErrTagUnsupportedOperation)).True()
}

func TestNodeLoadOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("getGroups returns projected options", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		options, err := node.LoadOptions(ctx, "getGroups", model.NewCredential("key"))
		gt.NoError(t, err)
		gt.A(t, options).Length(1)
		gt.Equal(t, "g1", options[0].Value)
		gt.A(t, client.ListGroupsCalls()).Length(1)
	})

	t.Run("unknown method", func(t *testing.T) {
		client := newMockClient()
		node := usecase.NewNode(client)

		_, err := node.LoadOptions(ctx, "getFields", model.NewCredential("key"))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, usecase.ErrTagUnknownLoadOptions)).True()
		gt.A(t, client.ListGroupsCalls()).Length(0)
	})
}

func TestNodeTestCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("valid key", func(t *testing.T) {
		node := usecase.NewNode(newMockClient())
		result := node.TestCredential(ctx, model.NewCredential("key"))
		gt.Equal(t, model.CredentialTestOK, result.Status)
	})

	t.Run("rejected key", func(t *testing.T) {
		client := newMockClient()
		client.TestCredentialFunc = func(ctx context.Context, cred model.Credential) error {
			return goerr.New("MailerLite returned an error status", goerr.T(model.ErrTagAPI))
		}
		node := usecase.NewNode(client)

		result := node.TestCredential(ctx, model.NewCredential("bad"))
		gt.Equal(t, model.CredentialTestError, result.Status)
		gt.S(t, result.Message).Contains("error status")
	})
}

func TestNodeExecuteAgainstHTTP(t *testing.T) {
	var (
		method, path, auth, body string
		requests                 int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		method = r.Method
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"s9","email":"a@example.com"}}`))
	}))
	defer srv.Close()

	node := usecase.NewNode(mailerlite.New(mailerlite.WithBaseURL(srv.URL)))
	results, err := node.Execute(context.Background(), model.NewCredential("api-key"), []model.InvocationItem{
		{Operation: "addSubscriber", GroupID: "g1", Email: "a@example.com"},
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, 1, requests)
	gt.Equal(t, http.MethodPost, method)
	gt.Equal(t, "/groups/g1/subscribers", path)
	gt.Equal(t, "Bearer api-key", auth)
	gt.Equal(t, `{"email":"a@example.com"}`, body)
	gt.Equal(t, `{"data":{"id":"s9","email":"a@example.com"}}`, string(results[0].JSON))
}
