package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

func TestNodeDescription(t *testing.T) {
	desc := model.NewNodeDescription()

	t.Run("operation lists every known operation", func(t *testing.T) {
		op := desc.Property("operation")
		gt.V(t, op).NotNil()
		gt.Equal(t, types.OperationGetGroups.String(), op.Default)
		gt.A(t, op.Options).Length(len(types.AllOperations()))
		for i, o := range types.AllOperations() {
			gt.Equal(t, o.String(), op.Options[i].Value)
		}
	})

	t.Run("group selector is populated dynamically", func(t *testing.T) {
		group := desc.Property("groupId")
		gt.V(t, group).NotNil()
		gt.V(t, group.TypeOptions).NotNil()
		gt.Equal(t, model.LoadOptionsGetGroups, group.TypeOptions.LoadOptionsMethod)
	})

	t.Run("subscriber fields only shown for addSubscriber", func(t *testing.T) {
		for _, name := range []string{"groupId", "email"} {
			p := desc.Property(name)
			gt.V(t, p).NotNil()
			gt.True(t, p.VisibleFor(types.OperationAddSubscriber))
			gt.False(t, p.VisibleFor(types.OperationGetGroups))
		}
		gt.True(t, desc.Property("operation").VisibleFor(types.OperationGetGroups))
	})

	t.Run("email is required free text", func(t *testing.T) {
		email := desc.Property("email")
		gt.True(t, email.Required)
		gt.Equal(t, model.PropertyTypeString, email.Type)
	})

	t.Run("unknown property", func(t *testing.T) {
		gt.Nil(t, desc.Property("missing"))
	})
}

func TestCredentialDescription(t *testing.T) {
	desc := model.NewCredentialDescription()
	gt.Equal(t, model.CredentialName, desc.Name)
	gt.A(t, desc.Properties).Length(1)
	gt.Equal(t, "apiKey", desc.Properties[0].Name)
	gt.True(t, desc.Properties[0].TypeOptions.Password)
	gt.Equal(t, "/subscribers", desc.Test.URL)
	gt.Equal(t, "GET", desc.Test.Method)
}
