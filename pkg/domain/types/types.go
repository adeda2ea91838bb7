package types

import (
	"fmt"

	"github.com/google/uuid"
)

// APIKey is a MailerLite API token. It is never logged.
type APIKey string

// String returns the string representation
func (k APIKey) String() string {
	return string(k)
}

// Masked returns a redacted form safe for logs
func (k APIKey) Masked() string {
	if len(k) <= 4 {
		return "****"
	}
	return "****" + string(k[len(k)-4:])
}

// GroupID represents a MailerLite group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// Email represents a subscriber email address. Format is validated remotely.
type Email string

// String returns the string representation
func (e Email) String() string {
	return string(e)
}

// ExecutionID identifies one batch execution
type ExecutionID string

// String returns the string representation
func (id ExecutionID) String() string {
	return string(id)
}

// NewExecutionID creates a new ExecutionID
func NewExecutionID() ExecutionID {
	return ExecutionID(fmt.Sprintf("exec-%s", uuid.New().String()))
}
