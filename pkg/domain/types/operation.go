package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ErrTagUnsupportedOperation marks an operation discriminator outside the known set
var ErrTagUnsupportedOperation = goerr.NewTag("unsupported_operation")

// Operation is the node's operation discriminator
type Operation string

const (
	OperationGetGroups     Operation = "getGroups"
	OperationAddSubscriber Operation = "addSubscriber"
)

// DefaultOperation is used when an item does not specify one
const DefaultOperation = OperationGetGroups

// AllOperations returns every known operation in display order
func AllOperations() []Operation {
	return []Operation{OperationGetGroups, OperationAddSubscriber}
}

// String returns the string representation of the operation
func (o Operation) String() string {
	return string(o)
}

// IsValid checks if the operation is one of the known values
func (o Operation) IsValid() bool {
	switch o {
	case OperationGetGroups, OperationAddSubscriber:
		return true
	default:
		return false
	}
}

// ParseOperation converts a raw discriminator into an Operation.
// Empty input yields DefaultOperation.
func ParseOperation(s string) (Operation, error) {
	if s == "" {
		return DefaultOperation, nil
	}

	op := Operation(s)
	if !op.IsValid() {
		return "", goerr.New("unsupported operation",
			goerr.V("operation", s),
			goerr.T(ErrTagUnsupportedOperation))
	}
	return op, nil
}
