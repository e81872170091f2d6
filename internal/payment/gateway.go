package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDeclined is returned when the gateway refuses the charge.
var ErrDeclined = errors.New("payment declined")

// Gateway is the external payment collaborator. The core consumes only
// the success outcome plus a transaction reference; protocol details
// live behind this interface.
type Gateway interface {
	Charge(ctx context.Context, amountCents int64) (string, error)
}

// Sandbox approves every charge and mints a reference. It stands in for
// a real provider in development and tests.
type Sandbox struct{}

func (Sandbox) Charge(_ context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", ErrDeclined
	}
	return fmt.Sprintf("SBX-%s", uuid.NewString()), nil
}
