package editor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-composer/internal/model"
)

// CommandKind identifies a line-item edit.
type CommandKind string

const (
	CommandAdd               CommandKind = "add"
	CommandRemove            CommandKind = "remove"
	CommandUpdateDescription CommandKind = "update_description"
	CommandUpdateQuantity    CommandKind = "update_quantity"
	CommandUpdateRate        CommandKind = "update_rate"
)

// Command is one user edit as a plain value. The editing surface emits
// commands in response to input events; Apply folds them into snapshots,
// which makes batching, replay, and undo straightforward.
type Command struct {
	Kind     CommandKind
	TargetID uuid.UUID
	Text     string
	Value    decimal.Decimal
}

// Apply produces the next invoice snapshot for cmd.
func Apply(inv model.Invoice, cmd Command) (model.Invoice, error) {
	switch cmd.Kind {
	case CommandAdd:
		next, _ := AddLineItem(inv)
		return next, nil
	case CommandRemove:
		return RemoveLineItem(inv, cmd.TargetID)
	case CommandUpdateDescription:
		return UpdateDescription(inv, cmd.TargetID, cmd.Text)
	case CommandUpdateQuantity:
		return UpdateQuantity(inv, cmd.TargetID, cmd.Value)
	case CommandUpdateRate:
		return UpdateRate(inv, cmd.TargetID, cmd.Value)
	default:
		return inv, fmt.Errorf("unknown command kind %q", cmd.Kind)
	}
}
