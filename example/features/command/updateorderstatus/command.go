package updateorderstatus

import (
	"time"

	"github.com/google/uuid"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

const (
	commandType = "UpdateOrderStatus"
)

// Command represents the intent to move an order to a new lifecycle status.
type Command struct {
	OrderID    core.OrderIDString
	NewStatus  core.OrderStatus
	CommandID  uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	orderID core.OrderIDString,
	newStatus core.OrderStatus,
	occurredAt time.Time,
) Command {

	return Command{
		OrderID:    orderID,
		NewStatus:  newStatus,
		CommandID:  uuid.New(),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
