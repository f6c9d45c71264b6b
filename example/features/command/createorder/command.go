package createorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
)

const (
	commandType = "CreateOrder"
)

// ItemInput describes one order line of the command.
type ItemInput struct {
	ProductID   core.ProductIDString
	ProductName string
	UnitPrice   core.Money
	Quantity    int
}

// Command represents the intent to create and confirm an order for a customer.
// CommandID identifies this command instance for correlation; it carries no
// idempotency semantics.
type Command struct {
	CustomerID core.CustomerIDString
	Items      []ItemInput
	CommandID  uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	customerID core.CustomerIDString,
	items []ItemInput,
	occurredAt time.Time,
) Command {

	return Command{
		CustomerID: customerID,
		Items:      items,
		CommandID:  uuid.New(),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
