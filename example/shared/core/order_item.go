package core

// OrderItem is an entity owned exclusively by an Order. It is never shared
// across aggregates and is only mutated through the owning Order's methods.
type OrderItem struct {
	productID   ProductIDString
	productName string
	unitPrice   Money
	quantity    int
}

// BuildOrderItem creates an OrderItem.
// Returns ErrQuantityNotPositive when quantity is zero or negative.
func BuildOrderItem(productID ProductIDString, productName string, unitPrice Money, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrQuantityNotPositive
	}

	return OrderItem{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// ProductID returns the product identifier this line refers to.
func (i OrderItem) ProductID() ProductIDString {
	return i.productID
}

// ProductName returns the display name captured at ordering time.
func (i OrderItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the per-unit price.
func (i OrderItem) UnitPrice() Money {
	return i.unitPrice
}

// Quantity returns how many units this line covers.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// TotalPrice is unit price times quantity.
func (i OrderItem) TotalPrice() (Money, error) {
	return i.unitPrice.MultiplyBy(i.quantity)
}

// withQuantity returns a copy of the item with the quantity replaced.
func (i OrderItem) withQuantity(quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrQuantityNotPositive
	}

	updated := i
	updated.quantity = quantity

	return updated, nil
}
