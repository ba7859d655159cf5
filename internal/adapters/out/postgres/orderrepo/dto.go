// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer contact is stored denormalized. Status and payment method are
// stored by name; created_at keeps the canonical Timestamp text, whose lexical
// order is chronological.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	CustomerEmail   string          `gorm:"type:varchar(320);not null;index"`
	CustomerPhone   string          `gorm:"type:varchar(64);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	PaymentMethod   string          `gorm:"type:varchar(32);not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalQuantity   int             `gorm:"type:int;not null"`
	CreatedAt       string          `gorm:"type:varchar(40);not null;index;autoCreateTime:false"`
	UpdatedAt       string          `gorm:"type:varchar(40);not null;autoUpdateTime:false"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the insertion order of the items.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"type:int;primaryKey"`
	ProductID   string          `gorm:"type:varchar(255);not null"`
	ProductName string          `gorm:"type:varchar(255);not null;default:''"`
	Quantity    int             `gorm:"type:int;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	contact := aggregate.Contact()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			Position:    i,
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerName:    contact.Name(),
		CustomerEmail:   contact.Email().String(),
		CustomerPhone:   contact.Phone(),
		DeliveryAddress: contact.Address(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		TotalQuantity:   aggregate.TotalQuantity(),
		CreatedAt:       aggregate.CreatedAt().String(),
		UpdatedAt:       aggregate.UpdatedAt().String(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Unknown status or payment method names are kept as Unknown values and the
// timestamps are not parsed here, so corrupt rows still reach the read paths.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.ProductID,
			item.ProductName,
			item.Quantity,
			kernel.NewMoney(item.Price),
		))
	}

	contact := kernel.RestoreContact(
		dto.CustomerName,
		kernel.RestoreEmail(dto.CustomerEmail),
		dto.CustomerPhone,
		dto.DeliveryAddress,
	)

	return order.RestoreOrder(
		id,
		contact,
		items,
		order.PaymentMethodFromStored(dto.PaymentMethod),
		kernel.NewMoney(dto.TotalAmount),
		dto.TotalQuantity,
		order.StatusFromStored(dto.Status),
		kernel.RestoreTimestamp(dto.CreatedAt),
		kernel.RestoreTimestamp(dto.UpdatedAt),
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
