// Package customerrepo persists the customer aggregate.
package customerrepo

import (
	"mealbox/internal/core/domain/model/customer"
	"mealbox/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customers. Email is unique.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(64);not null"`
	RegisteredAt string    `gorm:"type:varchar(40);not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email().String(),
		Phone:        aggregate.Phone(),
		RegisteredAt: aggregate.RegisteredAt().String(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		kernel.RestoreEmail(dto.Email),
		dto.Phone,
		kernel.RestoreTimestamp(dto.RegisteredAt),
	)
}
