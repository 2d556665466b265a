package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReturnReasonModel mirrors the 'return_reasons' table. Reasons are
// self-referential: a child refines its parent via ParentReturnReasonID.
type ReturnReasonModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Value                string     `gorm:"type:varchar(255);unique;not null"`
	Label                string     `gorm:"type:varchar(255);not null"`
	Description          string     `gorm:"type:text"`
	ParentReturnReasonID *uuid.UUID `gorm:"type:uuid;index"`
	Metadata             datatypes.JSONMap
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time `gorm:"index"`

	ParentReturnReason   *ReturnReasonModel   `gorm:"foreignKey:ParentReturnReasonID"`
	ReturnReasonChildren []*ReturnReasonModel `gorm:"foreignKey:ParentReturnReasonID"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnReasonModel) TableName() string {
	return "return_reasons"
}
