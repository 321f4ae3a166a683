package model

import "time"

// Family is a named group of users with one founder. The name is unique
// across all families.
type Family struct {
	Id        uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:family id"`
	Name      string    `gorm:"column:name;type:varchar(100);uniqueIndex;not null;comment:family name"`
	FounderId uint64    `gorm:"column:founder_id;index;not null;comment:founding user id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Family) TableName() string {
	return "family"
}
