package model

// FamilyRole is a static lookup row. Exactly three exist: Main
// administrator (1), Parent (2), Child (3). Seeded during store init and
// immutable afterwards.
type FamilyRole struct {
	Id   uint64 `gorm:"column:id;primaryKey;comment:role id"`
	Name string `gorm:"column:name;type:varchar(50);not null;comment:role name"`
}

func (FamilyRole) TableName() string {
	return "family_role"
}
