// Package mysql owns the database connection and schema lifecycle:
// opening the GORM handle, migrating tables, seeding the static role
// lookup and handing out the repository layer.
package mysql

import (
	"fmt"

	"midas_family_server/internal/config"
	"midas_family_server/internal/dao/mysql/repository"
	"midas_family_server/internal/model"
	"midas_family_server/pkg/enum/family/family_role_enum"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the MySQL connection, migrates the schema and returns the
// repository aggregate. Fatal on failure; the service cannot run without
// its store.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	if err := Migrate(db); err != nil {
		zap.L().Fatal(err.Error())
	}

	return repository.NewRepositories(db)
}

// Migrate creates or updates the tables and seeds the family_role lookup.
// Safe to run repeatedly; seeding is idempotent.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Family{},
		&model.FamilyRole{},
		&model.UserFamilyRole{},
	)
	if err != nil {
		return err
	}
	return seedFamilyRoles(db)
}

func seedFamilyRoles(db *gorm.DB) error {
	for _, id := range []uint64{
		family_role_enum.MainAdministrator,
		family_role_enum.Parent,
		family_role_enum.Child,
	} {
		role := model.FamilyRole{Id: id, Name: family_role_enum.DisplayNames[id]}
		if err := db.Where(model.FamilyRole{Id: id}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
