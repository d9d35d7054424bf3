package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gridnode.dev/launcher/internal/entity"
)

const databaseFileName = "nodes.sqlite"

type SQLiteDelegate struct {
	BasePath string
	database *gorm.DB
}

func (sqliteDelegate *SQLiteDelegate) Open() (err error) {
	if err = os.MkdirAll(sqliteDelegate.BasePath, 0755); err != nil {
		return
	}
	dialector := sqlite.Open(filepath.Join(sqliteDelegate.BasePath, databaseFileName))
	if sqliteDelegate.database, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Migrate() error {
	if sqliteDelegate.database == nil {
		return errors.New("the registry database is not open")
	}
	return sqliteDelegate.database.AutoMigrate(&entity.Node{})
}

func (sqliteDelegate *SQLiteDelegate) Close() (err error) {
	if sqliteDelegate.database == nil {
		return
	}
	var database *sql.DB
	if database, err = sqliteDelegate.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Insert(node *entity.Node) error {
	if result := sqliteDelegate.database.Create(node); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) Update(node *entity.Node) error {
	if result := sqliteDelegate.database.Save(node); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) DeleteAll() error {
	if result := sqliteDelegate.database.Where("1 = 1").Delete(&entity.Node{}); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) List() (nodes []entity.Node, err error) {
	if result := sqliteDelegate.database.Find(&nodes); result.Error != nil {
		err = result.Error
	}
	return
}
