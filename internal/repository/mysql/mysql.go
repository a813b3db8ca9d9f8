package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB 建立 MySQL 连接，句柄由调用方注入到各仓储
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
