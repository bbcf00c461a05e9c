// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"GOTCTF/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

// Connect 建立 MySQL 连接。DSN 只从环境变量读取，不提供编译期兜底值，
// 缺失或连不上一律 Fatal 退出。
func Connect() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Fatal("MYSQL_DSN is not set; refusing to start without a database")
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池配置。ConnMaxLifetime 设为 1 小时以规避 MySQL 的 wait_timeout。
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// LockForUpdate 仅在方言支持时追加 FOR UPDATE。
// 单测跑在 SQLite 上，它本身就是单写者，不需要也不认识行锁。
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// MigrateTables 自动建表
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Team{},
		&models.Solve{},
		&models.AttemptLog{},
		&models.GameState{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
