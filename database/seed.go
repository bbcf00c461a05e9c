// file: database/seed.go
package database

import (
	"log"
	"os"

	"GOTCTF/models"

	"gorm.io/gorm"
)

// SeedAdmin 用环境变量引导管理员账号。管理员是一条普通的队伍记录，
// 和参赛队走同一条 bcrypt 哈希与登录路径，不再有硬编码的旁路账号。
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap.")
		return
	}

	var existing models.Team
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return // 已存在，不重复播种
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Admin bootstrap lookup failed: %v", err)
		return
	}

	admin := models.Team{
		TeamName:    "GOTCTF Admin",
		Email:       email,
		Password:    password,
		TeamMember1: "-",
		TeamMember2: "-",
		TeamMember3: "-",
		CollegeName: "-",
		Role:        models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Admin bootstrap failed: %v", err)
		return
	}
	log.Printf("Admin account seeded for %s", email)
}
