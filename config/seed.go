package config

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
)

// Seed creates the first admin account and a trial company row on an empty
// database. The activation code doubles as the initial admin password and
// must be changed after first login.
func Seed(db *gorm.DB, cfg Config) {
	var users int64
	db.Model(&models.User{}).Count(&users)
	if users == 0 {
		password := cfg.AdminActivationCode
		if password == "" {
			password = "admin"
		}
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		admin := models.User{
			Username:     "admin",
			FullName:     "Administrator",
			Role:         models.RoleAdmin,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("seed admin failed: %v", err)
		}
	}

	var companies int64
	db.Model(&models.Company{}).Count(&companies)
	if companies == 0 {
		company := models.Company{
			Name:            "My POS",
			SubscriptionEnd: time.Now().AddDate(0, 1, 0),
			IsActive:        true,
		}
		if err := db.Create(&company).Error; err != nil {
			log.Printf("seed company failed: %v", err)
		}
	}
}
