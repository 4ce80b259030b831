package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/justin-mavity/usermodel/config"
	"github.com/justin-mavity/usermodel/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the configured database, runs migrations and optionally seeds
// the initial roles and admin account.
func InitDB() *gorm.DB {
	cfg := config.AppConfig

	// GORM logger configuration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		panic(fmt.Errorf("unsupported database driver %q", cfg.Database.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	if err := db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{}); err != nil {
		panic(fmt.Errorf("failed to migrate database: %w", err))
	}

	DB = db

	if cfg.Seed {
		SeedInitialData(db)
	}
	return db
}

// SeedInitialData creates the base roles and the initial admin account if they
// do not exist yet. Safe to run on every startup.
func SeedInitialData(db *gorm.DB) {
	roleNames := []string{"admin", "user", "data"}

	rolesByName := make(map[string]models.Role, len(roleNames))
	for _, name := range roleNames {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			role = models.Role{Name: name}
			if err := db.Create(&role).Error; err != nil {
				log.Printf("Failed to seed role %s: %v\n", name, err)
				continue
			}
			log.Printf("Seeded role: %s\n", name)
		} else if err != nil {
			log.Printf("Error checking for role %s: %v\n", name, err)
			continue
		}
		rolesByName[name] = role
	}

	var adminUser models.User
	if err := db.Where("username = ?", "admin").First(&adminUser).Error; err == gorm.ErrRecordNotFound {
		hashed, err := bcrypt.GenerateFromPassword([]byte("adminpassword"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash initial admin credential: %v\n", err)
			return
		}
		adminUser = models.User{
			Username:     "admin",
			Credential:   string(hashed),
			PrimaryEmail: "admin@example.com",
		}
		if role, ok := rolesByName["admin"]; ok {
			adminUser.Roles = []models.UserRole{{RoleID: role.ID, RoleName: role.Name}}
		}
		if err := db.Create(&adminUser).Error; err != nil {
			log.Printf("Failed to create initial admin user: %v\n", err)
		} else {
			log.Println("Created initial admin user.")
		}
	}
}
