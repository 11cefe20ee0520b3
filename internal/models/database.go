package models

import (
	"fmt"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate creates or updates the schema for the whole entity tree.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Project{},
		&Board{},
		&BoardMember{},
		&List{},
		&Card{},
		&Task{},
		&Tag{},
		&Comment{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// seedUser is a user created at startup when its email is absent.
type seedUser struct {
	id       uint
	name     string
	email    string
	password string
	role     Role
}

// SeedDefaultData creates the demo users and project if they do not exist.
// Passwords are hashed on insert; existing rows are left untouched.
func SeedDefaultData() error {
	seeds := []seedUser{
		{205, "Osama Ahmed", "osama@example.com", "admin123", RoleAdmin},
		{301, "Abeer F.", "abeer@example.com", "employee123", RoleEmployee},
		{302, "Badr N.", "badr@example.com", "employee234", RoleEmployee},
		{303, "Carim K.", "carim@example.com", "employee345", RoleEmployee},
	}

	for _, s := range seeds {
		var count int64
		DB.Model(&User{}).Where("email = ?", s.email).Count(&count)
		if count > 0 {
			continue
		}
		hash, err := utils.HashPassword(s.password)
		if err != nil {
			return err
		}
		user := User{
			ID:           s.id,
			Name:         s.name,
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
		}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
	}

	// Demo project so the board list loads on a fresh database.
	var projectCount int64
	DB.Model(&Project{}).Where("id = ?", 1001).Count(&projectCount)
	if projectCount == 0 {
		project := Project{
			ID:          1001,
			Name:        "ESAP ERP Pilot",
			Description: "Seed project",
			Status:      "open",
		}
		if err := DB.Create(&project).Error; err != nil {
			return err
		}
	}

	return nil
}
