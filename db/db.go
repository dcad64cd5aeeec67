package db

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/models"
	"github.com/sunnyBaby1024/blog/utils"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.App.DatabaseURL
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	if err := SeedDefaults(); err != nil {
		utils.LogError(err, "Error seeding default data")
		panic("could not seed default data")
	}

	utils.LogSuccess("Database connection successful")
}

// SeedDefaults creates the default admin account when no admin exists yet.
// Credentials come from DEFAULT_ADMIN_USERNAME / DEFAULT_ADMIN_PASSWORD.
func SeedDefaults() error {
	var admin models.Admin
	err := DB.First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.App.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.Admin{
		Username: config.App.DefaultAdminUsername,
		Password: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Created default admin account: " + admin.Username)
	return nil
}
