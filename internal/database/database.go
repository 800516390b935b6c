package database

import (
	"dermasilk/config"
	"dermasilk/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Operator{},
		&models.Client{},
		&models.Membership{},
		&models.RewardItem{},
		&models.RewardTransaction{},
		&models.GuardState{},
		&models.AuditLog{},
	)
}

// SeedOperator creates the initial console login if no operator exists.
func SeedOperator(db *gorm.DB, cfg *config.OperatorConfig) {
	var count int64
	db.Model(&models.Operator{}).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("seed operator: hash password")
		return
	}
	op := &models.Operator{Email: cfg.Email, PasswordHash: string(hash), Name: "Administrador"}
	if err := db.Create(op).Error; err != nil {
		log.Error().Err(err).Msg("seed operator: create")
		return
	}
	log.Info().Str("email", cfg.Email).Msg("seeded initial operator")
}
