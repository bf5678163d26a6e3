package database

import (
	"fmt"
	"log"

	"goldenbell_backend/internal/config"
	"goldenbell_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Attempt{},
		&model.UserStats{},
		&model.DailyPlan{},
		&model.DailyPlanQuestion{},
		&model.Badge{},
		&model.UserBadge{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 뱃지 카탈로그가 비어있으면 기본 목록 삽입
	var badgeCount int64
	db.Model(&model.Badge{}).Count(&badgeCount)
	if badgeCount == 0 {
		for _, b := range model.DefaultBadges {
			badge := b
			db.Create(&badge)
		}
		log.Printf("Seeded %d badges", len(model.DefaultBadges))
	}

	return db, nil
}
