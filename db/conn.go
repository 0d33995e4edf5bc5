// Package db contains things related to the MySQL database
package db

import (
	"fmt"

	"starmaker/coaching-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		viper.GetString("db.user"),
		viper.GetString("db.password"),
		viper.GetString("db.host"),
		viper.GetInt("db.port"),
		viper.GetString("db.name"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL, %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates any missing tables and seeds the course catalog. Split out
// of New so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(model.User{}, model.Otp{}, model.ContactMessage{}, model.Course{})
	if err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return seedCourses(db)
}

// seedCourses fills the catalog on first start. The listing endpoint is
// read-only so an existing catalog is left alone.
func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return db.Create(&[]model.Course{
		{Slug: "science-excellence", Title: "Science Excellence", Category: "science", Description: "Complete science program covering physics, chemistry and biology fundamentals.", Duration: "12 Months", Price: "₹5,999"},
		{Slug: "mathematics-mastery", Title: "Mathematics Mastery", Category: "math", Description: "From algebra to calculus with weekly problem-solving sessions.", Duration: "10 Months", Price: "₹4,999"},
		{Slug: "jee-preparation", Title: "JEE Preparation", Category: "competitive", Description: "Two-year intensive track for JEE Main and Advanced.", Duration: "24 Months", Price: "₹12,999"},
		{Slug: "neet-preparation", Title: "NEET Preparation", Category: "competitive", Description: "Medical entrance preparation with full-length mock tests.", Duration: "24 Months", Price: "₹12,999"},
		{Slug: "physics-fundamentals", Title: "Physics Fundamentals", Category: "science", Description: "Mechanics, waves and electromagnetism built up from first principles.", Duration: "11 Months", Price: "₹5,499"},
		{Slug: "chemistry-advanced", Title: "Chemistry Advanced", Category: "science", Description: "Organic and inorganic chemistry for board and entrance exams.", Duration: "9 Months", Price: "₹4,499"},
	}).Error
}
