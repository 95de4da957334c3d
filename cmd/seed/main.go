package main

import (
	"log"
	"os"
	"time"

	"skillswap-be/internal/model"
	"skillswap-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds an admin account and a few sample users with skills. Existing emails
// are left untouched, so the command is safe to re-run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme-admin"
	}

	seedUser(db, "Admin", "admin@skillswap.local", adminPassword, "admin", "")
	mara := seedUser(db, "Mara", "mara@skillswap.local", "changeme-user", "student",
		"Classical guitarist, teaches on weekends")
	jonas := seedUser(db, "Jonas", "jonas@skillswap.local", "changeme-user", "student",
		"Learning languages, offering sourdough baking in exchange")

	seedSkill(db, mara, "offer", "Guitar lessons", "Beginner to intermediate classical guitar", "music,guitar")
	seedSkill(db, jonas, "offer", "Sourdough baking", "Starter care, shaping and oven setup", "baking,food")
	seedSkill(db, jonas, "seek", "Conversational Spanish", "Looking for weekly practice sessions", "language,spanish")

	log.Println("Success: Seed completed.")
}

func seedUser(db *gorm.DB, name, email, password, role, bio string) uuid.UUID {
	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Skip: user %s already exists", email)
		return existing.Id
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Error: lookup %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: hash password for %s: %v", email, err)
	}

	user := model.User{
		Id:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Bio:          bio,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error: create user %s: %v", email, err)
	}
	log.Printf("Created: user %s (%s)", email, role)
	return user.Id
}

func seedSkill(db *gorm.DB, userId uuid.UUID, skillType, title, description, tags string) {
	var count int64
	if err := db.Model(&model.Skill{}).
		Where("user_id = ? AND title = ?", userId, title).
		Count(&count).Error; err != nil {
		log.Fatalf("Error: lookup skill %q: %v", title, err)
	}
	if count > 0 {
		log.Printf("Skip: skill %q already exists", title)
		return
	}

	skill := model.Skill{
		Id:          uuid.New(),
		UserId:      userId,
		Type:        skillType,
		Title:       title,
		Description: description,
		Tags:        tags,
		Visibility:  "public",
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.Create(&skill).Error; err != nil {
		log.Fatalf("Error: create skill %q: %v", title, err)
	}
	log.Printf("Created: skill %q", title)
}
