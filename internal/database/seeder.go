// server/internal/database/seeder.go
package database

import (
	"context"
	"time"

	"field-sales-api-server/internal/auth"
	"field-sales-api-server/internal/logger"
	"field-sales-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func SeedSuperAdmin(db *mongo.Database) error {
	userCollection := db.Collection("users")
	superAdminEmail := "superadmin@example.com"

	// Kiểm tra xem superadmin đã tồn tại chưa
	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": superAdminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		logger.GetAppLogger().Info("Super admin already exists. Seeding skipped.")
		return nil
	}

	// Tạo superadmin nếu chưa có
	logger.GetAppLogger().Info("Super admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword("superadminpassword") // Đặt một password mặc định
	if err != nil {
		return err
	}

	superAdmin := models.User{
		Email:     superAdminEmail,
		Name:      "Super Admin",
		Password:  hashedPassword,
		Role:      "superadmin",
		Status:    "active",
		CreatedAt: time.Now(),
	}

	_, err = userCollection.InsertOne(context.Background(), superAdmin)
	if err != nil {
		return err
	}

	logger.GetAppLogger().Info("Super admin seeded successfully.")
	return nil
}
