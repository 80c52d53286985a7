// server/cmd/api/main.go
package main

import (
	"field-sales-api-server/config"
	"field-sales-api-server/internal/api/routes"
	"field-sales-api-server/internal/auth"
	"field-sales-api-server/internal/database"
	"field-sales-api-server/internal/logger"
	"field-sales-api-server/internal/s3"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.GetAppLogger()

	// 1. Load .env (nếu có) rồi load configuration
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	auth.SetSecret(cfg.JWT.Secret)

	// 2. Kết nối MongoDB
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// 3. Seed tài khoản superadmin nếu chưa có
	if err := database.SeedSuperAdmin(db); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	// 4. Khởi tạo S3 uploader (selfie, voice note, ảnh claim)
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	// 5. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(db, s3Uploader)

	// 6. Start server
	log.Infof("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
