// server/internal/api/routes/routes.go
package routes

import (
	"field-sales-api-server/internal/api/handlers"
	"field-sales-api-server/internal/api/middleware"
	"field-sales-api-server/internal/s3"
	"field-sales-api-server/internal/shops"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(db *mongo.Database, s3Uploader *s3.Uploader) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	shopService := shops.NewService(db)

	// Khởi tạo các handlers
	userHandler := &handlers.UserHandler{DB: db}
	distributorHandler := &handlers.DistributorHandler{DB: db, Shops: shopService}
	shopHandler := &handlers.ShopHandler{Shops: shopService}
	activityHandler := &handlers.ActivityHandler{DB: db, S3Uploader: s3Uploader}
	orderHandler := &handlers.OrderHandler{DB: db, S3Uploader: s3Uploader}
	claimHandler := &handlers.ClaimHandler{DB: db, S3Uploader: s3Uploader}

	apiV1 := router.Group("/api/v1")
	{
		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===

		// Nhóm API authentication
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===

		// Nhóm API quản trị, yêu cầu vai trò "superadmin"
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize("superadmin"))
		{
			// User management
			admin.POST("/users", userHandler.CreateUser)
		}

		// Nhóm API cho manager: quản lý distributor, duyệt đơn, chốt claim
		managerRoutes := apiV1.Group("/")
		managerRoutes.Use(middleware.Authenticate())
		managerRoutes.Use(middleware.Authorize("manager", "superadmin"))
		{
			distributors := managerRoutes.Group("/distributors")
			{
				distributors.POST("/", distributorHandler.CreateDistributor)
				distributors.PUT("/:id", distributorHandler.UpdateDistributor)
				distributors.POST("/:id/sync-counts", distributorHandler.SyncShopCounts)
			}

			orders := managerRoutes.Group("/orders")
			{
				orders.GET("/", orderHandler.GetOrders)
				orders.PUT("/:id/review", orderHandler.ReviewOrder)
			}

			claims := managerRoutes.Group("/claims")
			{
				claims.GET("/", claimHandler.GetClaims)
				claims.PUT("/:id/resolve", claimHandler.ResolveClaim)
			}
		}

		// Nhóm các API nghiệp vụ chính cho nhân viên thị trường
		businessRoutes := apiV1.Group("/")
		businessRoutes.Use(middleware.Authenticate())
		businessRoutes.Use(middleware.Authorize("staff", "manager", "superadmin"))
		{
			// Distributor (chỉ đọc)
			distributors := businessRoutes.Group("/distributors")
			{
				distributors.GET("/", distributorHandler.GetAllDistributors)
				distributors.GET("/:id", distributorHandler.GetDistributorByID)
				distributors.GET("/:id/shops", shopHandler.ListShopsByDistributor)
			}

			// Shop management
			shopsGroup := businessRoutes.Group("/shops")
			{
				shopsGroup.POST("/", shopHandler.AddShop)
				shopsGroup.GET("/:id", shopHandler.GetShop)
				shopsGroup.PUT("/:id", shopHandler.UpdateShop)
				shopsGroup.DELETE("/:id", shopHandler.DeleteShop)
			}

			// Punch-in / punch-out
			activities := businessRoutes.Group("/activities")
			{
				activities.POST("/punch-in", activityHandler.PunchIn)
				activities.POST("/punch-out", activityHandler.PunchOut)
				activities.GET("/my", activityHandler.GetMyActivities)
			}

			// Sales orders
			orders := businessRoutes.Group("/orders")
			{
				orders.POST("/", orderHandler.CreateOrder)
				orders.POST("/:id/voice-note", orderHandler.UploadVoiceNote)
			}

			// Damage claims
			claims := businessRoutes.Group("/claims")
			{
				claims.POST("/", claimHandler.CreateClaim)
				claims.POST("/:id/photo", claimHandler.UploadClaimPhoto)
			}
		}
	}

	return router
}
