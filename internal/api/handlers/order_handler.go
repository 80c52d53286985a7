// server/internal/api/handlers/order_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"field-sales-api-server/internal/models"
	"field-sales-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

type OrderItemRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

type CreateOrderRequest struct {
	ShopID string             `json:"shopId" binding:"required"`
	Items  []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder ghi nhận đơn đặt hàng tại cửa hàng.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	staffID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopID, err := primitive.ObjectIDFromHex(req.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shopId"})
		return
	}

	// Cửa hàng phải tồn tại và đang active
	count, err := h.DB.Collection("shops").CountDocuments(context.Background(), bson.M{"_id": shopID, "isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for shop"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Amount:      it.Amount,
		})
		total += it.Amount
	}

	now := time.Now()
	order := models.SalesOrder{
		ShopID:      shopID,
		StaffID:     staffID,
		Items:       items,
		TotalAmount: total,
		Status:      "PENDING",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := h.DB.Collection("sales_orders").InsertOne(context.Background(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	c.JSON(http.StatusCreated, order)
}

// UploadVoiceNote đính kèm voice note cho một đơn hàng đã tạo.
func (h *OrderHandler) UploadVoiceNote(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	fileHeader, err := c.FormFile("voiceNote")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voice note file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("voice-notes/%s.mp3", uuid.New().String())
	url, err := h.S3Uploader.UploadFile(context.Background(), file, objectKey, "audio/mpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload voice note"})
		return
	}

	pointer := models.MediaPointer{
		ID:       uuid.New().String(),
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: "audio/mpeg",
	}
	result, err := h.DB.Collection("sales_orders").UpdateOne(context.Background(),
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"voiceNote": pointer, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach voice note"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "url": url})
}

// GetOrders cho manager xem danh sách đơn, lọc theo ?status= và ?shopId=.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if shopIDHex := c.Query("shopId"); shopIDHex != "" {
		shopID, err := primitive.ObjectIDFromHex(shopIDHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shopId"})
			return
		}
		filter["shopId"] = shopID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("sales_orders").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	defer cursor.Close(context.Background())

	var orders []models.SalesOrder
	if err = cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	if orders == nil {
		orders = []models.SalesOrder{}
	}

	c.JSON(http.StatusOK, orders)
}

// ReviewOrder cho manager duyệt hoặc từ chối một đơn hàng.
func (h *OrderHandler) ReviewOrder(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"` // "APPROVED" hoặc "REJECTED"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "APPROVED" && req.Status != "REJECTED" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be APPROVED or REJECTED"})
		return
	}

	result, err := h.DB.Collection("sales_orders").UpdateOne(context.Background(),
		bson.M{"_id": orderID, "status": "PENDING"},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review order"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Order reviewed successfully"})
}
