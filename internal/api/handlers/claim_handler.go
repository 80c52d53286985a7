// server/internal/api/handlers/claim_handler.go
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

type ClaimHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

type CreateClaimRequest struct {
	ShopID      string  `json:"shopId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Reason      string  `json:"reason" binding:"required"`
}

// CreateClaim ghi nhận yêu cầu đổi/trả hàng hỏng.
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	staffID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
		return
	}

	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopID, err := primitive.ObjectIDFromHex(req.ShopID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shopId"})
		return
	}

	count, err := h.DB.Collection("shops").CountDocuments(context.Background(), bson.M{"_id": shopID, "isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for shop"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	now := time.Now()
	claim := models.DamageClaim{
		ShopID:      shopID,
		StaffID:     staffID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Reason:      req.Reason,
		Status:      "OPEN",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := h.DB.Collection("damage_claims").InsertOne(context.Background(), claim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create claim"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		claim.ID = oid
	}

	c.JSON(http.StatusCreated, claim)
}

// UploadClaimPhoto đính kèm ảnh minh chứng cho yêu cầu đổi/trả.
func (h *ClaimHandler) UploadClaimPhoto(c *gin.Context) {
	claimID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid claim id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("claim-photos/%s.jpg", uuid.New().String())
	url, err := h.S3Uploader.UploadFile(context.Background(), file, objectKey, "image/jpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	pointer := models.MediaPointer{
		ID:       uuid.New().String(),
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: "image/jpeg",
	}
	result, err := h.DB.Collection("damage_claims").UpdateOne(context.Background(),
		bson.M{"_id": claimID},
		bson.M{"$push": bson.M{"photos": pointer}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach photo"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "url": url})
}

// GetClaims cho manager xem danh sách yêu cầu, lọc theo ?status=.
func (h *ClaimHandler) GetClaims(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("damage_claims").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query claims"})
		return
	}
	defer cursor.Close(context.Background())

	var claims []models.DamageClaim
	if err = cursor.All(context.Background(), &claims); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode claims"})
		return
	}

	if claims == nil {
		claims = []models.DamageClaim{}
	}

	c.JSON(http.StatusOK, claims)
}

// ResolveClaim cho manager chốt một yêu cầu đổi/trả.
func (h *ClaimHandler) ResolveClaim(c *gin.Context) {
	claimID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid claim id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"` // "RESOLVED" hoặc "REJECTED"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "RESOLVED" && req.Status != "REJECTED" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be RESOLVED or REJECTED"})
		return
	}

	result, err := h.DB.Collection("damage_claims").UpdateOne(context.Background(),
		bson.M{"_id": claimID, "status": "OPEN"},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve claim"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Open claim not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Claim resolved successfully"})
}
