// server/internal/api/handlers/distributor_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"field-sales-api-server/internal/models"
	"field-sales-api-server/internal/shops"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DistributorHandler struct {
	DB    *mongo.Database
	Shops *shops.Service
}

type CreateDistributorRequest struct {
	Name     string `json:"name" binding:"required"`
	ShopName string `json:"shopName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Zone     string `json:"zone"`
}

// CreateDistributor tạo một nhà phân phối mới.
func (h *DistributorHandler) CreateDistributor(c *gin.Context) {
	var req CreateDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("distributors")

	// Kiểm tra trùng số điện thoại
	count, err := collection.CountDocuments(context.Background(), bson.M{"phone": req.Phone})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for distributor"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Distributor with this phone already exists"})
		return
	}

	now := time.Now()
	newDistributor := models.Distributor{
		Name:           req.Name,
		ShopName:       req.ShopName,
		Phone:          req.Phone,
		Address:        req.Address,
		Zone:           req.Zone,
		RetailShops:    []models.LegacyShopEntry{},
		WholesaleShops: []models.LegacyShopEntry{},
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := collection.InsertOne(context.Background(), newDistributor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create distributor"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newDistributor.ID = oid
	}

	c.JSON(http.StatusCreated, newDistributor)
}

// GetAllDistributors lấy danh sách tất cả nhà phân phối.
func (h *DistributorHandler) GetAllDistributors(c *gin.Context) {
	collection := h.DB.Collection("distributors")

	filter := bson.M{"isActive": true}
	if zone := c.Query("zone"); zone != "" {
		filter["zone"] = zone
	}

	cursor, err := collection.Find(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query distributors"})
		return
	}
	defer cursor.Close(context.Background())

	var distributors []models.Distributor
	if err = cursor.All(context.Background(), &distributors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode distributors"})
		return
	}

	if distributors == nil {
		distributors = []models.Distributor{}
	}

	c.JSON(http.StatusOK, distributors)
}

// GetDistributorByID lấy thông tin một nhà phân phối.
func (h *DistributorHandler) GetDistributorByID(c *gin.Context) {
	distributorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributor id"})
		return
	}

	collection := h.DB.Collection("distributors")
	var distributor models.Distributor
	err = collection.FindOne(context.Background(), bson.M{"_id": distributorID}).Decode(&distributor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Distributor not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve distributor"})
		}
		return
	}

	c.JSON(http.StatusOK, distributor)
}

// UpdateDistributor cập nhật thông tin liên hệ của nhà phân phối.
// Counts và mảng legacy không chỉnh sửa qua endpoint này: counts chỉ do
// reconciler ghi, mảng legacy chỉ do nghiệp vụ cửa hàng ghi.
func (h *DistributorHandler) UpdateDistributor(c *gin.Context) {
	distributorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributor id"})
		return
	}

	var req CreateDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("distributors")
	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": distributorID}, bson.M{"$set": bson.M{
		"name":      req.Name,
		"shopName":  req.ShopName,
		"phone":     req.Phone,
		"address":   req.Address,
		"zone":      req.Zone,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update distributor"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distributor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Distributor updated successfully"})
}

// SyncShopCounts cho phép manager chủ động chạy reconcile counts
// cho một distributor và trả về document sau khi đồng bộ.
func (h *DistributorHandler) SyncShopCounts(c *gin.Context) {
	distributorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributor id"})
		return
	}

	if err := h.Shops.SyncShopCounts(context.Background(), distributorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync shop counts"})
		return
	}

	var distributor models.Distributor
	err = h.DB.Collection("distributors").FindOne(context.Background(), bson.M{"_id": distributorID}).Decode(&distributor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Distributor not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve distributor"})
		}
		return
	}

	c.JSON(http.StatusOK, distributor)
}
