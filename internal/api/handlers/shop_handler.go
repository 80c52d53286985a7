// server/internal/api/handlers/shop_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"field-sales-api-server/internal/shops"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShopHandler struct {
	Shops *shops.Service
}

type AddShopRequest struct {
	Name          string `json:"name" binding:"required"`
	OwnerName     string `json:"ownerName" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Type          string `json:"type" binding:"required"` // "Retailer" hoặc "WholeSeller"
	DistributorID string `json:"distributorId" binding:"required"`
}

type UpdateShopRequest struct {
	Name          string `json:"name"`
	OwnerName     string `json:"ownerName"`
	Address       string `json:"address"`
	Type          string `json:"type"`
	DistributorID string `json:"distributorId"`
}

// shopErrorStatus ánh xạ lỗi nghiệp vụ của shops.Service sang HTTP status.
func shopErrorStatus(err error) int {
	switch {
	case errors.Is(err, shops.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, shops.ErrDistributorNotFound), errors.Is(err, shops.ErrShopNotFound):
		return http.StatusNotFound
	case errors.Is(err, shops.ErrDuplicateShop):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AddShop tạo cửa hàng mới cho một distributor.
func (h *ShopHandler) AddShop(c *gin.Context) {
	var req AddShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	distributorID, err := primitive.ObjectIDFromHex(req.DistributorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributorId"})
		return
	}

	// createdBy lấy từ token của nhân viên đang đăng nhập
	createdBy, _ := primitive.ObjectIDFromHex(c.GetString("user_id"))

	shop, err := h.Shops.AddShop(context.Background(), shops.AddShopInput{
		Name:          req.Name,
		OwnerName:     req.OwnerName,
		Address:       req.Address,
		Type:          req.Type,
		DistributorID: distributorID,
		CreatedBy:     createdBy,
	})
	if err != nil {
		c.JSON(shopErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// UpdateShop cập nhật một phần thông tin cửa hàng (đổi tên, đổi loại,
// chuyển sang distributor khác).
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	shopID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := shops.UpdateShopInput{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Address:   req.Address,
		Type:      req.Type,
	}
	if req.DistributorID != "" {
		distributorID, err := primitive.ObjectIDFromHex(req.DistributorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributorId"})
			return
		}
		input.DistributorID = distributorID
	}

	shop, err := h.Shops.UpdateShop(context.Background(), shopID, input)
	if err != nil {
		c.JSON(shopErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// DeleteShop soft-delete một cửa hàng.
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	shopID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	if err := h.Shops.DeleteShop(context.Background(), shopID); err != nil {
		c.JSON(shopErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Shop deleted successfully"})
}

// GetShop trả về một cửa hàng theo id.
func (h *ShopHandler) GetShop(c *gin.Context) {
	shopID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	shop, err := h.Shops.GetShopByID(context.Background(), shopID)
	if err != nil {
		c.JSON(shopErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shop)
}

// ListShopsByDistributor trả về danh sách đã gộp (shop + legacy-only)
// của một distributor, lọc theo ?type= nếu có.
func (h *ShopHandler) ListShopsByDistributor(c *gin.Context) {
	distributorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distributor id"})
		return
	}

	views, err := h.Shops.ListShopsByDistributor(context.Background(), distributorID, c.Query("type"))
	if err != nil {
		c.JSON(shopErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}
