// server/internal/models/shop.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop là bản ghi chuẩn hóa của một cửa hàng trong collection "shops".
// Xóa cửa hàng chỉ đặt IsActive=false (soft delete), không bao giờ xóa vật lý.
type Shop struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	OwnerName     string             `bson:"ownerName" json:"ownerName"`
	Address       string             `bson:"address" json:"address"`
	Type          string             `bson:"type" json:"type"` // "Retailer" hoặc "WholeSeller"
	DistributorID primitive.ObjectID `bson:"distributorId" json:"distributorId"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedBy     primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
