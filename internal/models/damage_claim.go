// server/internal/models/damage_claim.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DamageClaim là yêu cầu đổi/trả hàng hỏng do nhân viên ghi nhận tại cửa hàng.
type DamageClaim struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShopID      primitive.ObjectID `bson:"shopId" json:"shopId"`
	StaffID     primitive.ObjectID `bson:"staffId" json:"staffId"`
	ProductName string             `bson:"productName" json:"productName"`
	Quantity    float64            `bson:"quantity" json:"quantity"`
	Reason      string             `bson:"reason" json:"reason"`
	Photos      []MediaPointer     `bson:"photos,omitempty" json:"photos"`
	Status      string             `bson:"status" json:"status"` // "OPEN", "RESOLVED", "REJECTED"
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
