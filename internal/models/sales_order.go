// server/internal/models/sales_order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem là một dòng hàng trong đơn đặt hàng.
type OrderItem struct {
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Unit        string  `bson:"unit" json:"unit"` // e.g., "pcs", "box", "kg"
	Amount      float64 `bson:"amount" json:"amount"`
}

// SalesOrder là đơn đặt hàng nhân viên ghi nhận tại cửa hàng.
type SalesOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShopID      primitive.ObjectID `bson:"shopId" json:"shopId"`
	StaffID     primitive.ObjectID `bson:"staffId" json:"staffId"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	VoiceNote   MediaPointer       `bson:"voiceNote,omitempty" json:"voiceNote"`
	Status      string             `bson:"status" json:"status"` // "PENDING", "APPROVED", "REJECTED"
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
