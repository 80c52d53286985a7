// server/internal/models/staff_activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffActivity ghi lại một ca làm việc của nhân viên thị trường tại một cửa hàng.
// Punch-in tạo bản ghi với selfie, punch-out đóng bản ghi đang mở.
type StaffActivity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StaffID    primitive.ObjectID `bson:"staffId" json:"staffId"`
	ShopID     primitive.ObjectID `bson:"shopId,omitempty" json:"shopId,omitempty"`
	Selfie     MediaPointer       `bson:"selfie,omitempty" json:"selfie"`
	Status     string             `bson:"status" json:"status"` // "PUNCHED_IN", "PUNCHED_OUT"
	PunchInAt  time.Time          `bson:"punchInAt" json:"punchInAt"`
	PunchOutAt time.Time          `bson:"punchOutAt,omitempty" json:"punchOutAt,omitempty"`
}
