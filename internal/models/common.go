// server/internal/models/common.go
package models

// ShopType định nghĩa loại cửa hàng mà hệ thống quản lý.
const (
	ShopTypeRetailer    = "Retailer"
	ShopTypeWholeSeller = "WholeSeller"
)

// MediaPointer đại diện cho một tài liệu media được lưu trữ trên S3.
type MediaPointer struct {
	ID       string `bson:"id" json:"id"`             // ID duy nhất trong hệ thống
	URL      string `bson:"url" json:"url"`           // URL truy cập tài liệu
	FileName string `bson:"fileName" json:"fileName"` // Tên file gốc
	FileType string `bson:"fileType" json:"fileType"` // Loại file, ví dụ: "image/jpeg", "audio/mpeg"
}
