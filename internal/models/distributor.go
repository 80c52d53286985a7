// server/internal/models/distributor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyShopEntry là bản ghi cửa hàng nhúng trong document Distributor,
// tồn tại từ trước khi có collection "shops". Không có trường type,
// loại cửa hàng được suy ra từ mảng chứa nó (retailShops / wholesaleShops).
type LegacyShopEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShopName  string             `bson:"shopName" json:"shopName"`
	OwnerName string             `bson:"ownerName" json:"ownerName"`
	Address   string             `bson:"address" json:"address"`
}

// Distributor là nhà phân phối. RetailShopCount/WholesaleShopCount là số liệu
// dẫn xuất (cached): chỉ được ghi bởi reconciler, không bao giờ tính inline.
type Distributor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	ShopName           string             `bson:"shopName" json:"shopName"`
	Phone              string             `bson:"phone" json:"phone"`
	Address            string             `bson:"address" json:"address"`
	Zone               string             `bson:"zone,omitempty" json:"zone,omitempty"`
	RetailShopCount    int                `bson:"retailShopCount" json:"retailShopCount"`
	WholesaleShopCount int                `bson:"wholesaleShopCount" json:"wholesaleShopCount"`
	RetailShops        []LegacyShopEntry  `bson:"retailShops" json:"retailShops"`
	WholesaleShops     []LegacyShopEntry  `bson:"wholesaleShops" json:"wholesaleShops"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
