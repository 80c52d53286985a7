// server/internal/shops/identity.go
package shops

import (
	"strings"

	"field-sales-api-server/internal/models"
)

// DeriveShopKey tạo khóa định danh chuẩn hóa cho một cửa hàng từ
// (tên cửa hàng, tên chủ, địa chỉ). Hai bản ghi có cùng khóa được coi là
// cùng một cửa hàng vật lý, bất kể nằm trong collection "shops" hay
// trong mảng legacy của distributor.
func DeriveShopKey(name, ownerName, address string) string {
	return strings.ToLower(name) + "-" + strings.ToLower(ownerName) + "-" + strings.ToLower(address)
}

// shopKey lấy khóa định danh của một bản ghi Shop.
func shopKey(s models.Shop) string {
	return DeriveShopKey(s.Name, s.OwnerName, s.Address)
}

// legacyKey lấy khóa định danh của một entry trong mảng legacy.
func legacyKey(e models.LegacyShopEntry) string {
	return DeriveShopKey(e.ShopName, e.OwnerName, e.Address)
}
