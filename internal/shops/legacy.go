// server/internal/shops/legacy.go
// Các hàm thuần thao tác trên mảng legacy (retailShops / wholesaleShops).
// Service load document distributor, biến đổi mảng ở đây rồi ghi lại bằng $set.
package shops

import (
	"field-sales-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// findLegacyEntry trả về index của entry có khóa định danh trùng với key,
// hoặc -1 nếu không có.
func findLegacyEntry(entries []models.LegacyShopEntry, key string) int {
	for i, e := range entries {
		if legacyKey(e) == key {
			return i
		}
	}
	return -1
}

// appendLegacyEntry thêm entry mới vào mảng nếu chưa có entry nào cùng khóa
// định danh. Trả về mảng mới và true nếu có thay đổi.
func appendLegacyEntry(entries []models.LegacyShopEntry, shopName, ownerName, address string) ([]models.LegacyShopEntry, bool) {
	if findLegacyEntry(entries, DeriveShopKey(shopName, ownerName, address)) >= 0 {
		return entries, false
	}
	entry := models.LegacyShopEntry{
		ID:        primitive.NewObjectID(),
		ShopName:  shopName,
		OwnerName: ownerName,
		Address:   address,
	}
	return append(entries, entry), true
}

// removeLegacyEntry xóa entry có khóa định danh trùng với key.
// Trả về mảng mới và true nếu có entry bị xóa; no-op nếu không tìm thấy.
func removeLegacyEntry(entries []models.LegacyShopEntry, key string) ([]models.LegacyShopEntry, bool) {
	idx := findLegacyEntry(entries, key)
	if idx < 0 {
		return entries, false
	}
	out := make([]models.LegacyShopEntry, 0, len(entries)-1)
	out = append(out, entries[:idx]...)
	out = append(out, entries[idx+1:]...)
	return out, true
}

// patchLegacyEntry cập nhật tại chỗ name/owner/address của entry có khóa
// định danh trùng với key. Trả về mảng mới và true nếu có thay đổi.
func patchLegacyEntry(entries []models.LegacyShopEntry, key, shopName, ownerName, address string) ([]models.LegacyShopEntry, bool) {
	idx := findLegacyEntry(entries, key)
	if idx < 0 {
		return entries, false
	}
	out := make([]models.LegacyShopEntry, len(entries))
	copy(out, entries)
	out[idx].ShopName = shopName
	out[idx].OwnerName = ownerName
	out[idx].Address = address
	return out, true
}

// countLegacyOnly đếm số entry legacy mà khóa định danh KHÔNG có trong tập
// khóa của các bản ghi Shop: tức những cửa hàng chỉ tồn tại ở dạng legacy,
// chưa được migrate sang collection "shops".
func countLegacyOnly(entries []models.LegacyShopEntry, shopKeys map[string]struct{}) int {
	count := 0
	for _, e := range entries {
		if _, ok := shopKeys[legacyKey(e)]; !ok {
			count++
		}
	}
	return count
}
