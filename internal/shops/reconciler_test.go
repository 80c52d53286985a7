// server/internal/shops/reconciler_test.go
package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"field-sales-api-server/internal/models"
)

func retailShop(name, owner, address string) models.Shop {
	return models.Shop{Name: name, OwnerName: owner, Address: address, Type: models.ShopTypeRetailer, IsActive: true}
}

func wholesaleShop(name, owner, address string) models.Shop {
	return models.Shop{Name: name, OwnerName: owner, Address: address, Type: models.ShopTypeWholeSeller, IsActive: true}
}

func TestComputeShopCounts_DedupsLegacyAgainstShops(t *testing.T) {
	// Một bản ghi Shop và một entry legacy cùng khóa định danh = 1 cửa hàng, không phải 2
	shopsList := []models.Shop{retailShop("A", "B", "C")}
	legacy := []models.LegacyShopEntry{{ShopName: "A", OwnerName: "B", Address: "C"}}

	retail, wholesale := computeShopCounts(shopsList, legacy, nil)
	assert.Equal(t, 1, retail)
	assert.Equal(t, 0, wholesale)
}

func TestComputeShopCounts_AddsLegacyOnlyEntries(t *testing.T) {
	shopsList := []models.Shop{retailShop("A", "B", "C")}
	legacy := []models.LegacyShopEntry{{ShopName: "X", OwnerName: "Y", Address: "Z"}}

	retail, _ := computeShopCounts(shopsList, legacy, nil)
	assert.Equal(t, 2, retail)
}

func TestComputeShopCounts_DedupIsCaseInsensitive(t *testing.T) {
	shopsList := []models.Shop{retailShop("Nandu Shop", "Ram", "Delhi")}
	legacy := []models.LegacyShopEntry{{ShopName: "nandu shop", OwnerName: "ram", Address: "delhi"}}

	retail, _ := computeShopCounts(shopsList, legacy, nil)
	assert.Equal(t, 1, retail)
}

func TestComputeShopCounts_SplitsByType(t *testing.T) {
	shopsList := []models.Shop{
		retailShop("A", "B", "C"),
		wholesaleShop("D", "E", "F"),
	}
	legacyRetail := []models.LegacyShopEntry{{ShopName: "G", OwnerName: "H", Address: "I"}}
	legacyWholesale := []models.LegacyShopEntry{{ShopName: "D", OwnerName: "E", Address: "F"}}

	retail, wholesale := computeShopCounts(shopsList, legacyRetail, legacyWholesale)
	assert.Equal(t, 2, retail)
	// Entry wholesale legacy trùng khóa với shop wholesale → không cộng thêm
	assert.Equal(t, 1, wholesale)
}

func TestComputeShopCounts_LegacyDedupsPerType(t *testing.T) {
	// Shop retail và entry legacy WHOLESALE cùng khóa: không khử lẫn nhau,
	// vì dedup chỉ áp dụng trong cùng một loại
	shopsList := []models.Shop{retailShop("A", "B", "C")}
	legacyWholesale := []models.LegacyShopEntry{{ShopName: "A", OwnerName: "B", Address: "C"}}

	retail, wholesale := computeShopCounts(shopsList, nil, legacyWholesale)
	assert.Equal(t, 1, retail)
	assert.Equal(t, 1, wholesale)
}

func TestComputeShopCounts_Deterministic(t *testing.T) {
	// Tính lặp lại trên cùng input cho cùng kết quả: cơ sở cho idempotence
	// của SyncShopCounts (không ghi khi giá trị không đổi)
	shopsList := []models.Shop{retailShop("A", "B", "C"), wholesaleShop("D", "E", "F")}
	legacy := []models.LegacyShopEntry{{ShopName: "X", OwnerName: "Y", Address: "Z"}}

	r1, w1 := computeShopCounts(shopsList, legacy, nil)
	r2, w2 := computeShopCounts(shopsList, legacy, nil)
	assert.Equal(t, r1, r2)
	assert.Equal(t, w1, w2)
}

func TestComputeShopCounts_EmptyInputs(t *testing.T) {
	retail, wholesale := computeShopCounts(nil, nil, nil)
	assert.Equal(t, 0, retail)
	assert.Equal(t, 0, wholesale)
}
