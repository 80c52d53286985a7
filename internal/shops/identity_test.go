// server/internal/shops/identity_test.go
package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"field-sales-api-server/internal/models"
)

func TestDeriveShopKey_CaseInsensitive(t *testing.T) {
	a := DeriveShopKey("Nandu Shop", "Ram", "Delhi")
	b := DeriveShopKey("nandu shop", "ram", "delhi")
	assert.Equal(t, a, b)
}

func TestDeriveShopKey_Composition(t *testing.T) {
	key := DeriveShopKey("Nandu Shop", "Ram", "Delhi")
	assert.Equal(t, "nandu shop-ram-delhi", key)
}

func TestDeriveShopKey_DistinctFieldsDistinctKeys(t *testing.T) {
	a := DeriveShopKey("Nandu Shop", "Ram", "Delhi")
	b := DeriveShopKey("Nandu Shop", "Ram", "Mumbai")
	assert.NotEqual(t, a, b)
}

func TestDeriveShopKey_EmptyComponentsPassThrough(t *testing.T) {
	// Trường rỗng đi qua nguyên trạng: validation required-field là việc của caller
	assert.Equal(t, "--", DeriveShopKey("", "", ""))
}

func TestShopAndLegacyKeysAgree(t *testing.T) {
	shop := models.Shop{Name: "Nandu Shop", OwnerName: "Ram", Address: "Delhi"}
	entry := models.LegacyShopEntry{ShopName: "NANDU SHOP", OwnerName: "ram", Address: "Delhi"}
	assert.Equal(t, shopKey(shop), legacyKey(entry))
}
