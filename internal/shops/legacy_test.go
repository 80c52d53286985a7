// server/internal/shops/legacy_test.go
package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-sales-api-server/internal/models"
)

func legacyFixture() []models.LegacyShopEntry {
	return []models.LegacyShopEntry{
		{ShopName: "Nandu Shop", OwnerName: "Ram", Address: "Delhi"},
		{ShopName: "Gupta Store", OwnerName: "Shyam", Address: "Mumbai"},
	}
}

func TestAppendLegacyEntry_AddsNewEntry(t *testing.T) {
	entries, changed := appendLegacyEntry(legacyFixture(), "New Shop", "Mohan", "Pune")
	require.True(t, changed)
	require.Len(t, entries, 3)
	assert.Equal(t, "New Shop", entries[2].ShopName)
	assert.False(t, entries[2].ID.IsZero())
}

func TestAppendLegacyEntry_SkipsDuplicateKey(t *testing.T) {
	// Trùng khóa định danh (khác hoa thường) không được thêm lần hai
	entries, changed := appendLegacyEntry(legacyFixture(), "NANDU SHOP", "ram", "delhi")
	assert.False(t, changed)
	assert.Len(t, entries, 2)
}

func TestRemoveLegacyEntry_RemovesMatch(t *testing.T) {
	entries, changed := removeLegacyEntry(legacyFixture(), DeriveShopKey("Nandu Shop", "Ram", "Delhi"))
	require.True(t, changed)
	require.Len(t, entries, 1)
	assert.Equal(t, "Gupta Store", entries[0].ShopName)
}

func TestRemoveLegacyEntry_MatchIsCaseInsensitive(t *testing.T) {
	// Entry legacy ghi từ trước có thể khác hoa thường so với bản ghi Shop,
	// match theo khóa định danh vẫn phải xóa được
	entries, changed := removeLegacyEntry(legacyFixture(), DeriveShopKey("NANDU SHOP", "RAM", "DELHI"))
	require.True(t, changed)
	require.Len(t, entries, 1)
	assert.Equal(t, "Gupta Store", entries[0].ShopName)
}

func TestRemoveLegacyEntry_NoopWhenAbsent(t *testing.T) {
	entries, changed := removeLegacyEntry(legacyFixture(), DeriveShopKey("Unknown", "X", "Y"))
	assert.False(t, changed)
	assert.Len(t, entries, 2)
}

func TestPatchLegacyEntry_UpdatesInPlace(t *testing.T) {
	entries, changed := patchLegacyEntry(legacyFixture(), DeriveShopKey("Nandu Shop", "Ram", "Delhi"),
		"Nandu General Store", "Ram", "Delhi")
	require.True(t, changed)
	require.Len(t, entries, 2)
	assert.Equal(t, "Nandu General Store", entries[0].ShopName)
}

func TestPatchLegacyEntry_DoesNotMutateInput(t *testing.T) {
	original := legacyFixture()
	_, changed := patchLegacyEntry(original, DeriveShopKey("Nandu Shop", "Ram", "Delhi"),
		"Renamed", "Ram", "Delhi")
	require.True(t, changed)
	assert.Equal(t, "Nandu Shop", original[0].ShopName)
}

func TestCountLegacyOnly(t *testing.T) {
	shopKeys := map[string]struct{}{
		DeriveShopKey("Nandu Shop", "Ram", "Delhi"): {},
	}
	// Chỉ Gupta Store chưa có bản ghi Shop tương ứng
	assert.Equal(t, 1, countLegacyOnly(legacyFixture(), shopKeys))
}
