// server/internal/shops/service_test.go
package shops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-sales-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func distributorFixture() *models.Distributor {
	return &models.Distributor{
		ID: primitive.NewObjectID(),
		RetailShops: []models.LegacyShopEntry{
			{ID: primitive.NewObjectID(), ShopName: "Zed Store", OwnerName: "Ram", Address: "Delhi"},
			{ID: primitive.NewObjectID(), ShopName: "Nandu Shop", OwnerName: "Ram", Address: "Delhi"},
		},
		WholesaleShops: []models.LegacyShopEntry{
			{ID: primitive.NewObjectID(), ShopName: "Bulk Traders", OwnerName: "Shyam", Address: "Mumbai"},
		},
	}
}

func TestMergeShopViews_TagsLegacyOnlyEntries(t *testing.T) {
	dist := distributorFixture()
	shopsList := []models.Shop{
		{ID: primitive.NewObjectID(), Name: "Nandu Shop", OwnerName: "Ram", Address: "Delhi",
			Type: models.ShopTypeRetailer, DistributorID: dist.ID, IsActive: true},
	}

	views := mergeShopViews(shopsList, dist, "")
	// Nandu Shop có bản ghi Shop → entry legacy trùng khóa bị loại;
	// Zed Store và Bulk Traders chỉ có ở legacy → giữ lại, isLegacy=true
	require.Len(t, views, 3)

	byName := map[string]ShopView{}
	for _, v := range views {
		byName[v.Name] = v
	}
	assert.False(t, byName["Nandu Shop"].IsLegacy)
	assert.True(t, byName["Zed Store"].IsLegacy)
	assert.True(t, byName["Bulk Traders"].IsLegacy)
	assert.Equal(t, models.ShopTypeRetailer, byName["Zed Store"].Type)
	assert.Equal(t, models.ShopTypeWholeSeller, byName["Bulk Traders"].Type)
}

func TestMergeShopViews_SortsByNameCaseInsensitive(t *testing.T) {
	dist := distributorFixture()
	shopsList := []models.Shop{
		{Name: "alpha mart", OwnerName: "A", Address: "B", Type: models.ShopTypeRetailer, DistributorID: dist.ID, IsActive: true},
	}

	views := mergeShopViews(shopsList, dist, "")
	require.Len(t, views, 4)
	assert.Equal(t, "alpha mart", views[0].Name)
	assert.Equal(t, "Bulk Traders", views[1].Name)
	assert.Equal(t, "Nandu Shop", views[2].Name)
	assert.Equal(t, "Zed Store", views[3].Name)
}

func TestMergeShopViews_TypeFilterLimitsLegacyArrays(t *testing.T) {
	dist := distributorFixture()

	retailViews := mergeShopViews(nil, dist, models.ShopTypeRetailer)
	require.Len(t, retailViews, 2)
	for _, v := range retailViews {
		assert.Equal(t, models.ShopTypeRetailer, v.Type)
	}

	wholesaleViews := mergeShopViews(nil, dist, models.ShopTypeWholeSeller)
	require.Len(t, wholesaleViews, 1)
	assert.Equal(t, "Bulk Traders", wholesaleViews[0].Name)
}

func TestMergeShopViews_LegacyViewsCarryDistributorID(t *testing.T) {
	dist := distributorFixture()
	views := mergeShopViews(nil, dist, models.ShopTypeWholeSeller)
	require.Len(t, views, 1)
	assert.Equal(t, dist.ID, views[0].DistributorID)
	assert.True(t, views[0].IsActive)
	assert.False(t, views[0].ID.IsZero())
}

func TestAddShop_RejectsMissingRequiredFields(t *testing.T) {
	// Validation chạy trước mọi truy cập store nên không cần DB
	s := &Service{}

	_, err := s.AddShop(context.Background(), AddShopInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AddShop(context.Background(), AddShopInput{
		Name: "Nandu Shop", OwnerName: "Ram", Address: "Delhi", Type: models.ShopTypeRetailer,
	})
	assert.ErrorIs(t, err, ErrValidation, "thiếu distributorId phải bị chặn")
}

func TestAddShop_RejectsUnknownType(t *testing.T) {
	s := &Service{}
	_, err := s.AddShop(context.Background(), AddShopInput{
		Name:          "Nandu Shop",
		OwnerName:     "Ram",
		Address:       "Delhi",
		Type:          "Dealer",
		DistributorID: primitive.NewObjectID(),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListShopsByDistributor_RejectsUnknownTypeFilter(t *testing.T) {
	s := &Service{}
	_, err := s.ListShopsByDistributor(context.Background(), primitive.NewObjectID(), "Dealer")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidShopType(t *testing.T) {
	assert.True(t, validShopType(models.ShopTypeRetailer))
	assert.True(t, validShopType(models.ShopTypeWholeSeller))
	assert.False(t, validShopType("Dealer"))
	assert.False(t, validShopType(""))
}
