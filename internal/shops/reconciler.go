// server/internal/shops/reconciler.go
// Reconciler: tính lại retailShopCount / wholesaleShopCount của distributor
// bằng cách gộp bản ghi Shop với mảng legacy và khử trùng lặp theo khóa
// định danh. Chỉ ghi khi giá trị tính được khác giá trị đang lưu.
package shops

import (
	"context"
	"errors"

	"field-sales-api-server/internal/logger"
	"field-sales-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// computeShopCounts tính số cửa hàng duy nhất theo từng loại.
// activeShops là các bản ghi Shop đang active của distributor; mỗi entry
// legacy chỉ được cộng thêm khi khóa định danh của nó chưa xuất hiện
// trong tập khóa Shop cùng loại.
func computeShopCounts(activeShops []models.Shop, retailLegacy, wholesaleLegacy []models.LegacyShopEntry) (retail, wholesale int) {
	retailKeys := make(map[string]struct{})
	wholesaleKeys := make(map[string]struct{})
	for _, s := range activeShops {
		switch s.Type {
		case models.ShopTypeRetailer:
			retail++
			retailKeys[shopKey(s)] = struct{}{}
		case models.ShopTypeWholeSeller:
			wholesale++
			wholesaleKeys[shopKey(s)] = struct{}{}
		}
	}
	retail += countLegacyOnly(retailLegacy, retailKeys)
	wholesale += countLegacyOnly(wholesaleLegacy, wholesaleKeys)
	return retail, wholesale
}

// SyncShopCounts tính lại và lưu số cửa hàng của một distributor.
// Idempotent: gọi lặp lại khi không có mutation xen giữa sẽ không ghi gì.
// Distributor không tồn tại là no-op: đồng bộ số liệu chỉ là housekeeping,
// không bao giờ là lỗi hướng về phía người dùng.
func (s *Service) SyncShopCounts(ctx context.Context, distributorID primitive.ObjectID) error {
	var dist models.Distributor
	err := s.DB.Collection("distributors").FindOne(ctx, bson.M{"_id": distributorID}).Decode(&dist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return err
	}

	activeShops, err := s.findActiveShops(ctx, distributorID, "")
	if err != nil {
		return err
	}

	retail, wholesale := computeShopCounts(activeShops, dist.RetailShops, dist.WholesaleShops)
	if retail == dist.RetailShopCount && wholesale == dist.WholesaleShopCount {
		return nil
	}

	_, err = s.DB.Collection("distributors").UpdateOne(ctx, bson.M{"_id": distributorID}, bson.M{"$set": bson.M{
		"retailShopCount":    retail,
		"wholesaleShopCount": wholesale,
	}})
	return err
}

// syncCountsBestEffort gọi SyncShopCounts sau một primary write đã commit.
// Thất bại ở đây chỉ được log: không bao giờ làm fail request đã thành công.
func (s *Service) syncCountsBestEffort(ctx context.Context, distributorID primitive.ObjectID, op string) {
	if err := s.SyncShopCounts(ctx, distributorID); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"distributorId": distributorID.Hex(),
			"op":            op,
		}).Warn("shop count reconciliation failed")
	}
}
