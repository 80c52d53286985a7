// server/internal/shops/service.go
// Service là nghiệp vụ vòng đời cửa hàng: mọi mutation đi qua collection
// "shops" (primary), sau đó mirror vào mảng legacy trên distributor và
// gọi reconciler. Các bước sau primary write là best-effort: lỗi chỉ
// được log, không rollback bản ghi đã commit.
package shops

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"field-sales-api-server/internal/logger"
	"field-sales-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	DB *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{DB: db}
}

// --- Input / output structs ---

type AddShopInput struct {
	Name          string
	OwnerName     string
	Address       string
	Type          string
	DistributorID primitive.ObjectID
	CreatedBy     primitive.ObjectID
}

// UpdateShopInput là partial update: trường rỗng / zero nghĩa là giữ nguyên.
type UpdateShopInput struct {
	Name          string
	OwnerName     string
	Address       string
	Type          string
	DistributorID primitive.ObjectID
}

// ShopView là một dòng trong kết quả listing đã gộp hai nguồn.
// IsLegacy=true nghĩa là entry chỉ tồn tại trong mảng legacy của distributor.
type ShopView struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	OwnerName     string             `json:"ownerName"`
	Address       string             `json:"address"`
	Type          string             `json:"type"`
	DistributorID primitive.ObjectID `json:"distributorId"`
	IsLegacy      bool               `json:"isLegacy"`
	IsActive      bool               `json:"isActive"`
}

func validShopType(t string) bool {
	return t == models.ShopTypeRetailer || t == models.ShopTypeWholeSeller
}

// --- Operations ---

// AddShop tạo bản ghi Shop mới cho một distributor.
// Duplicate check chỉ theo tên (không phải full identity key): đây là hành vi
// legacy được giữ nguyên; reconciler vẫn dedup theo full key.
func (s *Service) AddShop(ctx context.Context, in AddShopInput) (*models.Shop, error) {
	if in.Name == "" || in.OwnerName == "" || in.Address == "" || in.DistributorID.IsZero() {
		return nil, fmt.Errorf("%w: name, ownerName, address and distributorId are required", ErrValidation)
	}
	if !validShopType(in.Type) {
		return nil, fmt.Errorf("%w: type must be Retailer or WholeSeller", ErrValidation)
	}

	dist, err := s.loadDistributor(ctx, in.DistributorID)
	if err != nil {
		return nil, err
	}

	// Kiểm tra trùng tên (case-insensitive) trong các shop đang active
	nameFilter := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(in.Name) + "$", Options: "i"}
	count, err := s.DB.Collection("shops").CountDocuments(ctx, bson.M{
		"distributorId": in.DistributorID,
		"isActive":      true,
		"name":          nameFilter,
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateShop
	}

	now := time.Now()
	shop := models.Shop{
		Name:          in.Name,
		OwnerName:     in.OwnerName,
		Address:       in.Address,
		Type:          in.Type,
		DistributorID: in.DistributorID,
		IsActive:      true,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	result, err := s.DB.Collection("shops").InsertOne(ctx, shop)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		shop.ID = oid
	}

	// Mirror vào mảng legacy nếu chưa có entry cùng khóa định danh,
	// tránh đếm đôi khi một entry legacy cũ đã mô tả chính cửa hàng này.
	if err := s.mirrorAppend(ctx, dist, shop.Type, shop.Name, shop.OwnerName, shop.Address); err != nil {
		s.mirrorWarn(err, shop.ID, "addShop")
	}
	s.syncCountsBestEffort(ctx, in.DistributorID, "addShop")

	return &shop, nil
}

// GetShopByID trả về bản ghi Shop theo id.
func (s *Service) GetShopByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	var shop models.Shop
	err := s.DB.Collection("shops").FindOne(ctx, bson.M{"_id": id}).Decode(&shop)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// UpdateShop cập nhật một phần bản ghi Shop, hỗ trợ chuyển loại và chuyển
// distributor. Sau khi primary write thành công, mảng legacy được đồng bộ:
// entry cũ bị xóa/di chuyển/patch tùy theo cái gì đã thay đổi, và counts
// được reconcile cho distributor cũ lẫn mới.
func (s *Service) UpdateShop(ctx context.Context, id primitive.ObjectID, in UpdateShopInput) (*models.Shop, error) {
	prev, err := s.GetShopByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Resolve distributor mới (nếu có) trước khi ghi bất cứ thứ gì
	newDistID := prev.DistributorID
	if !in.DistributorID.IsZero() && in.DistributorID != prev.DistributorID {
		if _, err := s.loadDistributor(ctx, in.DistributorID); err != nil {
			return nil, err
		}
		newDistID = in.DistributorID
	}

	set := bson.M{"updatedAt": time.Now()}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.OwnerName != "" {
		set["ownerName"] = in.OwnerName
	}
	if in.Address != "" {
		set["address"] = in.Address
	}
	if in.Type != "" {
		if !validShopType(in.Type) {
			return nil, fmt.Errorf("%w: type must be Retailer or WholeSeller", ErrValidation)
		}
		set["type"] = in.Type
	}
	if newDistID != prev.DistributorID {
		set["distributorId"] = newDistID
	}

	_, err = s.DB.Collection("shops").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	updated, err := s.GetShopByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.reconcileMirrorAfterUpdate(ctx, prev, updated)

	s.syncCountsBestEffort(ctx, prev.DistributorID, "updateShop")
	if updated.DistributorID != prev.DistributorID {
		s.syncCountsBestEffort(ctx, updated.DistributorID, "updateShop")
	}

	return updated, nil
}

// reconcileMirrorAfterUpdate đồng bộ mảng legacy sau một update đã commit.
// Best-effort: mọi lỗi chỉ được log.
func (s *Service) reconcileMirrorAfterUpdate(ctx context.Context, prev, updated *models.Shop) {
	oldKey := shopKey(*prev)
	distChanged := updated.DistributorID != prev.DistributorID
	typeChanged := updated.Type != prev.Type

	switch {
	case distChanged || typeChanged:
		// Xóa entry cũ khỏi mảng gốc
		oldDist, err := s.loadDistributor(ctx, prev.DistributorID)
		if err == nil {
			if err := s.mirrorRemove(ctx, oldDist, prev.Type, oldKey); err != nil {
				s.mirrorWarn(err, prev.ID, "updateShop.removeOld")
			}
		} else {
			s.mirrorWarn(err, prev.ID, "updateShop.loadOldDistributor")
		}
		// Thêm entry mới vào mảng đích (distributor mới, hoặc cùng
		// distributor nhưng mảng của loại mới)
		newDist, err := s.loadDistributor(ctx, updated.DistributorID)
		if err == nil {
			if err := s.mirrorAppend(ctx, newDist, updated.Type, updated.Name, updated.OwnerName, updated.Address); err != nil {
				s.mirrorWarn(err, updated.ID, "updateShop.addNew")
			}
		} else {
			s.mirrorWarn(err, updated.ID, "updateShop.loadNewDistributor")
		}
	case shopKey(*updated) != oldKey:
		// Chỉ đổi name/owner/address: patch entry legacy tại chỗ theo khóa cũ
		dist, err := s.loadDistributor(ctx, prev.DistributorID)
		if err != nil {
			s.mirrorWarn(err, prev.ID, "updateShop.loadDistributor")
			return
		}
		if err := s.mirrorPatch(ctx, dist, prev.Type, oldKey, updated.Name, updated.OwnerName, updated.Address); err != nil {
			s.mirrorWarn(err, prev.ID, "updateShop.patch")
		}
	}
}

// DeleteShop soft-delete một cửa hàng: đặt isActive=false, xóa entry legacy
// tương ứng (nếu có) và reconcile counts. Idempotent với shop đã inactive.
func (s *Service) DeleteShop(ctx context.Context, id primitive.ObjectID) error {
	shop, err := s.GetShopByID(ctx, id)
	if err != nil {
		return err
	}
	if !shop.IsActive {
		return nil
	}

	_, err = s.DB.Collection("shops").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return err
	}

	dist, err := s.loadDistributor(ctx, shop.DistributorID)
	if err == nil {
		if err := s.mirrorRemove(ctx, dist, shop.Type, shopKey(*shop)); err != nil {
			s.mirrorWarn(err, shop.ID, "deleteShop")
		}
	} else {
		s.mirrorWarn(err, shop.ID, "deleteShop.loadDistributor")
	}
	s.syncCountsBestEffort(ctx, shop.DistributorID, "deleteShop")

	return nil
}

// ListShopsByDistributor gộp các shop đang active với các entry legacy chưa
// có bản ghi Shop tương ứng, sắp xếp theo tên. Trước khi trả về, trigger một
// lượt reconcile để counts hiển thị ở nơi khác khớp với danh sách vừa trả.
func (s *Service) ListShopsByDistributor(ctx context.Context, distributorID primitive.ObjectID, typeFilter string) ([]ShopView, error) {
	if typeFilter != "" && !validShopType(typeFilter) {
		return nil, fmt.Errorf("%w: type must be Retailer or WholeSeller", ErrValidation)
	}

	dist, err := s.loadDistributor(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	activeShops, err := s.findActiveShops(ctx, distributorID, typeFilter)
	if err != nil {
		return nil, err
	}

	views := mergeShopViews(activeShops, dist, typeFilter)

	s.syncCountsBestEffort(ctx, distributorID, "listShops")

	return views, nil
}

// mergeShopViews gộp bản ghi Shop với các entry legacy-only thành một danh
// sách duy nhất. Entry legacy chỉ được thêm khi khóa định danh của nó không
// trùng với shop nào cùng loại.
func mergeShopViews(activeShops []models.Shop, dist *models.Distributor, typeFilter string) []ShopView {
	retailKeys := make(map[string]struct{})
	wholesaleKeys := make(map[string]struct{})
	views := make([]ShopView, 0, len(activeShops))
	for _, sh := range activeShops {
		views = append(views, ShopView{
			ID:            sh.ID,
			Name:          sh.Name,
			OwnerName:     sh.OwnerName,
			Address:       sh.Address,
			Type:          sh.Type,
			DistributorID: sh.DistributorID,
			IsActive:      sh.IsActive,
		})
		if sh.Type == models.ShopTypeRetailer {
			retailKeys[shopKey(sh)] = struct{}{}
		} else {
			wholesaleKeys[shopKey(sh)] = struct{}{}
		}
	}

	appendLegacyViews := func(entries []models.LegacyShopEntry, shopType string, keys map[string]struct{}) {
		for _, e := range entries {
			if _, ok := keys[legacyKey(e)]; ok {
				continue
			}
			views = append(views, ShopView{
				ID:            e.ID,
				Name:          e.ShopName,
				OwnerName:     e.OwnerName,
				Address:       e.Address,
				Type:          shopType,
				DistributorID: dist.ID,
				IsLegacy:      true,
				IsActive:      true,
			})
		}
	}
	if typeFilter == "" || typeFilter == models.ShopTypeRetailer {
		appendLegacyViews(dist.RetailShops, models.ShopTypeRetailer, retailKeys)
	}
	if typeFilter == "" || typeFilter == models.ShopTypeWholeSeller {
		appendLegacyViews(dist.WholesaleShops, models.ShopTypeWholeSeller, wholesaleKeys)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
	})
	return views
}

// --- Store helpers ---

func (s *Service) loadDistributor(ctx context.Context, id primitive.ObjectID) (*models.Distributor, error) {
	var dist models.Distributor
	err := s.DB.Collection("distributors").FindOne(ctx, bson.M{"_id": id}).Decode(&dist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDistributorNotFound
		}
		return nil, err
	}
	return &dist, nil
}

func (s *Service) findActiveShops(ctx context.Context, distributorID primitive.ObjectID, typeFilter string) ([]models.Shop, error) {
	filter := bson.M{"distributorId": distributorID, "isActive": true}
	if typeFilter != "" {
		filter["type"] = typeFilter
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.DB.Collection("shops").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shopsList []models.Shop
	if err = cursor.All(ctx, &shopsList); err != nil {
		return nil, err
	}
	return shopsList, nil
}

// --- Legacy mirror writes ---

func legacyArrayField(shopType string) string {
	if shopType == models.ShopTypeRetailer {
		return "retailShops"
	}
	return "wholesaleShops"
}

func legacyArrayOf(dist *models.Distributor, shopType string) []models.LegacyShopEntry {
	if shopType == models.ShopTypeRetailer {
		return dist.RetailShops
	}
	return dist.WholesaleShops
}

func (s *Service) saveLegacyArray(ctx context.Context, distributorID primitive.ObjectID, shopType string, entries []models.LegacyShopEntry) error {
	_, err := s.DB.Collection("distributors").UpdateOne(ctx, bson.M{"_id": distributorID}, bson.M{"$set": bson.M{
		legacyArrayField(shopType): entries,
	}})
	return err
}

func (s *Service) mirrorAppend(ctx context.Context, dist *models.Distributor, shopType, shopName, ownerName, address string) error {
	entries, changed := appendLegacyEntry(legacyArrayOf(dist, shopType), shopName, ownerName, address)
	if !changed {
		return nil
	}
	return s.saveLegacyArray(ctx, dist.ID, shopType, entries)
}

func (s *Service) mirrorRemove(ctx context.Context, dist *models.Distributor, shopType, key string) error {
	entries, changed := removeLegacyEntry(legacyArrayOf(dist, shopType), key)
	if !changed {
		return nil
	}
	return s.saveLegacyArray(ctx, dist.ID, shopType, entries)
}

func (s *Service) mirrorPatch(ctx context.Context, dist *models.Distributor, shopType, key, shopName, ownerName, address string) error {
	entries, changed := patchLegacyEntry(legacyArrayOf(dist, shopType), key, shopName, ownerName, address)
	if !changed {
		return nil
	}
	return s.saveLegacyArray(ctx, dist.ID, shopType, entries)
}

func (s *Service) mirrorWarn(err error, shopID primitive.ObjectID, op string) {
	logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
		"shopId": shopID.Hex(),
		"op":     op,
	}).Warn("legacy shop mirror sync failed")
}
