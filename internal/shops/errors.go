// server/internal/shops/errors.go
package shops

import "errors"

// Các lỗi nghiệp vụ được handler ánh xạ sang HTTP status.
var (
	ErrDistributorNotFound = errors.New("distributor not found")
	ErrShopNotFound        = errors.New("shop not found")
	ErrDuplicateShop       = errors.New("an active shop with this name already exists for this distributor")
	ErrValidation          = errors.New("missing or invalid required field")
)
