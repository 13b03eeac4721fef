package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyToken         = "token"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyPathValues    = "pathValues"
	KeyTraceID       = "traceId"
	KeySpanID        = "spanId"
	KeyUserID        = "userId"
	KeyProductID     = "productId"
	KeyProductName   = "productName"
	KeyProductStock  = "productStock"
	KeyCartItemID    = "cartItemId"
	KeyCartItems     = "cartItems"
	KeyCartKind      = "cartKind"
	KeyCartSummary   = "cartSummary"
	KeyQuantity      = "quantity"
	KeyTotalPrice    = "totalPrice"
	KeyCacheKey      = "cacheKey"
	KeyDbURL         = "dbUrl"
)
