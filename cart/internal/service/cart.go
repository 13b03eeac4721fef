package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/computer-store/cart/internal/common/cache"
	"github.com/Alturino/computer-store/cart/internal/otel"
	"github.com/Alturino/computer-store/cart/internal/pricing"
	"github.com/Alturino/computer-store/cart/internal/repository"
	"github.com/Alturino/computer-store/cart/pkg/request"
	"github.com/Alturino/computer-store/cart/pkg/response"
	inErrors "github.com/Alturino/computer-store/internal/errors"
	"github.com/Alturino/computer-store/internal/log"
	inOtel "github.com/Alturino/computer-store/internal/otel"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) CartService {
	return CartService{pool: pool, queries: queries, cache: cache}
}

func cartCacheKey(userId uuid.UUID, kind repository.CartKind) string {
	return fmt.Sprintf(cache.KeyCartItems, userId.String(), string(kind))
}

func (svc CartService) AddCartItem(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	param request.AddCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Str(log.KeyCartKind, string(kind)).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user by id").Logger()
	logger.Info().Msg("finding user by id")
	_, err := svc.queries.FindUserById(c, userId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("userId=%s with error=%w", userId.String(), inErrors.ErrUserNotFound)
		} else {
			err = fmt.Errorf("failed finding user by userId=%s with error=%w", userId.String(), err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("found user by id")

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		err := tx.Rollback(c)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()
	qtx := svc.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "finding product by id").Logger()
	logger.Info().Msg("finding product by id")
	product, err := qtx.FindProductById(c, param.ProductId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"productId=%s with error=%w",
				param.ProductId.String(),
				inErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf(
				"failed finding product by productId=%s with error=%w",
				param.ProductId.String(),
				err,
			)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().
		Str(log.KeyProductName, product.Name).
		Int32(log.KeyProductStock, product.Stock).
		Logger()
	logger.Info().Msg("found product by id")

	logger = logger.With().Str(log.KeyProcess, "checking stock").Logger()
	logger.Info().Msg("checking stock")
	if param.Quantity > product.Stock {
		err = fmt.Errorf(
			"requested quantity=%d for productId=%s exceeds remaining stock=%d with error=%w",
			param.Quantity,
			param.ProductId.String(),
			product.Stock,
			inErrors.ErrInsufficientStock,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("checked stock")

	price := repository.DecimalFromNumeric(product.Price)
	discount := repository.DecimalFromNumeric(product.Discount)

	logger = logger.With().Str(log.KeyProcess, "locking existing cart item").Logger()
	logger.Info().Msg("locking existing cart item")
	existing, err := qtx.FindCartItemForUpdate(c, repository.FindCartItemForUpdateParams{
		UserID:    userId,
		ProductID: param.ProductId,
		Kind:      kind,
	})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed locking existing cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}

	var cartItem repository.CartItem
	if errors.Is(err, pgx.ErrNoRows) {
		logger = logger.With().Str(log.KeyProcess, "inserting cart item").Logger()
		logger.Info().Msg("inserting cart item")
		componentType := repository.NullComponentType{}
		if kind == repository.CartKindBUILDPC {
			componentType = repository.NullComponentType{
				ComponentType: product.ComponentType,
				Valid:         true,
			}
		}
		cartItem, err = qtx.InsertCartItem(c, repository.InsertCartItemParams{
			ID:            uuid.New(),
			UserID:        userId,
			ProductID:     param.ProductId,
			Kind:          kind,
			ComponentType: componentType,
			Quantity:      param.Quantity,
			TotalPrice: repository.NumericFromDecimal(
				pricing.LineTotal(price, discount, param.Quantity),
			),
		})
		if err != nil {
			err = fmt.Errorf("failed inserting cart item with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.CartItem{}, err
		}
		logger.Info().Msg("inserted cart item")
	} else {
		logger = logger.With().Str(log.KeyProcess, "merging cart item").Logger()
		logger.Info().Msg("merging cart item")
		mergedQuantity := existing.Quantity + param.Quantity
		if mergedQuantity > product.Stock {
			err = fmt.Errorf(
				"merged quantity=%d for productId=%s exceeds remaining stock=%d with error=%w",
				mergedQuantity,
				param.ProductId.String(),
				product.Stock,
				inErrors.ErrInsufficientStock,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.CartItem{}, err
		}
		cartItem, err = qtx.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
			ID:       existing.ID,
			Quantity: mergedQuantity,
			TotalPrice: repository.NumericFromDecimal(
				pricing.LineTotal(price, discount, mergedQuantity),
			),
		})
		if err != nil {
			err = fmt.Errorf("failed merging cart item with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.CartItem{}, err
		}
		logger.Info().Msg("merged cart item")
	}

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("committed transaction")

	svc.invalidateCart(c, userId, kind)

	return cartItem.Response(product), nil
}

func (svc CartService) FindCartItems(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) (cart response.Cart, err error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartItems")
	defer span.End()

	cacheKey := cartCacheKey(userId, kind)

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCartItems").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart in cache").Logger()
	logger.Info().Msg("finding cart in cache")
	jsonString, err := svc.cache.Get(c, cacheKey).Result()
	if err != nil {
		logger.Info().Err(err).Msg("cart not found in cache")

		logger = logger.With().Str(log.KeyProcess, "finding cart in db").Logger()
		logger.Info().Msg("finding cart in db")
		rows, err := svc.queries.FindCartItemsByUserId(c, repository.FindCartItemsByUserIdParams{
			UserID: userId,
			Kind:   kind,
		})
		if err != nil {
			err = fmt.Errorf("failed finding cart in db with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}
		logger = logger.With().Int(log.KeyCartItems, len(rows)).Logger()
		logger.Info().Msg("found cart in db")

		cart = response.Cart{
			UserId:     userId,
			Kind:       string(kind),
			CartItems:  make([]response.CartItem, 0, len(rows)),
			TotalPrice: decimal.Zero,
		}
		for _, row := range rows {
			item := row.Response()
			cart.CartItems = append(cart.CartItems, item)
			cart.TotalPrice = cart.TotalPrice.Add(item.TotalPrice)
		}

		logger = logger.With().Str(log.KeyProcess, "inserting cart to cache").Logger()
		logger.Info().Msg("inserting cart to cache")
		cartJson, err := json.Marshal(cart)
		if err != nil {
			err = fmt.Errorf("failed marshaling cart with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}
		err = svc.cache.Set(c, cacheKey, cartJson, time.Hour*1).Err()
		if err != nil {
			err = fmt.Errorf("failed inserting cart to cache with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Cart{}, err
		}
		logger.Info().Msg("inserted cart to cache")

		return cart, nil
	}
	logger.Info().Msg("found cart in cache")

	logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
	logger.Info().Msg("unmarshaling cache")
	err = json.Unmarshal([]byte(jsonString), &cart)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("unmarshaled cache")

	return cart, nil
}

func (svc CartService) UpdateCartItemQuantity(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	param request.UpdateCartItemQuantity,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItemQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartItemQuantity").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyProductID, param.ProductId.String()).
		Str(log.KeyCartKind, string(kind)).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		err := tx.Rollback(c)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()
	qtx := svc.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "locking existing cart item").Logger()
	logger.Info().Msg("locking existing cart item")
	existing, err := qtx.FindCartItemForUpdate(c, repository.FindCartItemForUpdateParams{
		UserID:    userId,
		ProductID: param.ProductId,
		Kind:      kind,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"productId=%s with error=%w",
				param.ProductId.String(),
				inErrors.ErrProductNotInCart,
			)
		} else {
			err = fmt.Errorf("failed locking existing cart item with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("locked existing cart item")

	logger = logger.With().Str(log.KeyProcess, "finding product by id").Logger()
	logger.Info().Msg("finding product by id")
	product, err := qtx.FindProductById(c, param.ProductId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"productId=%s with error=%w",
				param.ProductId.String(),
				inErrors.ErrProductNotFound,
			)
		} else {
			err = fmt.Errorf(
				"failed finding product by productId=%s with error=%w",
				param.ProductId.String(),
				err,
			)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().Int32(log.KeyProductStock, product.Stock).Logger()
	logger.Info().Msg("found product by id")

	logger = logger.With().Str(log.KeyProcess, "checking stock").Logger()
	logger.Info().Msg("checking stock")
	if param.Quantity > product.Stock {
		err = fmt.Errorf(
			"requested quantity=%d for productId=%s exceeds remaining stock=%d with error=%w",
			param.Quantity,
			param.ProductId.String(),
			product.Stock,
			inErrors.ErrInsufficientStock,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("checked stock")

	price := repository.DecimalFromNumeric(product.Price)
	discount := repository.DecimalFromNumeric(product.Discount)

	logger = logger.With().Str(log.KeyProcess, "updating cart item quantity").Logger()
	logger.Info().Msg("updating cart item quantity")
	cartItem, err := qtx.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
		ID:       existing.ID,
		Quantity: param.Quantity,
		TotalPrice: repository.NumericFromDecimal(
			pricing.LineTotal(price, discount, param.Quantity),
		),
	})
	if err != nil {
		err = fmt.Errorf("failed updating cart item quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("updated cart item quantity")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("committed transaction")

	svc.invalidateCart(c, userId, kind)

	return cartItem.Response(product), nil
}

func (svc CartService) RemoveCartItemById(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	cartItemId uuid.UUID,
) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItemById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItemById").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Str(log.KeyCartItemID, cartItemId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart item by id").Logger()
	logger.Info().Msg("finding cart item by id")
	cartItem, err := svc.queries.FindCartItemById(c, cartItemId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"cartItemId=%s with error=%w",
				cartItemId.String(),
				inErrors.ErrCartItemNotFound,
			)
		} else {
			err = fmt.Errorf(
				"failed finding cart item by cartItemId=%s with error=%w",
				cartItemId.String(),
				err,
			)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("found cart item by id")

	logger = logger.With().Str(log.KeyProcess, "checking ownership").Logger()
	logger.Info().Msg("checking ownership")
	if cartItem.UserID != userId {
		err = fmt.Errorf(
			"cartItemId=%s with error=%w",
			cartItemId.String(),
			inErrors.ErrForbidden,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if cartItem.Kind != kind {
		err = fmt.Errorf(
			"cartItemId=%s with error=%w",
			cartItemId.String(),
			inErrors.ErrCartItemNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("checked ownership")

	logger = logger.With().Str(log.KeyProcess, "deleting cart item").Logger()
	logger.Info().Msg("deleting cart item")
	deleted, err := svc.queries.DeleteCartItemById(c, cartItemId)
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf(
			"cartItemId=%s with error=%w",
			cartItemId.String(),
			inErrors.ErrCartItemNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart item")

	svc.invalidateCart(c, userId, kind)

	return nil
}

func (svc CartService) RemoveCartItemByProductId(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	productId uuid.UUID,
) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItemByProductId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItemByProductId").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Str(log.KeyProductID, productId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart item").Logger()
	logger.Info().Msg("deleting cart item")
	deleted, err := svc.queries.DeleteCartItemByUserIdAndProductId(
		c,
		repository.DeleteCartItemByUserIdAndProductIdParams{
			UserID:    userId,
			ProductID: productId,
			Kind:      kind,
		},
	)
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			productId.String(),
			inErrors.ErrProductNotInCart,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart item")

	svc.invalidateCart(c, userId, kind)

	return nil
}

// ClearCart is idempotent, clearing an already empty cart succeeds.
func (svc CartService) ClearCart(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) error {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart items").Logger()
	logger.Info().Msg("deleting cart items")
	deleted, err := svc.queries.DeleteCartItemsByUserId(c, repository.DeleteCartItemsByUserIdParams{
		UserID: userId,
		Kind:   kind,
	})
	if err != nil {
		err = fmt.Errorf("failed deleting cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("deleted %d cart items", deleted)

	svc.invalidateCart(c, userId, kind)

	return nil
}

func (svc CartService) UpdateCartInfo(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	param request.UpdateCartInfo,
) error {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartInfo")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartInfo").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating cart info").Logger()
	logger.Info().Msg("updating cart info")
	updated, err := svc.queries.UpdateCartItemsInfo(c, repository.UpdateCartItemsInfoParams{
		FullName: pgtype.Text{String: param.FullName, Valid: true},
		Phone:    pgtype.Text{String: param.Phone, Valid: true},
		Address:  pgtype.Text{String: param.Address, Valid: true},
		UserID:   userId,
		Kind:     kind,
	})
	if err != nil {
		err = fmt.Errorf("failed updating cart info with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if updated == 0 {
		err = fmt.Errorf("userId=%s with error=%w", userId.String(), inErrors.ErrEmptyCart)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("updated cart info on %d cart items", updated)

	svc.invalidateCart(c, userId, kind)

	return nil
}

// ValidateCartStock is the pre-checkout gate. It compares every line's
// quantity against the product's current stock without mutating anything.
func (svc CartService) ValidateCartStock(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) error {
	c, span := otel.Tracer.Start(c, "CartService ValidateCartStock")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ValidateCartStock").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	logger.Info().Msg("finding cart items")
	rows, err := svc.queries.FindCartItemsByUserId(c, repository.FindCartItemsByUserIdParams{
		UserID: userId,
		Kind:   kind,
	})
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Int(log.KeyCartItems, len(rows)).Logger()
	logger.Info().Msg("found cart items")

	logger = logger.With().Str(log.KeyProcess, "validating stock").Logger()
	logger.Info().Msg("validating stock")
	for _, row := range rows {
		if row.Quantity > row.Stock {
			err = fmt.Errorf(
				"product=%s is short by %d, requested quantity=%d but stock=%d with error=%w",
				row.ProductName,
				row.Quantity-row.Stock,
				row.Quantity,
				row.Stock,
				inErrors.ErrStockConflict,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
	}
	logger.Info().Msg("validated stock")

	return nil
}

func (svc CartService) CartCount(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) (response.CartCount, error) {
	c, span := otel.Tracer.Start(c, "CartService CartCount")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService CartCount").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "counting cart items").Logger()
	logger.Info().Msg("counting cart items")
	row, err := svc.queries.CountCartItemsByUserId(c, repository.CountCartItemsByUserIdParams{
		UserID: userId,
		Kind:   kind,
	})
	if err != nil {
		err = fmt.Errorf("failed counting cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartCount{}, err
	}
	logger.Info().Msg("counted cart items")

	return response.CartCount{
		Count:         row.Count,
		TotalQuantity: row.TotalQuantity,
		TotalPrice:    repository.DecimalFromNumeric(row.TotalPrice),
	}, nil
}

func (svc CartService) IsProductInCart(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
	productId uuid.UUID,
) (bool, error) {
	c, span := otel.Tracer.Start(c, "CartService IsProductInCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService IsProductInCart").
		Str(log.KeyUserID, userId.String()).
		Str(log.KeyCartKind, string(kind)).
		Str(log.KeyProductID, productId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart item").Logger()
	logger.Info().Msg("finding cart item")
	_, err := svc.queries.FindCartItemByUserIdAndProductId(
		c,
		repository.FindCartItemByUserIdAndProductIdParams{
			UserID:    userId,
			ProductID: productId,
			Kind:      kind,
		},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("cart item not found")
			return false, nil
		}
		err = fmt.Errorf("failed finding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return false, err
	}
	logger.Info().Msg("found cart item")

	return true, nil
}

// invalidateCart is best effort, the mutation is already committed so a
// failed delete only leaves a stale entry until the TTL expires.
func (svc CartService) invalidateCart(
	c context.Context,
	userId uuid.UUID,
	kind repository.CartKind,
) {
	cacheKey := cartCacheKey(userId, kind)

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService invalidateCart").
		Str(log.KeyProcess, "deleting cart from cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger.Info().Msg("deleting cart from cache")
	err := svc.cache.Del(c, cacheKey).Err()
	if err != nil {
		err = fmt.Errorf("failed deleting cart from cache with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("deleted cart from cache")
}
