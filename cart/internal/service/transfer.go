package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Alturino/computer-store/cart/internal/otel"
	"github.com/Alturino/computer-store/cart/internal/repository"
	"github.com/Alturino/computer-store/internal/log"
	inOtel "github.com/Alturino/computer-store/internal/otel"
)

// TransferBuildCart merges every build cart line into the standard cart
// and empties the build cart, all inside one transaction. Quantity and
// total price are carried over additively, stock is not re-checked, it
// was already validated when the line entered the build cart.
func (svc CartService) TransferBuildCart(c context.Context, userId uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CartService TransferBuildCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService TransferBuildCart").
		Str(log.KeyUserID, userId.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
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

	logger = logger.With().Str(log.KeyProcess, "finding build cart items").Logger()
	logger.Info().Msg("finding build cart items")
	buildRows, err := qtx.FindCartItemsByUserId(c, repository.FindCartItemsByUserIdParams{
		UserID: userId,
		Kind:   repository.CartKindBUILDPC,
	})
	if err != nil {
		err = fmt.Errorf("failed finding build cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger = logger.With().Int(log.KeyCartItems, len(buildRows)).Logger()
	logger.Info().Msg("found build cart items")

	if len(buildRows) == 0 {
		logger.Info().Msg("build cart is empty, nothing to transfer")
		return nil
	}

	logger = logger.With().Str(log.KeyProcess, "merging build cart items into cart").Logger()
	logger.Info().Msg("merging build cart items into cart")
	for _, buildRow := range buildRows {
		lg := logger.With().
			Str(log.KeyProductID, buildRow.ProductID.String()).
			Int32(log.KeyQuantity, buildRow.Quantity).
			Logger()

		existing, err := qtx.FindCartItemForUpdate(c, repository.FindCartItemForUpdateParams{
			UserID:    userId,
			ProductID: buildRow.ProductID,
			Kind:      repository.CartKindSTANDARD,
		})
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				err = fmt.Errorf("failed locking existing cart item with error=%w", err)
				inOtel.RecordError(err, span)
				lg.Error().Err(err).Msg(err.Error())
				return err
			}

			lg.Info().Msg("inserting new cart item")
			_, err = qtx.InsertCartItem(c, repository.InsertCartItemParams{
				ID:         uuid.New(),
				UserID:     userId,
				ProductID:  buildRow.ProductID,
				Kind:       repository.CartKindSTANDARD,
				Quantity:   buildRow.Quantity,
				TotalPrice: buildRow.TotalPrice,
			})
			if err != nil {
				err = fmt.Errorf("failed inserting new cart item with error=%w", err)
				inOtel.RecordError(err, span)
				lg.Error().Err(err).Msg(err.Error())
				return err
			}
			lg.Info().Msg("inserted new cart item")
			continue
		}

		lg.Info().Msg("merging into existing cart item")
		_, err = qtx.IncrementCartItemQuantity(c, repository.IncrementCartItemQuantityParams{
			ID:         existing.ID,
			Quantity:   buildRow.Quantity,
			TotalPrice: buildRow.TotalPrice,
		})
		if err != nil {
			err = fmt.Errorf("failed merging into existing cart item with error=%w", err)
			inOtel.RecordError(err, span)
			lg.Error().Err(err).Msg(err.Error())
			return err
		}
		lg.Info().Msg("merged into existing cart item")
	}
	logger.Info().Msg("merged build cart items into cart")

	logger = logger.With().Str(log.KeyProcess, "emptying build cart").Logger()
	logger.Info().Msg("emptying build cart")
	deleted, err := qtx.DeleteCartItemsByUserId(c, repository.DeleteCartItemsByUserIdParams{
		UserID: userId,
		Kind:   repository.CartKindBUILDPC,
	})
	if err != nil {
		err = fmt.Errorf("failed emptying build cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msgf("emptied build cart, deleted %d items", deleted)

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("committed transaction")

	svc.invalidateCart(c, userId, repository.CartKindSTANDARD)
	svc.invalidateCart(c, userId, repository.CartKindBUILDPC)

	return nil
}
