package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/readstore"
	"stay-pricing/internal/infra/repository"
	"stay-pricing/internal/infra/repository/converter"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/config"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: newRetryPolicy(cfg.DB),
	}
}

// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.retry.shouldRetry(err, attempt) {
			if attempt > 0 && isRetryable(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly gives fn a consistent snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// attempt owns one transaction. Rollback is deferred per attempt so retries never stack defers.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	propertyPricingRepo  shared.PropertyPricingRepository
	roomAvailabilityRepo shared.RoomAvailabilityRepository
	peakSeasonRepo       shared.PeakSeasonRateRepository
	commandReads         shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) PropertyPricing() shared.PropertyPricingRepository {
	if t.propertyPricingRepo == nil {
		t.propertyPricingRepo = repository.NewPropertyPricingRepository(t.uow.q)
	}
	return t.propertyPricingRepo
}

func (t *pgTx) RoomAvailability() shared.RoomAvailabilityRepository {
	if t.roomAvailabilityRepo == nil {
		t.roomAvailabilityRepo = repository.NewRoomAvailabilityRepository(t.uow.q)
	}
	return t.roomAvailabilityRepo
}

func (t *pgTx) PeakSeasonRates() shared.PeakSeasonRateRepository {
	if t.peakSeasonRepo == nil {
		t.peakSeasonRepo = repository.NewPeakSeasonRateRepository(t.uow.q)
	}
	return t.peakSeasonRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	pricingStore *readstore.PricingReadStore
}

func (r *commandReads) TargetByID(ctx context.Context, kind pricing.TargetKind, id uuid.UUID) (*shared.TargetSnapshot, error) {
	if r.pricingStore == nil {
		r.pricingStore = readstore.NewPricingReadStore(r.uow.q, r.dbtx)
	}

	target, err := r.pricingStore.FindTarget(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.TargetSnapshot{
		ID:         target.ID,
		Kind:       target.Kind,
		PropertyID: target.PropertyID,
		HostID:     target.HostID,
	}
	return snapshot, nil
}

func (r *commandReads) PriceOverrideByID(ctx context.Context, id uuid.UUID) (*rates.PriceOverride, error) {
	row, err := r.uow.q.GetPropertyPricingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get property pricing by id", err)
	}
	return converter.PriceOverrideFromRow(row), nil
}

func (r *commandReads) AvailabilityBlockByID(ctx context.Context, id uuid.UUID) (*rates.AvailabilityBlock, error) {
	row, err := r.uow.q.GetRoomAvailabilityByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room availability by id", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

func (r *commandReads) PeakSeasonRateByID(ctx context.Context, id uuid.UUID) (*rates.PeakSeasonRate, error) {
	row, err := r.uow.q.GetPeakSeasonRateByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get peak season rate by id", err)
	}
	rate, err := converter.PeakSeasonRateFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map peak season rate", err, infra.KindDBFailure)
	}
	return rate, nil
}
