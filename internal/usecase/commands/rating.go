package commands

import (
	"context"
	"log/slog"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/product"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/rating"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/clock"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/errs"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrRatingNotAllowed = errs.New("only customers who purchased this product can rate it")
	ErrRatingNotFound   = errs.New("rating not found")
	ErrRatingNotOwned   = errs.New("rating not owned by user")
)

type SubmitRatingInput struct {
	ProductID uuid.UUID
	Rating    int
	Review    string
}

type RatingResult struct {
	RatingID         uuid.UUID
	Created          bool
	VerifiedPurchase bool
	ProductID        uuid.UUID
	RatingCount      int
	AverageRating    float64
	BayesianRating   float64
}

type RatingCommands interface {
	Submit(ctx context.Context, caller Caller, in SubmitRatingInput) (*RatingResult, error)
	// Delete removes userID's rating of the product. Only that user or an admin may do so.
	Delete(ctx context.Context, caller Caller, productID, userID uuid.UUID) error
	// RecalculateAll rescores every rated product against one global average and
	// returns how many products were touched.
	RecalculateAll(ctx context.Context) (int, error)
}

type ratingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy product.RatingPolicy
}

func NewRatingUseCase(uow shared.UnitOfWork, clk clock.Clock, policy product.RatingPolicy) RatingCommands {
	return &ratingUseCaseImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (uc *ratingUseCaseImpl) Submit(ctx context.Context, caller Caller, in SubmitRatingInput) (*RatingResult, error) {
	if _, err := rating.NewScore(in.Rating); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := rating.NewReview(in.Review); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	purchased, err := uc.uow.CommandReads().HasCompletedPurchase(ctx, caller.UserID, in.ProductID)
	if err != nil {
		return nil, storeError(err)
	}
	if !purchased && !caller.IsAdmin() {
		return nil, ErrRatingNotAllowed
	}

	var result *RatingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		agg, err := uc.lockProduct(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		totals, err := tx.RatingStats().GlobalTotals(ctx, tx.DB())
		if err != nil {
			return storeError(err)
		}

		existing, err := tx.ProductRatings().FindByProductAndUser(ctx, tx.DB(), in.ProductID, caller.UserID)
		if err != nil {
			return storeError(err)
		}

		var pr *rating.ProductRating
		created := existing == nil
		if created {
			pr, err = rating.NewProductRating(uuid.Nil, in.ProductID, caller.UserID, in.Rating, in.Review, purchased, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.ProductRatings().Create(ctx, tx.DB(), pr); err != nil {
				return storeError(err)
			}
			agg = agg.ApplyChange(0, in.Rating, true)
		} else {
			pr = existing
			previous, err := pr.Revise(in.Rating, in.Review, purchased, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.ProductRatings().Update(ctx, tx.DB(), pr); err != nil {
				return storeError(err)
			}
			agg = agg.ApplyChange(previous, in.Rating, false)
		}

		agg = agg.Rescore(uc.policy, uc.policy.GlobalAverage(totals))
		if err := tx.RatingStats().Save(ctx, tx.DB(), in.ProductID, agg); err != nil {
			return storeError(err)
		}

		result = &RatingResult{
			RatingID:         pr.ID(),
			Created:          created,
			VerifiedPurchase: pr.VerifiedPurchase(),
			ProductID:        in.ProductID,
			RatingCount:      agg.Count(),
			AverageRating:    agg.Average(),
			BayesianRating:   agg.Bayesian(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ratingUseCaseImpl) Delete(ctx context.Context, caller Caller, productID, userID uuid.UUID) error {
	if userID != caller.UserID && !caller.IsAdmin() {
		return ErrRatingNotOwned
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, err := uc.lockProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		totals, err := tx.RatingStats().GlobalTotals(ctx, tx.DB())
		if err != nil {
			return storeError(err)
		}

		existing, err := tx.ProductRatings().FindByProductAndUser(ctx, tx.DB(), productID, userID)
		if err != nil {
			return storeError(err)
		}
		if existing == nil {
			return ErrRatingNotFound
		}
		if err := tx.ProductRatings().Delete(ctx, tx.DB(), existing.ID()); err != nil {
			return storeError(err)
		}

		agg = agg.ApplyChange(existing.Score().Value(), 0, false)
		agg = agg.Rescore(uc.policy, uc.policy.GlobalAverage(totals))
		if err := tx.RatingStats().Save(ctx, tx.DB(), productID, agg); err != nil {
			return storeError(err)
		}
		return nil
	})
}

func (uc *ratingUseCaseImpl) RecalculateAll(ctx context.Context) (int, error) {
	var touched int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rated, err := tx.RatingStats().ListRatedForUpdate(ctx, tx.DB())
		if err != nil {
			return storeError(err)
		}

		aggs := make([]product.RatingAggregate, len(rated))
		for i, rp := range rated {
			aggs[i] = rp.Aggregate
		}
		global := uc.policy.GlobalAverage(product.TotalsOf(aggs...))

		for _, rp := range rated {
			if err := tx.RatingStats().Save(ctx, tx.DB(), rp.ProductID, rp.Aggregate.Rescore(uc.policy, global)); err != nil {
				return storeError(err)
			}
		}
		touched = len(rated)
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("bayesian ratings recalculated", "products", touched)
	return touched, nil
}

func (uc *ratingUseCaseImpl) lockProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) (product.RatingAggregate, error) {
	agg, err := tx.RatingStats().LockProduct(ctx, tx.DB(), productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return product.RatingAggregate{}, ErrProductNotFound
		}
		return product.RatingAggregate{}, storeError(err)
	}
	return agg, nil
}
