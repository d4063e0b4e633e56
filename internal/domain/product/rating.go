package product

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/money"
)

const (
	DefaultConfidenceWeight = 5.0
	DefaultMeanRating       = 3.5
)

// RatingPolicy holds the constants of the Bayesian smoothing.
type RatingPolicy struct {
	ConfidenceWeight float64
	DefaultMean      float64
}

func DefaultRatingPolicy() RatingPolicy {
	return RatingPolicy{
		ConfidenceWeight: DefaultConfidenceWeight,
		DefaultMean:      DefaultMeanRating,
	}
}

// GlobalTotals is the catalogue-wide sum of average*count and of count over rated products.
type GlobalTotals struct {
	WeightedSum float64
	Count       int64
}

func TotalsOf(aggs ...RatingAggregate) GlobalTotals {
	var t GlobalTotals
	for _, a := range aggs {
		if a.count <= 0 {
			continue
		}
		t.WeightedSum += a.average * float64(a.count)
		t.Count += int64(a.count)
	}
	return t
}

// GlobalAverage falls back to DefaultMean when nothing in the catalogue is rated.
func (p RatingPolicy) GlobalAverage(t GlobalTotals) float64 {
	if t.Count <= 0 {
		return p.DefaultMean
	}
	return t.WeightedSum / float64(t.Count)
}

func (p RatingPolicy) BayesianRating(count int, average, globalAverage float64) float64 {
	if count <= 0 {
		return 0
	}
	n := float64(count)
	return money.Round((p.ConfidenceWeight*globalAverage + average*n) / (p.ConfidenceWeight + n))
}

// RatingAggregate is the rating-derived state of one product.
type RatingAggregate struct {
	count    int
	average  float64
	bayesian float64
}

func NewRatingAggregate(count int, average, bayesian float64) RatingAggregate {
	if count <= 0 {
		return RatingAggregate{}
	}
	return RatingAggregate{count: count, average: average, bayesian: bayesian}
}

func (a RatingAggregate) Count() int        { return a.count }
func (a RatingAggregate) Average() float64  { return a.average }
func (a RatingAggregate) Bayesian() float64 { return a.bayesian }
func (a RatingAggregate) IsRated() bool     { return a.count > 0 }

// ApplyChange folds one rating mutation into count and average.
// isNew marks an insert, newRating == 0 marks a deletion of oldRating,
// anything else replaces oldRating with newRating. The Bayesian score is
// left untouched until Rescore, except that it resets with the last rating.
func (a RatingAggregate) ApplyChange(oldRating, newRating int, isNew bool) RatingAggregate {
	total := a.average * float64(a.count)

	switch {
	case isNew:
		count := a.count + 1
		return RatingAggregate{
			count:    count,
			average:  (total + float64(newRating)) / float64(count),
			bayesian: a.bayesian,
		}
	case newRating > 0:
		if a.count == 0 {
			return a
		}
		return RatingAggregate{
			count:    a.count,
			average:  (total - float64(oldRating) + float64(newRating)) / float64(a.count),
			bayesian: a.bayesian,
		}
	default:
		count := a.count - 1
		if count <= 0 {
			return RatingAggregate{}
		}
		return RatingAggregate{
			count:    count,
			average:  (total - float64(oldRating)) / float64(count),
			bayesian: a.bayesian,
		}
	}
}

func (a RatingAggregate) Rescore(p RatingPolicy, globalAverage float64) RatingAggregate {
	a.bayesian = p.BayesianRating(a.count, a.average, globalAverage)
	return a
}
