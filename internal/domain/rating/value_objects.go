package rating

import (
	"errors"
	"strings"
)

const (
	MinScore        = 1
	MaxScore        = 5
	MaxReviewLength = 1000
)

var (
	ErrInvalidScore  = errors.New("rating must be between 1 and 5")
	ErrReviewTooLong = errors.New("review exceeds maximum length")
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Review is optional free text; the zero value means no review was left.
type Review struct {
	text string
}

func NewReview(s string) (Review, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxReviewLength {
		return Review{}, ErrReviewTooLong
	}
	return Review{text: t}, nil
}

func (r Review) String() string { return r.text }
func (r Review) IsEmpty() bool  { return r.text == "" }

func (r Review) Ptr() *string {
	if r.IsEmpty() {
		return nil
	}
	s := r.text
	return &s
}
