package request

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review,omitempty" binding:"max=1000"`
}

func (r *SubmitRatingRequest) ToInput(productID uuid.UUID) commands.SubmitRatingInput {
	return commands.SubmitRatingInput{
		ProductID: productID,
		Rating:    r.Rating,
		Review:    r.Review,
	}
}
