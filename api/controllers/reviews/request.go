package reviews

// maxCommentLength bounds review comments before they travel upstream.
const maxCommentLength = 1000

type submitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}
