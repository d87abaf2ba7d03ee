package request

type CreateTestimonialRequest struct {
	Author   string `json:"author" binding:"required"`
	Location string `json:"location"`
	Text     string `json:"text" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateTestimonialRequest struct {
	Author   string `json:"author" binding:"required"`
	Location string `json:"location"`
	Text     string `json:"text" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}
