package names

type ParsePayload struct {
	Name string `query:"name" json:"name" mod:"trim" validate:"fullname"`
}

// ParseBatchPayload only checks the shape of the batch. Each name is
// validated on its own so one bad entry doesn't fail the whole request.
type ParseBatchPayload struct {
	Names []string `json:"names" validate:"required,min=1"`
}

type ClassifyQuery struct {
	Word string `query:"word" json:"word" mod:"trim" validate:"required,word"`
}
