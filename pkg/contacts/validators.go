package contacts

type CreateContactPayload struct {
	FullName string `json:"full_name" mod:"trim" validate:"fullname"`
}

type ListContactsQuery struct {
	Limit  int     `query:"limit" json:"limit,omitempty" default:"25" validate:"min=1,max=100"`
	Offset int     `query:"offset" json:"offset,omitempty" validate:"min=0"`
	Search *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
}
