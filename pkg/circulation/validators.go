package circulation

type IssueLoanPayload struct {
	BookID   int `json:"book_id" validate:"required,min=1"`
	MemberID int `json:"member_id" validate:"required,min=1"`
}
