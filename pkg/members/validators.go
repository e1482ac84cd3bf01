package members

type CreateMemberPayload struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	ActiveStatusID int    `json:"active_status_id" validate:"required,min=1"`
}
