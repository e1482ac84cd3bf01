package fines

// CreateFinePayload is the body for posting a fine. LoanID is optional and
// stored as null when absent. The amount is deliberately unvalidated; it is
// a manual entry field.
type CreateFinePayload struct {
	MemberID   int     `json:"member_id" validate:"required,min=1"`
	LoanID     *int    `json:"loan_id" validate:"omitempty,min=1"`
	FineAmount float64 `json:"fine_amount"`
}
