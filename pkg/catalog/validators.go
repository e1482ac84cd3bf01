package catalog

// BookPayload is the body for both create and update; an update overwrites
// every scalar field. AuthorIDs is a comma-separated id string; see
// ParseAuthorIDs for the tolerated formats.
type BookPayload struct {
	Title           string `json:"title" validate:"required,max=300"`
	CategoryID      int    `json:"category_id" validate:"required,min=1"`
	PublicationDate string `json:"publication_date" validate:"required,date"`
	CopiesOwned     int    `json:"copies_owned" validate:"min=0"`
	AuthorIDs       string `json:"author_ids"`
}
