package models

// WorkItem is a unit of work being estimated. AgreedEstimate stays zero
// until a moderator records consensus explicitly.
type WorkItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	LinkURL        string    `json:"linkUrl,omitempty"`
	AgreedEstimate VoteValue `json:"agreedEstimate"`
}

func NewWorkItem(id, title, description string) *WorkItem {
	return &WorkItem{
		ID:          id,
		Title:       title,
		Description: description,
	}
}
