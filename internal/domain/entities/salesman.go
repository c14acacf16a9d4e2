package entities

// Salesman holds the display attributes shown in the unassigned-inquiries queue.
// This workflow reads salesmen but never mutates them.
type Salesman struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
