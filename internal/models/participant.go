package models

// Participant is a person who can be charged a share of an expense.
type Participant struct {
	// ID is the unique identifier for the participant.
	ID string `json:"id"`

	// Name is the display name. It is copied into every ExpenseRecord
	// created for this participant.
	Name string `json:"name"`

	// Phone is an optional contact number (free-form).
	Phone string `json:"phone"`
}

// Item is a purchasable good used to build the total of a split.
type Item struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`

	// Name is the display name (e.g., "Bread", "Tea").
	Name string `json:"name"`

	// Price is the non-negative unit price.
	Price float64 `json:"price"`
}
