package models

// ExpenseRecord is one participant's share of one expense group.
// All records produced by a single split share TransactionID, Date,
// Description and Amount at creation time; later edits may diverge per record.
type ExpenseRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// TransactionID groups the records produced by one split.
	TransactionID string `json:"transactionId"`

	// EmployeeID references the charged participant. It may dangle once
	// the participant is deleted.
	EmployeeID string `json:"employeeId"`

	// EmployeeName is a snapshot of the participant's name at creation time.
	EmployeeName string `json:"employeeName"`

	// Amount is the already-divided per-person share, stored unrounded.
	Amount float64 `json:"amount"`

	// Date is free-form and locale formatted. It is compared as a string.
	Date string `json:"date"`

	// Description lists the items of the split, e.g. "Bread (×2)، Tea (×1)".
	Description string `json:"description"`

	// IsSettled marks whether this share has been paid back.
	IsSettled bool `json:"isSettled"`
}
