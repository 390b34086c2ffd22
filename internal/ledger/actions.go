package ledger

import "github.com/mmynk/dongledger/internal/models"

// Action tags used on the wire.
const (
	TypeReplaceState       = "SET_STATE"
	TypeSetAppName         = "SET_APP_NAME"
	TypeSetTheme           = "SET_THEME"
	TypeAddParticipant     = "ADD_PARTICIPANT"
	TypeUpdateParticipant  = "UPDATE_PARTICIPANT"
	TypeDeleteParticipant  = "DELETE_PARTICIPANT"
	TypeAddItem            = "ADD_ITEM"
	TypeUpdateItem         = "UPDATE_ITEM"
	TypeDeleteItem         = "DELETE_ITEM"
	TypeAddExpenseGroup    = "ADD_EXPENSE_GROUP"
	TypeUpdateExpense      = "UPDATE_EXPENSE"
	TypeDeleteExpenseGroup = "DELETE_EXPENSE_GROUP"
	TypeToggleSettle       = "TOGGLE_SETTLE_EXPENSE"
)

// Action is a typed request to change the ledger state.
type Action interface {
	Type() string
}

// ReplaceState swaps the whole state, used for import and restore.
type ReplaceState struct{ State models.State }

// SetAppName renames the ledger.
type SetAppName struct{ Name string }

// SetTheme selects a theme id.
type SetTheme struct{ Theme string }

// AddParticipant appends a participant. Any ID on the payload is replaced
// by a freshly generated one.
type AddParticipant struct{ Participant models.Participant }

// UpdateParticipant replaces the participant with the same ID.
type UpdateParticipant struct{ Participant models.Participant }

// DeleteParticipant removes a participant. Expense records keep referencing it.
type DeleteParticipant struct{ ID string }

// AddItem appends an item with a freshly generated ID.
type AddItem struct{ Item models.Item }

// UpdateItem replaces the item with the same ID.
type UpdateItem struct{ Item models.Item }

// DeleteItem removes an item.
type DeleteItem struct{ ID string }

// AddExpenseGroup appends pre-built records sharing one TransactionID.
type AddExpenseGroup struct{ Records []models.ExpenseRecord }

// UpdateExpense replaces the record with the same ID.
type UpdateExpense struct{ Record models.ExpenseRecord }

// DeleteExpenseGroup removes every record of a transaction.
type DeleteExpenseGroup struct{ TransactionID string }

// ToggleSettle flips IsSettled on one record.
type ToggleSettle struct{ ID string }

// Unknown carries an unrecognized tag. Reducing it is a no-op.
type Unknown struct{ Tag string }

func (ReplaceState) Type() string       { return TypeReplaceState }
func (SetAppName) Type() string         { return TypeSetAppName }
func (SetTheme) Type() string           { return TypeSetTheme }
func (AddParticipant) Type() string     { return TypeAddParticipant }
func (UpdateParticipant) Type() string  { return TypeUpdateParticipant }
func (DeleteParticipant) Type() string  { return TypeDeleteParticipant }
func (AddItem) Type() string            { return TypeAddItem }
func (UpdateItem) Type() string         { return TypeUpdateItem }
func (DeleteItem) Type() string         { return TypeDeleteItem }
func (AddExpenseGroup) Type() string    { return TypeAddExpenseGroup }
func (UpdateExpense) Type() string      { return TypeUpdateExpense }
func (DeleteExpenseGroup) Type() string { return TypeDeleteExpenseGroup }
func (ToggleSettle) Type() string       { return TypeToggleSettle }
func (u Unknown) Type() string          { return u.Tag }
