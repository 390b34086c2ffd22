package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/mmynk/dongledger/internal/models"
)

// Envelope is the wire form of an action: a tag plus its JSON payload.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode converts an envelope into a typed action. Unrecognized tags
// decode to Unknown; a payload that does not fit its tag is an error.
func (e Envelope) Decode() (Action, error) {
	var (
		a   Action
		err error
	)
	switch e.Type {
	case TypeReplaceState:
		var s models.State
		err = e.unmarshal(&s)
		a = ReplaceState{State: s}
	case TypeSetAppName:
		var name string
		err = e.unmarshal(&name)
		a = SetAppName{Name: name}
	case TypeSetTheme:
		var theme string
		err = e.unmarshal(&theme)
		a = SetTheme{Theme: theme}
	case TypeAddParticipant:
		var p models.Participant
		err = e.unmarshal(&p)
		a = AddParticipant{Participant: p}
	case TypeUpdateParticipant:
		var p models.Participant
		err = e.unmarshal(&p)
		a = UpdateParticipant{Participant: p}
	case TypeDeleteParticipant:
		var id string
		err = e.unmarshal(&id)
		a = DeleteParticipant{ID: id}
	case TypeAddItem:
		var it models.Item
		err = e.unmarshal(&it)
		a = AddItem{Item: it}
	case TypeUpdateItem:
		var it models.Item
		err = e.unmarshal(&it)
		a = UpdateItem{Item: it}
	case TypeDeleteItem:
		var id string
		err = e.unmarshal(&id)
		a = DeleteItem{ID: id}
	case TypeAddExpenseGroup:
		var records []models.ExpenseRecord
		err = e.unmarshal(&records)
		a = AddExpenseGroup{Records: records}
	case TypeUpdateExpense:
		var r models.ExpenseRecord
		err = e.unmarshal(&r)
		a = UpdateExpense{Record: r}
	case TypeDeleteExpenseGroup:
		var tx string
		err = e.unmarshal(&tx)
		a = DeleteExpenseGroup{TransactionID: tx}
	case TypeToggleSettle:
		var id string
		err = e.unmarshal(&id)
		a = ToggleSettle{ID: id}
	default:
		return Unknown{Tag: e.Type}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", e.Type, err)
	}
	return a, nil
}

func (e Envelope) unmarshal(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("payload required")
	}
	return json.Unmarshal(e.Payload, v)
}

// NewEnvelope encodes a typed action for the wire.
func NewEnvelope(a Action) (Envelope, error) {
	var payload any
	switch a := a.(type) {
	case ReplaceState:
		payload = a.State
	case SetAppName:
		payload = a.Name
	case SetTheme:
		payload = a.Theme
	case AddParticipant:
		payload = a.Participant
	case UpdateParticipant:
		payload = a.Participant
	case DeleteParticipant:
		payload = a.ID
	case AddItem:
		payload = a.Item
	case UpdateItem:
		payload = a.Item
	case DeleteItem:
		payload = a.ID
	case AddExpenseGroup:
		payload = a.Records
	case UpdateExpense:
		payload = a.Record
	case DeleteExpenseGroup:
		payload = a.TransactionID
	case ToggleSettle:
		payload = a.ID
	default:
		return Envelope{Type: a.Type()}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s payload: %w", a.Type(), err)
	}
	return Envelope{Type: a.Type(), Payload: raw}, nil
}
