package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongledger/internal/models"
)

func TestEnvelope_Decode(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{`{"type":"SET_APP_NAME","payload":"Office"}`, SetAppName{Name: "Office"}},
		{`{"type":"SET_THEME","payload":"sunset"}`, SetTheme{Theme: "sunset"}},
		{`{"type":"ADD_PARTICIPANT","payload":{"name":"Sara","phone":"0912"}}`,
			AddParticipant{Participant: models.Participant{Name: "Sara", Phone: "0912"}}},
		{`{"type":"DELETE_ITEM","payload":"i1"}`, DeleteItem{ID: "i1"}},
		{`{"type":"DELETE_EXPENSE_GROUP","payload":"t1"}`, DeleteExpenseGroup{TransactionID: "t1"}},
		{`{"type":"TOGGLE_SETTLE_EXPENSE","payload":"t1-p1"}`, ToggleSettle{ID: "t1-p1"}},
		{`{"type":"ADD_EXPENSE_GROUP","payload":[{"id":"t1-p1","transactionId":"t1","employeeId":"p1","amount":10}]}`,
			AddExpenseGroup{Records: []models.ExpenseRecord{{ID: "t1-p1", TransactionID: "t1", EmployeeID: "p1", Amount: 10}}}},
		{`{"type":"SHARE_SHEET"}`, Unknown{Tag: "SHARE_SHEET"}},
	}

	for _, tt := range tests {
		t.Run(tt.want.Type(), func(t *testing.T) {
			var env Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.input), &env))
			got, err := env.Decode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvelope_Decode_Malformed(t *testing.T) {
	for _, input := range []string{
		`{"type":"SET_APP_NAME","payload":42}`,
		`{"type":"DELETE_PARTICIPANT"}`,
		`{"type":"ADD_ITEM","payload":{"price":"cheap"}}`,
	} {
		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(input), &env))
		_, err := env.Decode()
		assert.Error(t, err, input)
	}
}

func TestNewEnvelope_RoundTrip(t *testing.T) {
	state := models.NewState()
	state.Items = append(state.Items, models.Item{ID: "i1", Name: "Tea", Price: 500})

	actions := []Action{
		ReplaceState{State: state},
		SetAppName{Name: "Office"},
		UpdateParticipant{Participant: models.Participant{ID: "p1", Name: "Sara"}},
		UpdateItem{Item: models.Item{ID: "i1", Name: "Tea", Price: 600}},
		UpdateExpense{Record: models.ExpenseRecord{ID: "t1-p1", TransactionID: "t1", Amount: 3}},
		DeleteParticipant{ID: "p1"},
	}
	for _, a := range actions {
		env, err := NewEnvelope(a)
		require.NoError(t, err)
		assert.Equal(t, a.Type(), env.Type)

		got, err := env.Decode()
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}
