package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, DefaultAppName, s.AppName)
	assert.Equal(t, DefaultTheme, s.Theme)
	assert.NotNil(t, s.Participants)
	assert.NotNil(t, s.Items)
	assert.NotNil(t, s.Expenses)
}

func TestState_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, s State)
	}{
		{
			name:  "absent containers default to empty",
			input: `{"appName":"Office","theme":"ocean"}`,
			validate: func(t *testing.T, s State) {
				assert.Equal(t, "Office", s.AppName)
				assert.Equal(t, "ocean", s.Theme)
				assert.Empty(t, s.Participants)
				assert.NotNil(t, s.Participants)
				assert.NotNil(t, s.Items)
				assert.NotNil(t, s.Expenses)
			},
		},
		{
			name:  "legacy employees key",
			input: `{"employees":[{"id":"1","name":"Sara","phone":"0912"}]}`,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Participants, 1)
				assert.Equal(t, Participant{ID: "1", Name: "Sara", Phone: "0912"}, s.Participants[0])
			},
		},
		{
			name:  "participants wins over employees",
			input: `{"participants":[{"id":"p"}],"employees":[{"id":"e"}]}`,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Participants, 1)
				assert.Equal(t, "p", s.Participants[0].ID)
			},
		},
		{
			name: "expense records",
			input: `{"expenses":[{"id":"t1-1","transactionId":"t1","employeeId":"1","employeeName":"Sara",
				"amount":833.3333333333334,"date":"1403/01/02","description":"Bread (×2)","isSettled":true}]}`,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Expenses, 1)
				e := s.Expenses[0]
				assert.Equal(t, "t1", e.TransactionID)
				assert.Equal(t, 2500.0/3, e.Amount)
				assert.True(t, e.IsSettled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			tt.validate(t, s)
		})
	}
}

func TestState_UnmarshalJSON_Invalid(t *testing.T) {
	var s State
	assert.Error(t, json.Unmarshal([]byte(`{"items":"nope"}`), &s))
}

func TestState_Clone(t *testing.T) {
	s := NewState()
	s.Items = append(s.Items, Item{ID: "i1", Name: "Tea", Price: 10})

	c := s.Clone()
	c.Items[0].Price = 20

	assert.Equal(t, 10.0, s.Items[0].Price)
}

func TestIsTheme(t *testing.T) {
	assert.True(t, IsTheme("forest"))
	assert.False(t, IsTheme("neon"))
}

func TestState_Participant(t *testing.T) {
	s := NewState()
	s.Participants = []Participant{{ID: "p1", Name: "Sara"}, {ID: "p2", Name: "Reza"}}

	p, ok := s.Participant("p2")
	assert.True(t, ok)
	assert.Equal(t, "Reza", p.Name)

	_, ok = s.Participant("ghost")
	assert.False(t, ok)
}
