package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Counts(t *testing.T) {
	r := Report{
		Outcomes: []Outcome{
			{State: StateRegistered},
			{State: StateRegistered, AlreadyLoaded: true},
			{State: StateFailed, FailedStage: StageDecrypt, Reason: "wrong passphrase"},
		},
		Skipped: 1,
	}

	assert.Equal(t, 2, r.Registered())
	assert.Equal(t, 1, r.Failed())
	assert.False(t, r.Empty())
}

func TestReport_Empty(t *testing.T) {
	assert.True(t, Report{}.Empty())
	assert.True(t, Report{Skipped: 3}.Empty(), "skipped items alone leave nothing to process")
	assert.False(t, Report{Outcomes: []Outcome{{State: StateFailed}}}.Empty())
}

func TestFailedOutcome(t *testing.T) {
	rec := KeyRecord{ItemID: "b0ec9a23-4a0a-4f5b-8f0a-17cb9c53ea05", ItemName: "github"}

	got := FailedOutcome(rec, StageFetch, "attachment not found")

	assert.Equal(t, StateFailed, got.State)
	assert.Equal(t, StageFetch, got.FailedStage)
	assert.Equal(t, "attachment not found", got.Reason)
	assert.Equal(t, rec, got.Record)
}

func TestKeyState_String(t *testing.T) {
	tests := []struct {
		state KeyState
		want  string
	}{
		{StateResolved, "resolved"},
		{StateFetched, "fetched"},
		{StateDecrypted, "decrypted"},
		{StatePassthrough, "passthrough"},
		{StateRegistered, "registered"},
		{StateFailed, "failed"},
		{KeyState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
