package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoleParsing(t *testing.T) {
	role, err := ParseUserRole("analyst")
	require.NoError(t, err)
	assert.Equal(t, RoleAnalyst, role)

	role, err = ParseUserRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseUserRole("manager")
	assert.Error(t, err)
}

func TestPurchaseStatusRoundTrip(t *testing.T) {
	for _, s := range []PurchaseStatus{StatusPending, StatusApproved, StatusRejected} {
		parsed, err := ParsePurchaseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.Valid())
	}
	assert.False(t, PurchaseStatus(7).Valid())
}

func TestEnumsMarshalAsNumbers(t *testing.T) {
	out, err := json.Marshal(Purchase{ID: "p-1", Status: StatusApproved})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":1`)

	out, err = json.Marshal(User{ID: "u-1", Role: RoleEmployee})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"role":0`)
}

func TestBudgetIdentifierNaming(t *testing.T) {
	// Records carry "guid"; update payloads carry "id".
	out, err := json.Marshal(Budget{GUID: "b-1", Name: "Office"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"guid":"b-1"`)

	out, err = json.Marshal(UpdateBudgetRequest{ID: "b-1"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"b-1"`)
	assert.NotContains(t, string(out), "guid")

	var create map[string]any
	raw, err := json.Marshal(CreateBudgetRequest{Name: "Office", GeneralAmount: 100})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &create))
	assert.NotContains(t, create, "availableAmount")
}
