package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officepro/officepro/internal/model"
)

// fakeBudgetGateway scripts gateway responses and counts calls so tests
// can assert that invalid submits never reach the network.
type fakeBudgetGateway struct {
	listErr    error
	saveErr    error
	deleteErr  error
	records    []model.Budget
	created    model.Budget
	updated    model.Budget
	listCalls  int
	writeCalls int
}

func (f *fakeBudgetGateway) List(_ context.Context) ([]model.Budget, error) {
	f.listCalls++
	return f.records, f.listErr
}

func (f *fakeBudgetGateway) Get(_ context.Context, _ string) (model.Budget, error) {
	return model.Budget{}, nil
}

func (f *fakeBudgetGateway) Create(_ context.Context, _ model.CreateBudgetRequest) (model.Budget, error) {
	f.writeCalls++
	return f.created, f.saveErr
}

func (f *fakeBudgetGateway) Update(_ context.Context, _ model.UpdateBudgetRequest) (model.Budget, error) {
	f.writeCalls++
	return f.updated, f.saveErr
}

func (f *fakeBudgetGateway) Delete(_ context.Context, _ string) error {
	f.writeCalls++
	return f.deleteErr
}

// run executes an effect synchronously and applies its message.
func run[R Record, D any](t *testing.T, c *Controller[R, D], eff Effect) {
	t.Helper()
	require.NotNil(t, eff)
	msg := eff(context.Background())
	assert.True(t, c.Apply(msg))
}

func budgets(names ...string) []model.Budget {
	out := make([]model.Budget, len(names))
	for i, name := range names {
		out[i] = model.Budget{GUID: "id-" + name, Name: name}
	}
	return out
}

func TestControllerLoadReplacesList(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office", "travel")}
	c := NewBudgetController(gw, nil)

	run(t, c, c.Load())

	require.Len(t, c.Records(), 2)
	assert.Equal(t, "office", c.Records()[0].Name)
	assert.False(t, c.Loading())
	assert.Empty(t, c.ErrorMessage())

	// A second load replaces the list wholesale, never appends.
	gw.records = budgets("travel")
	run(t, c, c.Refresh())
	require.Len(t, c.Records(), 1)
	assert.Equal(t, "travel", c.Records()[0].Name)
}

func TestControllerLoadFailureKeepsStaleList(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	gw.listErr = errors.New("boom")
	run(t, c, c.Refresh())

	require.Len(t, c.Records(), 1)
	assert.Equal(t, "office", c.Records()[0].Name)
	assert.Equal(t, FailureMessage, c.ErrorMessage())
	assert.False(t, c.Loading())

	// A later success clears the banner.
	gw.listErr = nil
	run(t, c, c.Refresh())
	assert.Empty(t, c.ErrorMessage())
}

func TestControllerCreatePrependsServerRecord(t *testing.T) {
	gw := &fakeBudgetGateway{
		records: budgets("office"),
		created: model.Budget{GUID: "id-new", Name: "stationery", GeneralAmount: 500, AvailableAmount: 500},
	}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.StartCreate()
	assert.True(t, c.FormVisible())
	c.SetFieldValue("name", "stationery")
	c.SetFieldValue("generalAmount", "500")

	run(t, c, c.Submit())

	require.Len(t, c.Records(), 2)
	// The server's canonical record lands first, including the
	// server-initialized available amount.
	assert.Equal(t, "id-new", c.Records()[0].GUID)
	assert.Equal(t, 500.0, c.Records()[0].AvailableAmount)
	assert.False(t, c.FormVisible())
	assert.Empty(t, c.EditingID())
}

func TestControllerInvalidSubmitSkipsGateway(t *testing.T) {
	gw := &fakeBudgetGateway{}
	c := NewBudgetController(gw, nil)

	c.StartCreate()
	c.SetFieldValue("name", "   ")
	c.SetFieldValue("generalAmount", "-5")

	eff := c.Submit()

	assert.Nil(t, eff)
	assert.Zero(t, gw.writeCalls)
	assert.True(t, c.Touched())
	assert.True(t, c.FormVisible())
	require.Contains(t, c.FieldErrors(), "name")
	require.Contains(t, c.FieldErrors(), "generalAmount")

	// Fixing the draft clears the field errors on the next submit.
	c.SetFieldValue("name", "Office supplies")
	c.SetFieldValue("generalAmount", "100")
	gw.created = model.Budget{GUID: "id-1", Name: "Office supplies"}
	run(t, c, c.Submit())
	assert.Empty(t, c.FieldErrors())
}

func TestControllerUpdateReplacesInPlace(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office", "travel", "events")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.StartEdit(c.Records()[1])
	assert.Equal(t, "id-travel", c.EditingID())
	c.SetFieldValue("name", "Business travel")
	gw.updated = model.Budget{GUID: "id-travel", Name: "Business travel"}

	run(t, c, c.Submit())

	require.Len(t, c.Records(), 3)
	// Position is preserved; only the record content changes.
	assert.Equal(t, "Business travel", c.Records()[1].Name)
	assert.Equal(t, "office", c.Records()[0].Name)
	assert.Empty(t, c.EditingID())
	assert.False(t, c.FormVisible())
}

func TestControllerSaveFailureKeepsFormOpen(t *testing.T) {
	gw := &fakeBudgetGateway{saveErr: errors.New("boom")}
	c := NewBudgetController(gw, nil)

	c.StartCreate()
	c.SetFieldValue("name", "Office supplies")
	c.SetFieldValue("generalAmount", "100")

	run(t, c, c.Submit())

	assert.True(t, c.FormVisible())
	assert.Equal(t, "Office supplies", c.FieldValue("name"))
	assert.Equal(t, FailureMessage, c.ErrorMessage())
	assert.Empty(t, c.Records())
}

func TestControllerDeleteFlow(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office", "travel")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.RequestDelete(c.Records()[0])
	require.NotNil(t, c.PendingDelete())
	assert.Zero(t, gw.writeCalls)

	c.CancelDelete()
	assert.Nil(t, c.PendingDelete())
	assert.Nil(t, c.ConfirmDelete())

	c.RequestDelete(c.Records()[0])
	run(t, c, c.ConfirmDelete())

	require.Len(t, c.Records(), 1)
	assert.Equal(t, "travel", c.Records()[0].Name)
	assert.Nil(t, c.PendingDelete())
}

func TestControllerDeleteWhileEditingResetsForm(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office", "travel")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.StartEdit(c.Records()[0])
	c.RequestDelete(c.Records()[0])
	run(t, c, c.ConfirmDelete())

	assert.False(t, c.FormVisible())
	assert.Empty(t, c.EditingID())
	assert.Empty(t, c.FieldValue("name"))
}

func TestControllerDeleteFailureKeepsSelection(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.RequestDelete(c.Records()[0])
	gw.deleteErr = errors.New("boom")
	run(t, c, c.ConfirmDelete())

	require.Len(t, c.Records(), 1)
	require.NotNil(t, c.PendingDelete())
	assert.Equal(t, FailureMessage, c.ErrorMessage())

	// The same staged selection can be retried.
	gw.deleteErr = nil
	run(t, c, c.ConfirmDelete())
	assert.Empty(t, c.Records())
	assert.Nil(t, c.PendingDelete())
}

func TestControllerStartCreateResetsDraft(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office")}
	c := NewBudgetController(gw, nil)
	run(t, c, c.Load())

	c.StartEdit(c.Records()[0])
	assert.Equal(t, "office", c.FieldValue("name"))

	c.StartCreate()
	assert.Empty(t, c.EditingID())
	assert.Empty(t, c.FieldValue("name"))
	assert.Equal(t, "0", c.FieldValue("generalAmount"))
}

func TestControllerMessagesReconcileInArrivalOrder(t *testing.T) {
	gw := &fakeBudgetGateway{records: budgets("office")}
	c := NewBudgetController(gw, nil)

	staleLoad := c.Load()(context.Background())

	c.StartCreate()
	c.SetFieldValue("name", "Events")
	c.SetFieldValue("generalAmount", "50")
	gw.created = model.Budget{GUID: "id-events", Name: "Events"}
	save := c.Submit()(context.Background())

	// The save lands first, then the stale list response overwrites the
	// list. Last write wins; no sequencing is applied.
	assert.True(t, c.Apply(save))
	require.Len(t, c.Records(), 1)
	assert.Equal(t, "Events", c.Records()[0].Name)

	assert.True(t, c.Apply(staleLoad))
	require.Len(t, c.Records(), 1)
	assert.Equal(t, "office", c.Records()[0].Name)
}

func TestControllerIgnoresOtherResources(t *testing.T) {
	c := NewBudgetController(&fakeBudgetGateway{}, nil)

	applied := c.Apply(DeletedMsg{Resource: ResourceUsers, ID: "id-1"})

	assert.False(t, applied)
	assert.Empty(t, c.ErrorMessage())
}

type fakeUserGateway struct {
	created model.User
}

func (f *fakeUserGateway) List(_ context.Context) ([]model.User, error) { return nil, nil }
func (f *fakeUserGateway) Get(_ context.Context, _ string) (model.User, error) {
	return model.User{}, nil
}
func (f *fakeUserGateway) Create(_ context.Context, _ model.CreateUserRequest) (model.User, error) {
	return f.created, nil
}
func (f *fakeUserGateway) Update(_ context.Context, _ model.UpdateUserRequest) (model.User, error) {
	return model.User{}, nil
}
func (f *fakeUserGateway) Delete(_ context.Context, _ string) error { return nil }

func TestUserControllerPasswordRequiredOnlyOnCreate(t *testing.T) {
	c := NewUserController(&fakeUserGateway{}, nil)

	fill := func() {
		c.SetFieldValue("name", "Олена")
		c.SetFieldValue("surname", "Шевченко")
		c.SetFieldValue("email", "olena@example.com")
	}

	t.Run("create demands a password", func(t *testing.T) {
		c.StartCreate()
		fill()
		assert.Nil(t, c.Submit())
		require.Contains(t, c.FieldErrors(), "password")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		c.StartCreate()
		fill()
		c.SetFieldValue("password", "abc")
		assert.Nil(t, c.Submit())
		require.Contains(t, c.FieldErrors(), "password")
	})

	t.Run("edit mode drops the password rules", func(t *testing.T) {
		c.StartEdit(model.User{
			ID:      "id-1",
			Name:    "Олена",
			Surname: "Шевченко",
			Email:   "olena@example.com",
			Role:    model.RoleAnalyst,
		})
		eff := c.Submit()
		assert.NotNil(t, eff)
		assert.Empty(t, c.FieldErrors())
	})
}

func TestUserControllerRejectsDigitsInNames(t *testing.T) {
	c := NewUserController(&fakeUserGateway{}, nil)

	c.StartCreate()
	c.SetFieldValue("name", "Іван3")
	c.SetFieldValue("surname", "Мельник")
	c.SetFieldValue("email", "ivan@example.com")
	c.SetFieldValue("password", "secret-pass")

	assert.Nil(t, c.Submit())
	require.Contains(t, c.FieldErrors(), "name")
	assert.NotContains(t, c.FieldErrors(), "surname")
}
