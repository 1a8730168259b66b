package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/repository/sqlite"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// seedDB creates a database in a temp dir, points the CLI at it and returns
// the id of a list holding the three-item example.
func seedDB(t *testing.T) int64 {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	path := filepath.Join(dir, "packlist.db")
	t.Setenv("PACKLIST_DATABASE_PATH", path)
	t.Setenv("PACKLIST_LOG_LEVEL", "error")

	db, err := sqlite.New(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	pl, err := db.CreatePackingList(ctx, model.CreatePackingListInput{Name: "Weekend"})
	require.NoError(t, err)

	for _, in := range []model.CreateGearItemInput{
		{PackingListID: pl.ID, Name: "Tent", IndividualWeight: 1500, Quantity: 1, Category: model.CategoryShelter},
		{PackingListID: pl.ID, Name: "Sleeping Bag", IndividualWeight: 800.5, Quantity: 1, Category: model.CategorySleepSystem},
		{PackingListID: pl.ID, Name: "Energy Bars", IndividualWeight: 45.25, Quantity: 10, Category: model.CategoryFood},
	} {
		_, err := db.CreateGearItem(ctx, in)
		require.NoError(t, err)
	}
	return pl.ID
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "packlist dev\n", out)
}

func TestSummary_Text(t *testing.T) {
	id := seedDB(t)

	out, err := run(t, "summary", "1")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	assert.Contains(t, out, "Total weight")
	assert.Contains(t, out, "2.8kg")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "229g", "2753 / 12 rounds to 229g")
	assert.Contains(t, out, "Ultralight")

	// Heaviest category first.
	shelter := bytes.Index([]byte(out), []byte("shelter"))
	sleep := bytes.Index([]byte(out), []byte("sleep_system"))
	food := bytes.Index([]byte(out), []byte("food"))
	require.True(t, shelter > 0 && sleep > 0 && food > 0, out)
	assert.Less(t, shelter, sleep)
	assert.Less(t, sleep, food)
}

func TestSummary_JSON(t *testing.T) {
	id := seedDB(t)

	out, err := run(t, "summary", "--json", "1")
	require.NoError(t, err)

	var sum model.PackingListSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, id, sum.PackingListID)
	assert.Equal(t, 2753.0, sum.TotalWeight)
	assert.Equal(t, 12, sum.TotalItems)
	assert.Len(t, sum.CategoryBreakdown, 3)
}

func TestSummary_UnknownListPrintsZeros(t *testing.T) {
	seedDB(t)

	out, err := run(t, "summary", "--json", "99")
	require.NoError(t, err)
	assert.JSONEq(t, `{"packing_list_id":99,"total_weight":0,"total_items":0,"category_breakdown":[]}`, out)
}

func TestSummary_InvalidID(t *testing.T) {
	seedDB(t)

	_, err := run(t, "summary", "abc")
	assert.Error(t, err)

	_, err = run(t, "summary")
	assert.Error(t, err, "id argument is required")
}

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("PACKLIST_DATABASE_PATH", filepath.Join(dir, "sub", "fresh.db"))
	t.Setenv("PACKLIST_LOG_LEVEL", "error")

	_, err := run(t, "migrate")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "sub", "fresh.db"))
}

func TestInvalidConfigFails(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("PACKLIST_DATABASE_DRIVER", "mysql")

	_, err := run(t, "migrate")
	assert.Error(t, err)
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, model.PackingListSummary{PackingListID: 4, CategoryBreakdown: []model.CategoryBreakdown{}}))

	out := buf.String()
	assert.Contains(t, out, "0g")
	assert.Contains(t, out, "Ultralight")
	assert.NotContains(t, out, "CATEGORY")
}
