package taskstore

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stretchr/testify/require"
)

// testStore opens a Store over an in-memory SQLite database with the
// task_data schema plus minimal VCH-owned workunit & result fixtures.
// SQLite binds the same $N placeholders the Postgres driver does, so the
// store's SQL runs unmodified.
func testStore(t *testing.T) *Store {
	var db, err = sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE task_data (
			task_id            TEXT PRIMARY KEY,
			call_spec          BLOB NOT NULL,
			init_valid_func    BLOB NOT NULL,
			compare_valid_func BLOB NOT NULL,
			task_status        INTEGER NOT NULL,
			result_status      INTEGER,
			returned           BLOB,
			error_message      TEXT
		);
		CREATE TABLE workunit (
			id   INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE result (
			id         INTEGER PRIMARY KEY,
			workunitid INTEGER NOT NULL
		);
	`)
	require.NoError(t, err)

	return NewStore(db)
}

const taskID = "0123456789abcdef0123456789abcdef"

func TestCreateAndReadBack(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, store.CreateTask(ctx,
		taskID, []byte("call"), []byte("init"), []byte("compare")))

	var row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &TaskRow{TaskStatus: pt.TaskStatus_RUNNING}, row)

	// Predicate blobs are bit-preserved.
	blob, err := store.ValidationFunc(ctx, taskID, InitMode)
	require.NoError(t, err)
	require.Equal(t, []byte("init"), blob)

	blob, err = store.ValidationFunc(ctx, taskID, CompareMode)
	require.NoError(t, err)
	require.Equal(t, []byte("compare"), blob)

	_, err = store.ValidationFunc(ctx, taskID, ValidationMode("bogus"))
	require.EqualError(t, err, `unknown validation mode "bogus"`)

	_, err = store.ValidationFunc(ctx, "feedfeedfeedfeed", InitMode)
	require.EqualError(t, err, "no task with id feedfeedfeedfeed")
}

func TestDuplicateCreateIsAnError(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, store.CreateTask(ctx, taskID, []byte("c"), []byte("i"), []byte("x")))
	require.ErrorContains(t,
		store.CreateTask(ctx, taskID, []byte("c"), []byte("i"), []byte("x")),
		"inserting task")
}

func TestFinishedTransitionIsMonotonic(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, store.CreateTask(ctx, taskID, []byte("c"), []byte("i"), []byte("x")))

	var ok, err = store.SetTaskFinished(ctx, taskID, pt.ResultStatus_SUCCESS, []byte("42"), "")
	require.NoError(t, err)
	require.True(t, ok)

	var row *TaskRow
	row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &TaskRow{
		TaskStatus:   pt.TaskStatus_FINISHED,
		ResultStatus: pt.ResultStatus_SUCCESS,
		Returned:     []byte("42"),
	}, row)

	// A second transition finds no RUNNING row and reports false.
	ok, err = store.SetTaskFinished(ctx, taskID, pt.ResultStatus_USER_ERROR, nil, "late")
	require.NoError(t, err)
	require.False(t, ok)

	// The row is unchanged.
	var after, _ = store.GetTaskStatus(ctx, taskID)
	require.Equal(t, row, after)

	// As does a transition of an unknown task.
	ok, err = store.SetTaskFinished(ctx, "feedfeedfeedfeed", pt.ResultStatus_SUCCESS, []byte("1"), "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestErrorOutcomes(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, store.CreateTask(ctx, taskID, []byte("c"), []byte("i"), []byte("x")))

	var ok, err = store.SetTaskFinished(ctx, taskID, pt.ResultStatus_USER_ERROR, nil, "ZeroDivisionError")
	require.NoError(t, err)
	require.True(t, ok)

	row, err := store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &TaskRow{
		TaskStatus:   pt.TaskStatus_FINISHED,
		ResultStatus: pt.ResultStatus_USER_ERROR,
		ErrorMessage: "ZeroDivisionError",
	}, row)
}

func TestSetTaskFailed(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, store.CreateTask(ctx, taskID, []byte("c"), []byte("i"), []byte("x")))
	require.True(t, store.SetTaskFailed(ctx, taskID, "stage_file exited 1"))

	var row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &TaskRow{
		TaskStatus:   pt.TaskStatus_FINISHED,
		ResultStatus: pt.ResultStatus_SYSTEM_ERROR,
		ErrorMessage: "stage_file exited 1",
	}, row)

	// Best-effort: a repeat invocation reports false without erroring.
	require.False(t, store.SetTaskFailed(ctx, taskID, "again"))
}

func TestGetTaskStatusNotFound(t *testing.T) {
	var store = testStore(t)

	var row, err = store.GetTaskStatus(context.Background(), "feedfeedfeedfeed")
	require.NoError(t, err)
	require.Nil(t, row)
}

func TestWorkunitAndResultIndirection(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	var _, err = store.db.Exec(`INSERT INTO workunit (id, name) VALUES (7, $1)`, taskID)
	require.NoError(t, err)
	_, err = store.db.Exec(`INSERT INTO result (id, workunitid) VALUES (70, 7), (71, 7)`)
	require.NoError(t, err)

	id, err := store.TaskIDForWorkunit(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, taskID, id)

	_, err = store.TaskIDForWorkunit(ctx, 8)
	require.EqualError(t, err, "no workunit with id 8")

	id, err = store.TaskIDForResult(ctx, 71)
	require.NoError(t, err)
	require.Equal(t, taskID, id)

	_, err = store.TaskIDForResult(ctx, 99)
	require.EqualError(t, err, "no result with id 99")
}
