package assimilator

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stoilo/stoilo/go/resultfile"
	"github.com/stoilo/stoilo/go/taskstore"
	"github.com/stretchr/testify/require"
)

const taskID = "0123456789abcdef0123456789abcdef"
const workunitID = 7

// testStore opens a Store over in-memory SQLite, with one RUNNING task
// mapped to workunit 7.
func testStore(t *testing.T) *taskstore.Store {
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
	`)
	require.NoError(t, err)

	var store = taskstore.NewStore(db)
	require.NoError(t, store.CreateTask(context.Background(),
		taskID, []byte("call"), []byte("init"), []byte("compare")))

	_, err = db.Exec(`INSERT INTO workunit (id, name) VALUES ($1, $2);`,
		workunitID, taskID)
	require.NoError(t, err)

	return store
}

// writeResult writes an encoded result file into the test's temp dir.
func writeResult(t *testing.T, status pt.ResultStatus, payload string) string {
	var path = filepath.Join(t.TempDir(), "canonical")
	require.NoError(t, os.WriteFile(path, resultfile.Encode(status, []byte(payload)), 0644))
	return path
}

func TestAssimilateSuccess(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	var file = writeResult(t, pt.ResultStatus_SUCCESS, `{"answer": 42}`)
	require.NoError(t, Run(ctx, Args{WorkunitID: workunitID, ResultFile: file}, store))

	var row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &taskstore.TaskRow{
		TaskStatus:   pt.TaskStatus_FINISHED,
		ResultStatus: pt.ResultStatus_SUCCESS,
		// The stored payload carries no lead status byte.
		Returned: []byte(`{"answer": 42}`),
	}, row)
}

func TestAssimilateUserError(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	var file = writeResult(t, pt.ResultStatus_USER_ERROR, "Traceback: boom")
	require.NoError(t, Run(ctx, Args{WorkunitID: workunitID, ResultFile: file}, store))

	var row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, &taskstore.TaskRow{
		TaskStatus:   pt.TaskStatus_FINISHED,
		ResultStatus: pt.ResultStatus_USER_ERROR,
		ErrorMessage: "Traceback: boom",
	}, row)
	require.Empty(t, row.Returned)
}

func TestAssimilateVCHError(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	require.NoError(t, Run(ctx, Args{
		WorkunitID:   workunitID,
		VCHError:     true,
		ErrorCode:    -185,
		WorkunitName: taskID,
		Runtime:      12.5,
	}, store))

	var row, err = store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, pt.ResultStatus_SYSTEM_ERROR, row.ResultStatus)
	require.Equal(t, "VCH error code: -185, see WU_ERROR_* in common_defs",
		row.ErrorMessage)
}

func TestUnknownWorkunit(t *testing.T) {
	var store = testStore(t)
	var file = writeResult(t, pt.ResultStatus_SUCCESS, `{}`)

	var err = Run(context.Background(),
		Args{WorkunitID: 999, ResultFile: file}, store)
	require.ErrorContains(t, err, "resolving task of workunit 999")
}

func TestUnreadableResultLeavesTaskRunning(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()

	var err = Run(ctx, Args{
		WorkunitID: workunitID,
		ResultFile: filepath.Join(t.TempDir(), "absent"),
	}, store)
	require.ErrorContains(t, err, "reading canonical result")

	row, err := store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, pt.TaskStatus_RUNNING, row.TaskStatus)
}

func TestDoubleAssimilationFails(t *testing.T) {
	var store = testStore(t)
	var ctx = context.Background()
	var file = writeResult(t, pt.ResultStatus_SUCCESS, `{"first": true}`)

	require.NoError(t, Run(ctx, Args{WorkunitID: workunitID, ResultFile: file}, store))

	var err = Run(ctx, Args{WorkunitID: workunitID, ResultFile: file}, store)
	require.ErrorContains(t, err, "is not RUNNING")

	// The first outcome is untouched.
	row, err := store.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"first": true}`), row.Returned)
}
