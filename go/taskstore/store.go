// Package taskstore is the durable system of record for tasks.
// A task row is inserted as RUNNING with its opaque call and predicate
// blobs, transitions to FINISHED exactly once, and is immutable thereafter.
// The store also resolves the VCH's workunit and result identifiers back to
// task ids, relying on the bridge that a work unit's name is its task id.
package taskstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v4/stdlib" // "pgx" database/sql driver
	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
)

// Schema is the DDL of the task_data table. The workunit and result tables
// are owned and populated by the VCH and are only ever read.
const Schema = `
CREATE TABLE IF NOT EXISTS task_data (
	task_id            VARCHAR(32) PRIMARY KEY,
	call_spec          BYTEA       NOT NULL,
	init_valid_func    BYTEA       NOT NULL,
	compare_valid_func BYTEA       NOT NULL,
	task_status        INTEGER     NOT NULL,
	result_status      INTEGER,
	returned           BYTEA,
	error_message      TEXT
);
`

// ValidationMode selects which predicate blob a validation fetches.
type ValidationMode string

const (
	// InitMode names the unary predicate applied to a single result.
	InitMode ValidationMode = "init"
	// CompareMode names the binary predicate applied to a result pair.
	CompareMode ValidationMode = "compare"
)

// TaskRow is the queryable state of a task. Nullable columns of rows which
// are still RUNNING read as zero values.
type TaskRow struct {
	TaskStatus   pt.TaskStatus
	ResultStatus pt.ResultStatus
	Returned     []byte
	ErrorMessage string
}

// Store wraps the shared relational database.
// It issues driver-agnostic SQL and is safe for concurrent use; the
// *sql.DB connection pool bounds its parallelism.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store over the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open a Store over a Postgres database described by |cfg|.
// |maxConns| bounds the connection pool, and is sized to the invoking
// process: the gateway passes its RPC worker-pool size, while one-shot
// processes pass one.
func Open(cfg Config, maxConns int) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	log.WithFields(log.Fields{
		"host": cfg.Host,
		"port": cfg.Port,
		"user": cfg.User,
		"name": cfg.DBName,
	}).Info("opening task database")

	var db, err = sql.Open("pgx", cfg.ToURI())
	if err != nil {
		return nil, fmt.Errorf("opening task database: %w", err)
	}
	db.SetMaxOpenConns(maxConns)

	return NewStore(db), nil
}

// Close the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateTask inserts a new RUNNING task row holding the opaque call spec
// and predicate blobs. Task ids are freshly generated UUIDs, so a duplicate
// key is evidence of corruption and is surfaced as an error like any other.
func (s *Store) CreateTask(ctx context.Context, taskID string, callSpec, initValidFunc, compareValidFunc []byte) error {
	var _, err = s.db.ExecContext(ctx,
		`INSERT INTO task_data (task_id, call_spec, init_valid_func, compare_valid_func, task_status)
		 VALUES ($1, $2, $3, $4, $5)`,
		taskID, callSpec, initValidFunc, compareValidFunc, int32(pt.TaskStatus_RUNNING))
	if err != nil {
		return fmt.Errorf("inserting task %s: %w", taskID, err)
	}
	return nil
}

// SetTaskFinished transitions a RUNNING task to FINISHED with the given
// outcome. It returns false if no row transitioned, either because the task
// is unknown or because it already finished: the WHERE guard is what makes
// finality monotonic, and makes concurrent or re-invoked assimilations safe.
func (s *Store) SetTaskFinished(ctx context.Context, taskID string, resultStatus pt.ResultStatus, returned []byte, errorMessage string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE task_data
		 SET task_status = $1, result_status = $2, returned = $3, error_message = $4
		 WHERE task_id = $5 AND task_status = $6`,
		int32(pt.TaskStatus_FINISHED),
		int32(resultStatus),
		returned,
		nullableString(errorMessage),
		taskID,
		int32(pt.TaskStatus_RUNNING),
	)
	if err != nil {
		return false, fmt.Errorf("finishing task %s: %w", taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("finishing task %s: %w", taskID, err)
	}
	return n == 1, nil
}

// SetTaskFailed is the gateway's best-effort compensation after a failed
// work-unit launch: it marks the task FINISHED with SYSTEM_ERROR. Failures
// are logged rather than returned, because the client is already receiving
// the launch error over the RPC.
func (s *Store) SetTaskFailed(ctx context.Context, taskID, errorMessage string) bool {
	var ok, err = s.SetTaskFinished(ctx, taskID, pt.ResultStatus_SYSTEM_ERROR, nil, errorMessage)
	if err != nil {
		log.WithFields(log.Fields{
			"taskId": taskID,
			"error":  err,
		}).Error("failed to mark task as failed")
		return false
	}
	return ok
}

// GetTaskStatus reads the current snapshot of a task, or nil if the task
// isn't known to the store.
func (s *Store) GetTaskStatus(ctx context.Context, taskID string) (*TaskRow, error) {
	var (
		row          TaskRow
		taskStatus   int32
		resultStatus sql.NullInt32
		errorMessage sql.NullString
	)
	var err = s.db.QueryRowContext(ctx,
		`SELECT task_status, result_status, returned, error_message
		 FROM task_data WHERE task_id = $1`, taskID).
		Scan(&taskStatus, &resultStatus, &row.Returned, &errorMessage)

	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading task %s: %w", taskID, err)
	}

	row.TaskStatus = pt.TaskStatus(taskStatus)
	row.ResultStatus = pt.ResultStatus(resultStatus.Int32)
	row.ErrorMessage = errorMessage.String
	return &row, nil
}

// TaskIDForWorkunit resolves a VCH workunit id to its task id through the
// workunit's name.
func (s *Store) TaskIDForWorkunit(ctx context.Context, wuID int64) (string, error) {
	var taskID string
	var err = s.db.QueryRowContext(ctx,
		`SELECT name FROM workunit WHERE id = $1`, wuID).Scan(&taskID)

	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no workunit with id %d", wuID)
	} else if err != nil {
		return "", fmt.Errorf("resolving workunit %d: %w", wuID, err)
	}
	return taskID, nil
}

// TaskIDForResult resolves a VCH result id to its task id through the
// result's workunit.
func (s *Store) TaskIDForResult(ctx context.Context, resultID int64) (string, error) {
	var taskID string
	var err = s.db.QueryRowContext(ctx,
		`SELECT w.name FROM workunit w
		 JOIN result r ON r.workunitid = w.id
		 WHERE r.id = $1`, resultID).Scan(&taskID)

	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no result with id %d", resultID)
	} else if err != nil {
		return "", fmt.Errorf("resolving result %d: %w", resultID, err)
	}
	return taskID, nil
}

// ValidationFunc fetches the task's predicate blob for the given mode.
func (s *Store) ValidationFunc(ctx context.Context, taskID string, mode ValidationMode) ([]byte, error) {
	var column string
	switch mode {
	case InitMode:
		column = "init_valid_func"
	case CompareMode:
		column = "compare_valid_func"
	default:
		return nil, fmt.Errorf("unknown validation mode %q", mode)
	}

	var blob []byte
	var err = s.db.QueryRowContext(ctx,
		// The column name is one of two fixed identifiers, not user input.
		fmt.Sprintf(`SELECT %s FROM task_data WHERE task_id = $1`, column), taskID).
		Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no task with id %s", taskID)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s of task %s: %w", column, taskID, err)
	} else if len(blob) == 0 {
		return nil, fmt.Errorf("task %s has an empty %s", taskID, column)
	}
	return blob, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
