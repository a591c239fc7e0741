// Package assimilator records the canonical outcome of a work unit into
// the task store. It's the core of the stoilo-assimilator binary, which
// the VCH invokes exactly once per work unit, after validation has agreed
// on a canonical result (success shape) or the work unit has exhausted its
// error budget (error shape).
package assimilator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stoilo/stoilo/go/resultfile"
)

// Args of one assimilation.
type Args struct {
	// WorkunitID of the work unit being assimilated.
	WorkunitID int64
	// ResultFile is the canonical result file of the success shape.
	ResultFile string

	// VCHError selects the error shape: the VCH failed the work unit
	// without producing a canonical result.
	VCHError bool
	// ErrorCode is the VCH's WU_ERROR_* code.
	ErrorCode int64
	// WorkunitName and Runtime are informational. The work unit is
	// identified by WorkunitID.
	WorkunitName string
	Runtime      float64
}

// AssimilationStore is the Store surface the assimilator requires.
// It's implemented by *taskstore.Store.
type AssimilationStore interface {
	TaskIDForWorkunit(ctx context.Context, wuID int64) (string, error)
	SetTaskFinished(ctx context.Context, taskID string, resultStatus pt.ResultStatus, returned []byte, errorMessage string) (bool, error)
}

// Run assimilates per |args|. Any error means the outcome was NOT
// recorded; the caller exits non-zero and the VCH will reinvoke.
// Run never retries internally.
func Run(ctx context.Context, args Args, store AssimilationStore) error {
	var taskID, err = store.TaskIDForWorkunit(ctx, args.WorkunitID)
	if err != nil {
		return fmt.Errorf("resolving task of workunit %d: %w", args.WorkunitID, err)
	}

	var resultStatus pt.ResultStatus
	var returned []byte
	var errorMessage string

	if args.VCHError {
		resultStatus = pt.ResultStatus_SYSTEM_ERROR
		errorMessage = fmt.Sprintf(
			"VCH error code: %d, see WU_ERROR_* in common_defs", args.ErrorCode)

		log.WithFields(log.Fields{
			"taskId":    taskID,
			"wuName":    args.WorkunitName,
			"errorCode": args.ErrorCode,
			"runtime":   args.Runtime,
		}).Warn("assimilating VCH work unit failure")
	} else {
		resultStatus, returned, err = resultfile.ReadFile(args.ResultFile)
		if err != nil {
			return fmt.Errorf("reading canonical result %s: %w", args.ResultFile, err)
		}
		// The lead status byte is consumed by the decode: only the payload
		// is stored, as the JSON value (on success) or the error text.
		if resultStatus != pt.ResultStatus_SUCCESS {
			errorMessage = string(returned)
			returned = nil
		}
	}

	ok, err := store.SetTaskFinished(ctx, taskID, resultStatus, returned, errorMessage)
	if err != nil {
		return fmt.Errorf("finishing task %s: %w", taskID, err)
	} else if !ok {
		return fmt.Errorf("task %s is not RUNNING (already assimilated?)", taskID)
	}

	log.WithFields(log.Fields{
		"taskId":       taskID,
		"resultStatus": resultStatus,
	}).Info("assimilated task outcome")
	return nil
}
