// Package validator decides whether a VCH result file is acceptable.
// It's the core of the stoilo-validator binary, which the VCH invokes
// once per returned result (initial mode) or per pair of returned results
// (comparative mode), and which communicates its verdict via exit code.
package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stoilo/stoilo/go/resultfile"
	"github.com/stoilo/stoilo/go/taskstore"
)

// ExitCode is a validation verdict, reported to the VCH as a process
// exit status. The values are contractual.
type ExitCode int

const (
	// Accepted: the result is valid.
	Accepted ExitCode = 0
	// Rejected: the result is invalid (or, in comparative mode, the two
	// results disagree). The VCH discards it.
	Rejected ExitCode = 1
	// OtherError: validation itself failed for an internal reason.
	// The VCH treats the result as unvalidatable and won't retry.
	OtherError ExitCode = 2
	// TempError: a transient failure. The VCH retries later.
	TempError ExitCode = 3
	// ValidFuncError: the user's predicate is at fault (failed to load,
	// raised, or returned a non-boolean). Attributed to the user; no retry.
	ValidFuncError ExitCode = 4
)

// Args selects the validation mode and names its inputs.
type Args struct {
	Mode taskstore.ValidationMode

	// ResultID and File identify the first (or only) result.
	ResultID int64
	File     string
	// ResultID2 and File2 identify the second result of CompareMode.
	ResultID2 int64
	File2     string
}

// ValidationStore is the Store surface the validator requires.
// It's implemented by *taskstore.Store.
type ValidationStore interface {
	TaskIDForResult(ctx context.Context, resultID int64) (string, error)
	ValidationFunc(ctx context.Context, taskID string, mode taskstore.ValidationMode) ([]byte, error)
}

// PredicateRuntime evaluates user predicates. It's the seam to the
// co-deployed interpreter of the submitting client's language, which the
// validator itself cannot execute. Implementations distinguish faults of
// the predicate (wrapped ErrPredicateFault) from faults of the runtime.
type PredicateRuntime interface {
	// Check verifies that |fn| deserializes into an invocable predicate.
	Check(ctx context.Context, fn []byte) error
	// EvalInit applies unary predicate |fn| to |payload|.
	EvalInit(ctx context.Context, fn, payload []byte) (bool, error)
	// EvalCompare applies binary predicate |fn| to |payload1| and |payload2|.
	EvalCompare(ctx context.Context, fn, payload1, payload2 []byte) (bool, error)
}

// ErrPredicateFault tags runtime errors attributable to the user's
// predicate rather than to the runtime itself.
var ErrPredicateFault = errors.New("user predicate fault")

// Run validates per |args| and returns the verdict.
func Run(ctx context.Context, args Args, store ValidationStore, runtime PredicateRuntime) ExitCode {
	switch args.Mode {
	case taskstore.InitMode:
		return runInit(ctx, args, store, runtime)
	case taskstore.CompareMode:
		return runCompare(ctx, args, store, runtime)
	default:
		log.WithField("mode", args.Mode).Error("unknown validation mode")
		return OtherError
	}
}

func runInit(ctx context.Context, args Args, store ValidationStore, runtime PredicateRuntime) ExitCode {
	var logEntry = log.WithFields(log.Fields{
		"resultId": args.ResultID,
		"file":     args.File,
	})

	var fn, code = fetchPredicate(ctx, args.ResultID, taskstore.InitMode, store, runtime, logEntry)
	if code != Accepted {
		return code
	}

	status, payload, err := parseResultFile(args.File)
	if err != nil {
		// A result we cannot parse may be an attack. Reject, don't error.
		logEntry.WithField("error", err).Warn("rejecting unparseable result file")
		return Rejected
	}

	switch status {
	case pt.ResultStatus_USER_ERROR:
		// A well-formed user error is itself a valid outcome,
		// to be compared against the task's other results.
		return Accepted
	case pt.ResultStatus_SYSTEM_ERROR:
		// Never trust a system-error result as canonical.
		return Rejected
	}

	verdict, err := runtime.EvalInit(ctx, fn, payload)
	if err != nil {
		return evalErrorCode(err, logEntry)
	} else if verdict {
		return Accepted
	}
	return Rejected
}

func runCompare(ctx context.Context, args Args, store ValidationStore, runtime PredicateRuntime) ExitCode {
	var logEntry = log.WithFields(log.Fields{
		"resultId":  args.ResultID,
		"resultId2": args.ResultID2,
	})

	// The pair belongs to one task; either result id resolves it.
	var fn, code = fetchPredicate(ctx, args.ResultID, taskstore.CompareMode, store, runtime, logEntry)
	if code != Accepted {
		return code
	}

	status1, payload1, err := parseResultFile(args.File)
	if err == nil && status1 == pt.ResultStatus_SYSTEM_ERROR {
		err = fmt.Errorf("result is a system error")
	}
	if err != nil {
		logEntry.WithFields(log.Fields{"file": args.File, "error": err}).
			Warn("rejecting result file")
		return Rejected
	}

	status2, payload2, err := parseResultFile(args.File2)
	if err == nil && status2 == pt.ResultStatus_SYSTEM_ERROR {
		err = fmt.Errorf("result is a system error")
	}
	if err != nil {
		logEntry.WithFields(log.Fields{"file": args.File2, "error": err}).
			Warn("rejecting result file")
		return Rejected
	}

	// Pair user errors without consulting the predicate: two user errors
	// are equivalent outcomes, while a user error never matches a success.
	if status1 == pt.ResultStatus_USER_ERROR && status2 == pt.ResultStatus_USER_ERROR {
		return Accepted
	} else if status1 == pt.ResultStatus_USER_ERROR || status2 == pt.ResultStatus_USER_ERROR {
		return Rejected
	}

	verdict, err := runtime.EvalCompare(ctx, fn, payload1, payload2)
	if err != nil {
		return evalErrorCode(err, logEntry)
	} else if verdict {
		return Accepted
	}
	return Rejected
}

// fetchPredicate resolves the task of |resultID|, fetches its |mode|
// predicate blob, and checks that the blob is invocable.
func fetchPredicate(
	ctx context.Context,
	resultID int64,
	mode taskstore.ValidationMode,
	store ValidationStore,
	runtime PredicateRuntime,
	logEntry *log.Entry,
) ([]byte, ExitCode) {
	var taskID, err = store.TaskIDForResult(ctx, resultID)
	if err != nil {
		logEntry.WithField("error", err).Error("failed to resolve task of result")
		return nil, OtherError
	}
	logEntry = logEntry.WithField("taskId", taskID)

	fn, err := store.ValidationFunc(ctx, taskID, mode)
	if err != nil {
		logEntry.WithField("error", err).Error("failed to fetch validation predicate")
		return nil, OtherError
	}

	if err = runtime.Check(ctx, fn); err != nil {
		return nil, evalErrorCode(err, logEntry)
	}
	return fn, Accepted
}

// parseResultFile reads and decodes a result file, additionally requiring
// that SUCCESS payloads be well-formed JSON.
func parseResultFile(path string) (pt.ResultStatus, []byte, error) {
	var status, payload, err = resultfile.ReadFile(path)
	if err != nil {
		return 0, nil, err
	}
	if status == pt.ResultStatus_SUCCESS && !json.Valid(payload) {
		return 0, nil, fmt.Errorf("success payload is not valid JSON")
	}
	return status, payload, nil
}

// evalErrorCode maps a PredicateRuntime error to a verdict: faults of the
// user's predicate are ValidFuncError, faults of the runtime OtherError.
func evalErrorCode(err error, logEntry *log.Entry) ExitCode {
	if errors.Is(err, ErrPredicateFault) {
		logEntry.WithField("error", err).Warn("user predicate fault")
		return ValidFuncError
	}
	logEntry.WithField("error", err).Error("predicate runtime failed")
	return OtherError
}
