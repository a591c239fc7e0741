package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
)

// SubmittedTask is a handle on a submitted task.
type SubmittedTask struct {
	client *Client
	taskID string
}

// TaskID returns the task's gateway-assigned identifier, suitable for
// later RestoreTask calls.
func (t *SubmittedTask) TaskID() string { return t.taskID }

// Result is the tagged outcome of a task. Exactly one of Value or
// ErrorMessage is meaningful, selected by Status.
type Result struct {
	TaskID       string
	Status       pt.ResultStatus
	Value        []byte
	ErrorMessage string
}

// Unmarshal decodes the SUCCESS payload into |into|.
func (r Result) Unmarshal(into any) error {
	if r.Status != pt.ResultStatus_SUCCESS {
		return fmt.Errorf("task %s did not succeed (%s): %s",
			r.TaskID, r.Status, r.ErrorMessage)
	}
	return json.Unmarshal(r.Value, into)
}

// Result polls the task until it finishes or the polling schedule is
// exhausted. Remote outcomes of every kind are mapped into the returned
// Result rather than an error: a task the gateway doesn't know yet keeps
// being polled, and transient RPC failures are absorbed (though both
// consume attempts). Cancellation of |ctx| is the one exception, and
// surfaces as a SYSTEM_ERROR Result carrying the context's error.
func (t *SubmittedTask) Result(ctx context.Context) Result {
	var polling = t.client.network.Polling
	var logEntry = log.WithField("taskId", t.taskID)

	for attempt := 0; attempt != polling.MaxAttempts; attempt++ {
		if resp, ok := t.poll(ctx, logEntry); ok {
			return Result{
				TaskID:       t.taskID,
				Status:       resp.ResultStatus,
				Value:        resp.Returned,
				ErrorMessage: resp.ErrorMessage,
			}
		}

		select {
		case <-time.After(polling.delay(attempt)):
		case <-ctx.Done():
			return Result{
				TaskID:       t.taskID,
				Status:       pt.ResultStatus_SYSTEM_ERROR,
				ErrorMessage: ctx.Err().Error(),
			}
		}
	}

	return Result{
		TaskID: t.taskID,
		Status: pt.ResultStatus_SYSTEM_ERROR,
		ErrorMessage: fmt.Sprintf("Task polling timed out after %d attempts",
			polling.MaxAttempts),
	}
}

// Poll performs a single PollTask RPC without retries, returning the
// task's current state. Operators use it to observe a task in flight;
// programs should prefer SubmittedTask.Result.
func (c *Client) Poll(ctx context.Context, taskID string) (*pt.PollTaskResponse, error) {
	var ts, err = c.service(ctx)
	if err != nil {
		return nil, err
	}
	rpcCtx, cancel := context.WithTimeout(ctx, c.network.Timeout)
	defer cancel()

	return ts.PollTask(rpcCtx, &pt.PollTaskRequest{TaskId: taskID})
}

// poll performs one PollTask RPC, returning the response and true iff the
// task is finished.
func (t *SubmittedTask) poll(ctx context.Context, logEntry *log.Entry) (*pt.PollTaskResponse, bool) {
	var ts, err = t.client.service(ctx)
	if err != nil {
		logEntry.WithField("error", err).Warn("failed to reach gateway; will retry")
		return nil, false
	}

	rpcCtx, cancel := context.WithTimeout(ctx, t.client.network.Timeout)
	defer cancel()

	resp, err := ts.PollTask(rpcCtx, &pt.PollTaskRequest{TaskId: t.taskID})
	if err != nil {
		logEntry.WithField("error", err).Warn("task poll failed; will retry")
		return nil, false
	} else if !resp.Found {
		logEntry.Debug("task not yet visible; will retry")
		return nil, false
	} else if resp.TaskStatus != pt.TaskStatus_FINISHED {
		return nil, false
	}
	return resp, true
}

// AwaitAll gathers the results of |tasks|, polling each from its own
// goroutine. Results are returned in the order of |tasks|, regardless of
// completion order.
func AwaitAll(ctx context.Context, tasks []*SubmittedTask) []Result {
	var results = make([]Result, len(tasks))
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task *SubmittedTask) {
			defer wg.Done()
			results[i] = task.Result(ctx)
		}(i, task)
	}
	wg.Wait()
	return results
}

// delay returns the backoff delay preceding attempt |attempt|+1.
func (p PollingConfig) delay(attempt int) time.Duration {
	var d = float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt))
	if m := float64(p.MaxDelay); d > m {
		d = m
	}
	return time.Duration(d)
}
