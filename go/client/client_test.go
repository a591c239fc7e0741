package client

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/nsf/jsondiff"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// scriptedService is a TaskService whose behavior is a pair of test-supplied
// functions. It guards its script with a mutex so tests may mutate state
// from concurrent polls.
type scriptedService struct {
	mu     sync.Mutex
	create func(*pt.CreateTaskRequest) (*pt.CreateTaskResponse, error)
	poll   func(*pt.PollTaskRequest) (*pt.PollTaskResponse, error)
}

func (s *scriptedService) CreateTask(_ context.Context, req *pt.CreateTaskRequest) (*pt.CreateTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(req)
}

func (s *scriptedService) PollTask(_ context.Context, req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poll(req)
}

// startGateway serves |svc| on a loopback listener, returning its address.
func startGateway(t *testing.T, svc pt.TaskServiceServer) string {
	var listener, err = net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var server = grpc.NewServer()
	pt.RegisterTaskServiceServer(server, svc)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	return listener.Addr().String()
}

// testConfig polls aggressively so tests finish in milliseconds.
func testConfig() NetworkConfig {
	return NetworkConfig{
		Timeout: 5 * time.Second,
		Polling: PollingConfig{
			MaxAttempts:  5,
			InitialDelay: time.Millisecond,
			MaxDelay:     4 * time.Millisecond,
			Multiplier:   2.0,
		},
	}
}

func TestSubmitAndResult(t *testing.T) {
	var payload = []byte(`{"answer": 42, "parts": [1, 2, 3]}`)
	var polls int

	var svc = &scriptedService{
		create: func(req *pt.CreateTaskRequest) (*pt.CreateTaskResponse, error) {
			// Submit normalized the nil redundancy to the CLASSIC preset.
			require.Equal(t, pt.ClassicOptions(), req.RedundancyOptions)
			require.Equal(t, "ab12", req.Flavor)
			return &pt.CreateTaskResponse{TaskId: "feedbeef"}, nil
		},
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			require.Equal(t, "feedbeef", req.TaskId)
			if polls++; polls < 3 {
				return &pt.PollTaskResponse{Found: true, TaskStatus: pt.TaskStatus_RUNNING}, nil
			}
			return &pt.PollTaskResponse{
				Found:        true,
				TaskStatus:   pt.TaskStatus_FINISHED,
				ResultStatus: pt.ResultStatus_SUCCESS,
				Returned:     payload,
			}, nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var task, err = client.Submit(context.Background(), Task{
		Flavor:           "ab12",
		CallSpec:         []byte("pickled call"),
		InitValidFunc:    []byte("init"),
		CompareValidFunc: []byte("compare"),
	})
	require.NoError(t, err)
	require.Equal(t, "feedbeef", task.TaskID())

	var result = task.Result(context.Background())
	require.Equal(t, pt.ResultStatus_SUCCESS, result.Status)
	require.Empty(t, result.ErrorMessage)

	var opts = jsondiff.DefaultConsoleOptions()
	var mode, diff = jsondiff.Compare(result.Value, payload, &opts)
	require.Equal(t, jsondiff.FullMatch, mode, diff)

	var decoded struct {
		Answer int   `json:"answer"`
		Parts  []int `json:"parts"`
	}
	require.NoError(t, result.Unmarshal(&decoded))
	require.Equal(t, 42, decoded.Answer)
	require.Equal(t, []int{1, 2, 3}, decoded.Parts)
}

func TestNotFoundThenSuccess(t *testing.T) {
	var polls int
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			if polls++; polls <= 2 {
				// The gateway hasn't seen this task yet.
				return &pt.PollTaskResponse{Found: false}, nil
			}
			return &pt.PollTaskResponse{
				Found:        true,
				TaskStatus:   pt.TaskStatus_FINISHED,
				ResultStatus: pt.ResultStatus_SUCCESS,
				Returned:     []byte(`"hi"`),
			}, nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var result = client.RestoreTask("beefbeef").Result(context.Background())
	require.Equal(t, pt.ResultStatus_SUCCESS, result.Status)
	require.Equal(t, 3, polls)
}

func TestTaggedRemoteOutcomes(t *testing.T) {
	var outcomes = map[string]*pt.PollTaskResponse{
		"user-err": {
			Found:        true,
			TaskStatus:   pt.TaskStatus_FINISHED,
			ResultStatus: pt.ResultStatus_USER_ERROR,
			ErrorMessage: "Traceback (most recent call last): boom",
		},
		"sys-err": {
			Found:        true,
			TaskStatus:   pt.TaskStatus_FINISHED,
			ResultStatus: pt.ResultStatus_SYSTEM_ERROR,
			ErrorMessage: "VCH error code: -185, see WU_ERROR_* in common_defs",
		},
	}
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			return outcomes[req.TaskId], nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var result = client.RestoreTask("user-err").Result(context.Background())
	require.Equal(t, pt.ResultStatus_USER_ERROR, result.Status)
	require.Contains(t, result.ErrorMessage, "Traceback")
	require.ErrorContains(t, result.Unmarshal(&struct{}{}), "did not succeed")

	result = client.RestoreTask("sys-err").Result(context.Background())
	require.Equal(t, pt.ResultStatus_SYSTEM_ERROR, result.Status)
	require.Contains(t, result.ErrorMessage, "VCH error code: -185")
}

func TestPollingExhaustion(t *testing.T) {
	var polls int
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			polls++
			return &pt.PollTaskResponse{Found: true, TaskStatus: pt.TaskStatus_RUNNING}, nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var result = client.RestoreTask("slowpoke").Result(context.Background())
	require.Equal(t, pt.ResultStatus_SYSTEM_ERROR, result.Status)
	require.Equal(t, "Task polling timed out after 5 attempts", result.ErrorMessage)
	require.Equal(t, 5, polls)
}

func TestRPCErrorsConsumeAttempts(t *testing.T) {
	var polls int
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			polls++
			return nil, status.Error(codes.Unavailable, "gateway restarting")
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	// RPC failures are absorbed, but each consumes an attempt.
	var result = client.RestoreTask("unlucky").Result(context.Background())
	require.Equal(t, pt.ResultStatus_SYSTEM_ERROR, result.Status)
	require.Equal(t, "Task polling timed out after 5 attempts", result.ErrorMessage)
	require.Equal(t, 5, polls)
}

func TestContextCancellation(t *testing.T) {
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			return &pt.PollTaskResponse{Found: true, TaskStatus: pt.TaskStatus_RUNNING}, nil
		},
	}
	var cfg = testConfig()
	cfg.Polling.MaxAttempts = 100000
	cfg.Polling.InitialDelay = 50 * time.Millisecond
	cfg.Polling.MaxDelay = 50 * time.Millisecond

	var client = NewWithConfig(startGateway(t, svc), cfg)
	defer client.Close()

	var ctx, cancel = context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	var result = client.RestoreTask("doomed").Result(ctx)
	require.Equal(t, pt.ResultStatus_SYSTEM_ERROR, result.Status)
	require.Equal(t, context.Canceled.Error(), result.ErrorMessage)
}

func TestAwaitAllOrdering(t *testing.T) {
	// Tasks finish in the reverse of submission order, but AwaitAll
	// returns results in input order.
	var remaining = map[string]int{"first": 3, "second": 2, "third": 1}
	var svc = &scriptedService{
		poll: func(req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
			if remaining[req.TaskId]--; remaining[req.TaskId] > 0 {
				return &pt.PollTaskResponse{Found: true, TaskStatus: pt.TaskStatus_RUNNING}, nil
			}
			return &pt.PollTaskResponse{
				Found:        true,
				TaskStatus:   pt.TaskStatus_FINISHED,
				ResultStatus: pt.ResultStatus_SUCCESS,
				Returned:     []byte(fmt.Sprintf("%q", req.TaskId)),
			}, nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var tasks = []*SubmittedTask{
		client.RestoreTask("first"),
		client.RestoreTask("second"),
		client.RestoreTask("third"),
	}
	var results = AwaitAll(context.Background(), tasks)
	require.Len(t, results, 3)

	for i, expect := range []string{"first", "second", "third"} {
		require.Equal(t, expect, results[i].TaskID)
		require.Equal(t, pt.ResultStatus_SUCCESS, results[i].Status)

		var value string
		require.NoError(t, results[i].Unmarshal(&value))
		require.Equal(t, expect, value)
	}
}

func TestSubmitNormalizesPartialOptions(t *testing.T) {
	var svc = &scriptedService{
		create: func(req *pt.CreateTaskRequest) (*pt.CreateTaskResponse, error) {
			require.Equal(t, &pt.RedundancyOptions{
				MinQuorum:         3,
				TargetNresults:    3,
				MaxErrorResults:   1,
				MaxTotalResults:   3,
				MaxSuccessResults: 3,
				DelayBound:        300,
			}, req.RedundancyOptions)
			return &pt.CreateTaskResponse{TaskId: "feedbeef"}, nil
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var task = Task{
		Flavor:            "ab12",
		CallSpec:          []byte("call"),
		InitValidFunc:     []byte("init"),
		CompareValidFunc:  []byte("compare"),
		RedundancyOptions: &pt.RedundancyOptions{MinQuorum: 3},
	}
	var _, err = client.Submit(context.Background(), task)
	require.NoError(t, err)

	// Unsatisfiable options never reach the wire.
	task.RedundancyOptions = &pt.RedundancyOptions{MinQuorum: 3, TargetNresults: 2}
	_, err = client.Submit(context.Background(), task)
	require.ErrorContains(t, err, "TargetNresults (2) is less than MinQuorum (3)")
}

func TestSubmitErrorIsReturned(t *testing.T) {
	var svc = &scriptedService{
		create: func(req *pt.CreateTaskRequest) (*pt.CreateTaskResponse, error) {
			return nil, status.Error(codes.InvalidArgument, "expected Flavor")
		},
	}
	var client = NewWithConfig(startGateway(t, svc), testConfig())
	defer client.Close()

	var _, err = client.Submit(context.Background(), Task{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBackoffSchedule(t *testing.T) {
	var polling = DefaultNetworkConfig().Polling

	require.Equal(t, 15*time.Second, polling.delay(0))
	require.Equal(t, 16500*time.Millisecond, polling.delay(1))
	// The cap is reached around the fifteenth attempt.
	require.Equal(t, 60*time.Second, polling.delay(15))
	require.Equal(t, 60*time.Second, polling.delay(99))
}
