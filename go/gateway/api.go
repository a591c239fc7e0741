// Package gateway implements the client-facing TaskService RPC server.
// It bridges clients to the task store and the VCH work launcher.
package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stoilo/stoilo/go/taskstore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WorkCreator registers a staged work unit with the VCH.
// It's implemented by *launcher.Launcher.
type WorkCreator interface {
	CreateWork(ctx context.Context, taskID, flavor string, callSpec []byte, redundancy *pt.RedundancyOptions) error
}

// API is a gRPC API for task submission and polling.
// Requests are independent; no inter-request state is kept beyond a cache
// of FINISHED poll responses, which finality makes immutable.
type API struct {
	store    *taskstore.Store
	launcher WorkCreator
	finished *lru.Cache[string, *pt.PollTaskResponse]
}

// NewAPI returns an API over the given store and launcher.
func NewAPI(store *taskstore.Store, launcher WorkCreator) *API {
	var finished, err = lru.New[string, *pt.PollTaskResponse](1024)
	if err != nil {
		panic(err)
	}
	return &API{
		store:    store,
		launcher: launcher,
		finished: finished,
	}
}

// CreateTask implements TaskServiceServer.
//
// Its steps are strictly ordered: the task row is inserted before the VCH
// is contacted, which makes the store the sole authority on task existence.
// If the launch then fails, the row is best-effort marked SYSTEM_ERROR so
// that a stray poll converges, and the client learns via the RPC error.
func (a *API) CreateTask(ctx context.Context, req *pt.CreateTaskRequest) (*pt.CreateTaskResponse, error) {
	if err := req.Validate(); err != nil {
		createdTasksCounter.WithLabelValues("invalid").Inc()
		return new(pt.CreateTaskResponse), status.Error(codes.InvalidArgument, err.Error())
	}

	redundancy, err := req.RedundancyOptions.Normalized()
	if err != nil {
		createdTasksCounter.WithLabelValues("invalid").Inc()
		return new(pt.CreateTaskResponse), status.Error(codes.InvalidArgument, err.Error())
	}

	var id = uuid.New()
	var taskID = fmt.Sprintf("%x", id[:])

	if err = a.store.CreateTask(ctx, taskID, req.CallSpec, req.InitValidFunc, req.CompareValidFunc); err != nil {
		log.WithFields(log.Fields{
			"taskId": taskID,
			"error":  err,
		}).Error("failed to insert task")
		createdTasksCounter.WithLabelValues("store_error").Inc()
		return new(pt.CreateTaskResponse), status.Error(codes.Internal, err.Error())
	}

	if err = a.launcher.CreateWork(ctx, taskID, req.Flavor, req.CallSpec, redundancy); err != nil {
		log.WithFields(log.Fields{
			"taskId": taskID,
			"error":  err,
		}).Error("failed to create VCH work unit")
		a.store.SetTaskFailed(ctx, taskID, err.Error())
		createdTasksCounter.WithLabelValues("launch_error").Inc()
		return new(pt.CreateTaskResponse), status.Error(codes.Internal, err.Error())
	}

	log.WithFields(log.Fields{
		"taskId": taskID,
		"flavor": req.Flavor,
	}).Info("created task")
	createdTasksCounter.WithLabelValues("ok").Inc()

	return &pt.CreateTaskResponse{TaskId: taskID}, nil
}

// PollTask implements TaskServiceServer. It never mutates: an unknown task
// id reports found=false rather than an error, letting clients distinguish
// "not yet visible" from a transport failure.
func (a *API) PollTask(ctx context.Context, req *pt.PollTaskRequest) (*pt.PollTaskResponse, error) {
	if err := req.Validate(); err != nil {
		return new(pt.PollTaskResponse), status.Error(codes.InvalidArgument, err.Error())
	}

	if resp, ok := a.finished.Get(req.TaskId); ok {
		polledTasksCounter.WithLabelValues("cached").Inc()
		return resp, nil
	}

	var row, err = a.store.GetTaskStatus(ctx, req.TaskId)
	if err != nil {
		polledTasksCounter.WithLabelValues("store_error").Inc()
		return new(pt.PollTaskResponse), status.Error(codes.Internal, err.Error())
	} else if row == nil {
		polledTasksCounter.WithLabelValues("not_found").Inc()
		return &pt.PollTaskResponse{Found: false}, nil
	}

	var resp = &pt.PollTaskResponse{
		Found:        true,
		TaskStatus:   row.TaskStatus,
		ResultStatus: row.ResultStatus,
		Returned:     row.Returned,
		ErrorMessage: row.ErrorMessage,
	}
	if row.TaskStatus == pt.TaskStatus_FINISHED {
		// Safe: a FINISHED row is immutable.
		a.finished.Add(req.TaskId, resp)
		polledTasksCounter.WithLabelValues("finished").Inc()
	} else {
		polledTasksCounter.WithLabelValues("running").Inc()
	}
	return resp, nil
}

// RegisterAPIs registers the gateway's APIs with the gRPC server.
func RegisterAPIs(server *grpc.Server, api *API) {
	pt.RegisterTaskServiceServer(server, api)
}

var _ pt.TaskServiceServer = (*API)(nil)
