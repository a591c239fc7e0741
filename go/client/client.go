// Package client is the Go client of the task gateway. It submits compute
// calls and polls them to completion, mapping remote outcomes into tagged
// Result values rather than errors.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// PollingConfig tunes the poll loop of SubmittedTask.Result.
// The delay before attempt k is min(InitialDelay * Multiplier^k, MaxDelay).
type PollingConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// NetworkConfig tunes the client's use of the network.
type NetworkConfig struct {
	// Timeout bounds each individual RPC.
	Timeout time.Duration
	Polling PollingConfig
}

// DefaultNetworkConfig returns the stock NetworkConfig.
// Its polling schedule spans a bit under two hours of wall time.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Timeout: 30 * time.Second,
		Polling: PollingConfig{
			MaxAttempts:  100,
			InitialDelay: 15 * time.Second,
			MaxDelay:     60 * time.Second,
			Multiplier:   1.1,
		},
	}
}

// Task is a compute call to submit. RedundancyOptions may be nil,
// in which case the CLASSIC preset is used.
type Task struct {
	Flavor            string
	CallSpec          []byte
	InitValidFunc     []byte
	CompareValidFunc  []byte
	RedundancyOptions *pt.RedundancyOptions
}

// Client is a client of the task gateway. Its connection is dialed lazily
// on first use and shared by all tasks. Client is safe for concurrent use.
type Client struct {
	address string
	network NetworkConfig

	mu   sync.Mutex
	conn *grpc.ClientConn
	ts   pt.TaskServiceClient
}

// New returns a Client of the gateway at |address|, using defaults.
func New(address string) *Client {
	return NewWithConfig(address, DefaultNetworkConfig())
}

// NewWithConfig returns a Client of the gateway at |address|.
func NewWithConfig(address string, network NetworkConfig) *Client {
	return &Client{address: address, network: network}
}

// service returns the TaskServiceClient, dialing on first use.
func (c *Client) service(ctx context.Context) (pt.TaskServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ts != nil {
		return c.ts, nil
	}
	var conn, err = grpc.DialContext(
		ctx,
		c.address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		// Instrument client for gRPC metric collection.
		grpc.WithUnaryInterceptor(grpc_prometheus.UnaryClientInterceptor),
		grpc.WithStreamInterceptor(grpc_prometheus.StreamClientInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(pt.MaxMessageSize),
			grpc.MaxCallSendMsgSize(pt.MaxMessageSize),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("dialing gateway %s: %w", c.address, err)
	}
	c.conn = conn
	c.ts = pt.NewTaskServiceClient(conn)
	return c.ts, nil
}

// Close closes the Client's connection, if one was dialed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	var err = c.conn.Close()
	c.conn, c.ts = nil, nil
	return err
}

// Submit sends |task| to the gateway and returns its SubmittedTask handle.
// Unlike polling, submission errors are returned as errors: the caller
// must know whether the task exists at all.
func (c *Client) Submit(ctx context.Context, task Task) (*SubmittedTask, error) {
	var ts, err = c.service(ctx)
	if err != nil {
		return nil, err
	}

	// Normalization happens client-side: the gateway requires a complete
	// parameter set, and nil options normalize to the CLASSIC preset.
	redundancy, err := task.RedundancyOptions.Normalized()
	if err != nil {
		return nil, fmt.Errorf("invalid redundancy options: %w", err)
	}

	rpcCtx, cancel := context.WithTimeout(ctx, c.network.Timeout)
	defer cancel()

	resp, err := ts.CreateTask(rpcCtx, &pt.CreateTaskRequest{
		Flavor:            task.Flavor,
		CallSpec:          task.CallSpec,
		InitValidFunc:     task.InitValidFunc,
		CompareValidFunc:  task.CompareValidFunc,
		RedundancyOptions: redundancy,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting task: %w", err)
	}
	return &SubmittedTask{client: c, taskID: resp.TaskId}, nil
}

// RestoreTask reattaches to a task submitted earlier, perhaps by another
// process. It doesn't verify that the gateway knows |taskID|.
func (c *Client) RestoreTask(taskID string) *SubmittedTask {
	return &SubmittedTask{client: c, taskID: taskID}
}
