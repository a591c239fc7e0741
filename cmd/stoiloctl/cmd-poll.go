package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/stoilo/stoilo/go/client"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	mbp "go.gazette.dev/core/mainboilerplate"
)

type cmdPoll struct {
	Log     mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Gateway string        `long:"gateway" env:"GATEWAY" default:"localhost:9999" description:"Address of the stoilo gateway"`

	Await   bool `long:"await" description:"Poll until the task finishes or attempts are exhausted"`
	Polling struct {
		MaxAttempts  int           `long:"max-attempts" default:"100" description:"Polling attempts before giving up"`
		InitialDelay time.Duration `long:"initial-delay" default:"15s" description:"Delay after the first attempt"`
		MaxDelay     time.Duration `long:"max-delay" default:"60s" description:"Cap on the backoff delay"`
		Multiplier   float64       `long:"multiplier" default:"1.1" description:"Backoff delay multiplier"`
	} `group:"Polling" namespace:"polling"`

	Positional struct {
		TaskID string `positional-arg-name:"TASK_ID" required:"true" description:"Task to poll"`
	} `positional-args:"yes"`
}

var green = color.New(color.FgGreen).SprintFunc()
var yellow = color.New(color.FgYellow).SprintFunc()
var red = color.New(color.FgRed).SprintFunc()

func (cmd cmdPoll) Execute(_ []string) error {
	mbp.InitLog(cmd.Log)

	var network = client.DefaultNetworkConfig()
	network.Polling = client.PollingConfig{
		MaxAttempts:  cmd.Polling.MaxAttempts,
		InitialDelay: cmd.Polling.InitialDelay,
		MaxDelay:     cmd.Polling.MaxDelay,
		Multiplier:   cmd.Polling.Multiplier,
	}
	var c = client.NewWithConfig(cmd.Gateway, network)
	defer c.Close()

	if cmd.Await {
		printResult(c.RestoreTask(cmd.Positional.TaskID).Result(context.Background()))
		return nil
	}

	// One-shot: print the task's current state and return.
	var resp, err = c.Poll(context.Background(), cmd.Positional.TaskID)
	if err != nil {
		return err
	} else if !resp.Found {
		return fmt.Errorf("the gateway doesn't know task %s", cmd.Positional.TaskID)
	} else if resp.TaskStatus != pt.TaskStatus_FINISHED {
		fmt.Println("RUNNING")
		return nil
	}

	printResult(client.Result{
		TaskID:       cmd.Positional.TaskID,
		Status:       resp.ResultStatus,
		Value:        resp.Returned,
		ErrorMessage: resp.ErrorMessage,
	})
	return nil
}

// printResult writes a tagged task outcome to stdout: the colored status,
// then the value or error message.
func printResult(result client.Result) {
	switch result.Status {
	case pt.ResultStatus_SUCCESS:
		fmt.Println(green("SUCCESS"))
		os.Stdout.Write(append(result.Value, '\n'))
	case pt.ResultStatus_USER_ERROR:
		fmt.Println(yellow("USER_ERROR"))
		fmt.Println(result.ErrorMessage)
	default:
		fmt.Println(red("SYSTEM_ERROR"))
		fmt.Println(result.ErrorMessage)
	}
}
