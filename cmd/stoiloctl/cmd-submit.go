package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/stoilo/stoilo/go/client"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	mbp "go.gazette.dev/core/mainboilerplate"
)

type cmdSubmit struct {
	Log     mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Gateway string        `long:"gateway" env:"GATEWAY" default:"localhost:9999" description:"Address of the stoilo gateway"`

	Flavor           string `long:"flavor" required:"true" description:"Task flavor, selecting the VCH application"`
	CallSpec         string `long:"call-spec" required:"true" description:"Path of the serialized call spec"`
	InitValidFunc    string `long:"init-valid-func" required:"true" description:"Path of the serialized initial validation predicate"`
	CompareValidFunc string `long:"compare-valid-func" required:"true" description:"Path of the serialized comparative validation predicate"`

	Redundancy struct {
		Preset            string `long:"preset" choice:"classic" choice:"trivial" description:"Redundancy preset (overrides individual options)"`
		MinQuorum         int64  `long:"min-quorum" description:"Minimum agreeing results"`
		TargetNresults    int64  `long:"target-nresults" description:"Results to request initially"`
		MaxErrorResults   int64  `long:"max-error-results" description:"Errored results before the workunit fails"`
		MaxTotalResults   int64  `long:"max-total-results" description:"Total results before the workunit fails"`
		MaxSuccessResults int64  `long:"max-success-results" description:"Successful results before the workunit fails"`
		DelayBound        int64  `long:"delay-bound" description:"Seconds before an unreported result is reissued"`
	} `group:"Redundancy" namespace:"redundancy"`

	Await bool `long:"await" description:"Poll the task to completion after submitting"`
}

func (cmd cmdSubmit) Execute(_ []string) error {
	mbp.InitLog(cmd.Log)

	var task = client.Task{Flavor: cmd.Flavor}
	var err error

	if task.CallSpec, err = os.ReadFile(cmd.CallSpec); err != nil {
		return fmt.Errorf("reading call spec: %w", err)
	}
	if task.InitValidFunc, err = os.ReadFile(cmd.InitValidFunc); err != nil {
		return fmt.Errorf("reading initial predicate: %w", err)
	}
	if task.CompareValidFunc, err = os.ReadFile(cmd.CompareValidFunc); err != nil {
		return fmt.Errorf("reading comparative predicate: %w", err)
	}
	if task.RedundancyOptions, err = cmd.redundancy(); err != nil {
		return err
	}

	var c = client.New(cmd.Gateway)
	defer c.Close()

	submitted, err := c.Submit(context.Background(), task)
	if err != nil {
		return err
	}
	fmt.Println(submitted.TaskID())

	if !cmd.Await {
		return nil
	}
	log.WithField("taskId", submitted.TaskID()).Info("awaiting task result")
	printResult(submitted.Result(context.Background()))
	return nil
}

// redundancy maps the preset and individual flags into RedundancyOptions.
// A nil return defers to the client's CLASSIC default.
func (cmd cmdSubmit) redundancy() (*pt.RedundancyOptions, error) {
	switch cmd.Redundancy.Preset {
	case "classic":
		return pt.ClassicOptions(), nil
	case "trivial":
		return pt.TrivialOptions(), nil
	}

	var opts = &pt.RedundancyOptions{
		MinQuorum:         cmd.Redundancy.MinQuorum,
		TargetNresults:    cmd.Redundancy.TargetNresults,
		MaxErrorResults:   cmd.Redundancy.MaxErrorResults,
		MaxTotalResults:   cmd.Redundancy.MaxTotalResults,
		MaxSuccessResults: cmd.Redundancy.MaxSuccessResults,
		DelayBound:        cmd.Redundancy.DelayBound,
	}
	if *opts == (pt.RedundancyOptions{}) {
		return nil, nil
	}
	var normalized, err = opts.Normalized()
	if err != nil {
		return nil, fmt.Errorf("invalid redundancy options: %w", err)
	}
	return normalized, nil
}
