package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTaskRequestValidation(t *testing.T) {
	var model = CreateTaskRequest{
		Flavor:            "a1b2c3",
		CallSpec:          []byte("call"),
		InitValidFunc:     []byte("init"),
		CompareValidFunc:  []byte("compare"),
		RedundancyOptions: ClassicOptions(),
	}
	require.NoError(t, model.Validate())

	// Redundancy options are optional (the gateway defaults them)...
	var m = model
	m.RedundancyOptions = nil
	require.NoError(t, m.Validate())

	// ...but if present, must be complete.
	m = model
	m.RedundancyOptions = &RedundancyOptions{MinQuorum: 2}
	require.Regexp(t, "RedundancyOptions: invalid TargetNresults", m.Validate())

	m = model
	m.Flavor = ""
	require.EqualError(t, m.Validate(), "missing Flavor")

	m = model
	m.CallSpec = nil
	require.EqualError(t, m.Validate(), "missing CallSpec")

	m = model
	m.InitValidFunc = nil
	require.EqualError(t, m.Validate(), "missing InitValidFunc")

	m = model
	m.CompareValidFunc = nil
	require.EqualError(t, m.Validate(), "missing CompareValidFunc")
}

func TestPollTaskRequestValidation(t *testing.T) {
	require.NoError(t, (&PollTaskRequest{TaskId: "0123"}).Validate())
	require.EqualError(t, (&PollTaskRequest{}).Validate(), "missing TaskId")
}

func TestStatusTagsAreContractual(t *testing.T) {
	// ResultStatus tags equal the result-file lead digit, and must never move.
	require.Equal(t, ResultStatus(0), ResultStatus_SUCCESS)
	require.Equal(t, ResultStatus(1), ResultStatus_USER_ERROR)
	require.Equal(t, ResultStatus(2), ResultStatus_SYSTEM_ERROR)

	require.Equal(t, TaskStatus(0), TaskStatus_RUNNING)
	require.Equal(t, TaskStatus(1), TaskStatus_FINISHED)
}
