package task

import (
	pb "go.gazette.dev/core/broker/protocol"
)

// MaxMessageSize is the maximum encoded size of a TaskService message.
// Call specs and predicate blobs can be very large, so this is deliberately
// generous and must be applied symmetrically by servers and clients.
const MaxMessageSize = 1 << 30 // 1 GiB.

// Validate returns an error if the CreateTaskRequest isn't well-formed.
func (m *CreateTaskRequest) Validate() error {
	if m.Flavor == "" {
		return pb.NewValidationError("missing Flavor")
	} else if len(m.CallSpec) == 0 {
		return pb.NewValidationError("missing CallSpec")
	} else if len(m.InitValidFunc) == 0 {
		return pb.NewValidationError("missing InitValidFunc")
	} else if len(m.CompareValidFunc) == 0 {
		return pb.NewValidationError("missing CompareValidFunc")
	}
	if m.RedundancyOptions != nil {
		if err := m.RedundancyOptions.Validate(); err != nil {
			return pb.ExtendContext(err, "RedundancyOptions")
		}
	}
	return nil
}

// Validate returns an error if the RedundancyOptions aren't a complete,
// VCH-valid parameter set. Partial options must be Normalized first.
func (m *RedundancyOptions) Validate() error {
	if m.MinQuorum < 1 {
		return pb.NewValidationError("invalid MinQuorum (%d; expected >= 1)", m.MinQuorum)
	} else if m.TargetNresults < m.MinQuorum {
		return pb.NewValidationError("invalid TargetNresults (%d; expected >= MinQuorum %d)",
			m.TargetNresults, m.MinQuorum)
	} else if m.MaxErrorResults < 1 {
		// The VCH rejects work units which tolerate zero errored results.
		return pb.NewValidationError("invalid MaxErrorResults (%d; expected >= 1)", m.MaxErrorResults)
	} else if m.MaxTotalResults < 1 {
		return pb.NewValidationError("invalid MaxTotalResults (%d; expected >= 1)", m.MaxTotalResults)
	} else if m.MaxSuccessResults < 1 {
		return pb.NewValidationError("invalid MaxSuccessResults (%d; expected >= 1)", m.MaxSuccessResults)
	} else if m.DelayBound < 1 {
		return pb.NewValidationError("invalid DelayBound (%d; expected >= 1)", m.DelayBound)
	}
	return nil
}

// Validate returns an error if the PollTaskRequest isn't well-formed.
func (m *PollTaskRequest) Validate() error {
	if m.TaskId == "" {
		return pb.NewValidationError("missing TaskId")
	}
	return nil
}
