package task

import (
	pb "go.gazette.dev/core/broker/protocol"
)

// Defaults applied by Normalized to zero-valued RedundancyOptions fields.
const (
	DefaultMinQuorum       = 2
	DefaultMaxTotalResults = 3
	DefaultDelayBound      = 300 // Seconds.
)

// Normalized fills zero-valued fields of the RedundancyOptions with policy
// defaults and returns a complete, VCH-valid parameter set. The receiver is
// not modified; a nil receiver normalizes to ClassicOptions. An explicit
// TargetNresults below MinQuorum is an error, since the VCH could then never
// assemble a quorum from the initially scheduled replicas.
func (m *RedundancyOptions) Normalized() (*RedundancyOptions, error) {
	var out RedundancyOptions
	if m != nil {
		out = *m
	}

	if out.MinQuorum == 0 {
		out.MinQuorum = DefaultMinQuorum
	}
	if out.TargetNresults == 0 {
		out.TargetNresults = out.MinQuorum
	} else if out.TargetNresults < out.MinQuorum {
		return nil, pb.NewValidationError(
			"TargetNresults (%d) is less than MinQuorum (%d)", out.TargetNresults, out.MinQuorum)
	}
	if out.MaxTotalResults == 0 {
		out.MaxTotalResults = DefaultMaxTotalResults
	}
	if out.MaxErrorResults == 0 {
		out.MaxErrorResults = out.MaxTotalResults - (out.MinQuorum/2 + 1)
	}
	// The VCH forbids a zero error budget.
	if out.MaxErrorResults < 1 {
		out.MaxErrorResults = 1
	}
	if out.MaxSuccessResults == 0 {
		out.MaxSuccessResults = out.MaxTotalResults
	}
	if out.DelayBound == 0 {
		out.DelayBound = DefaultDelayBound
	}
	return &out, nil
}

// TrivialOptions disable redundancy: a single replica of a single attempt,
// whose result is canonical without comparison. Appropriate where workers
// are trusted, such as gradient evaluation on a dedicated pool.
func TrivialOptions() *RedundancyOptions {
	return &RedundancyOptions{
		MinQuorum:         1,
		TargetNresults:    1,
		MaxErrorResults:   1,
		MaxTotalResults:   1,
		MaxSuccessResults: 1,
		DelayBound:        DefaultDelayBound,
	}
}

// ClassicOptions are the fully-defaulted redundancy parameters:
// a quorum of two agreeing replicas out of at most three.
func ClassicOptions() *RedundancyOptions {
	var out, err = (*RedundancyOptions)(nil).Normalized()
	if err != nil {
		panic(err) // Cannot fail.
	}
	return out
}
