package domain

import (
	"errors"
)

type ResolutionState string

const (
	StateIdle      ResolutionState = "idle"
	StateNoAddress ResolutionState = "noAddress"
	StatePending   ResolutionState = "pending"
	StateSuccess   ResolutionState = "success"
	StateFailure   ResolutionState = "failure"
)

type FailureReason string

const (
	ReasonFetchError        FailureReason = "fetchError"
	ReasonDecodeError       FailureReason = "decodeError"
	ReasonContractReadError FailureReason = "contractReadError"
)

const (
	MessageNoAddress = "Please provide a contract address to load its metadata."
	MessagePending   = "Loading..."
	MessageFailure   = "Error loading metadata. Please check the contract address."
)

// Outcome is the observable result of one resolution. Only Err is not serialized.
type Outcome struct {
	State       ResolutionState   `json:"state"`
	Network     string            `json:"network,omitempty"`
	Address     Address           `json:"address,omitempty"`
	Pointer     MetadataPointer   `json:"pointer,omitempty"`
	MetadataUrl string            `json:"metadataUrl,omitempty"`
	Metadata    *ResolvedMetadata `json:"metadata,omitempty"`
	Reason      FailureReason     `json:"reason,omitempty"`
	Error       string            `json:"error,omitempty"`
	Message     string            `json:"message,omitempty"`

	Err error `json:"-"`
}

func IdleOutcome() *Outcome {
	return &Outcome{State: StateIdle}
}

func NoAddressOutcome() *Outcome {
	return &Outcome{State: StateNoAddress, Message: MessageNoAddress, Err: ErrNoAddress}
}

func PendingOutcome(pointer MetadataPointer) *Outcome {
	return &Outcome{State: StatePending, Pointer: pointer, Message: MessagePending}
}

func SuccessOutcome(pointer MetadataPointer, metadataUrl string, metadata *ResolvedMetadata) *Outcome {
	return &Outcome{
		State:       StateSuccess,
		Pointer:     pointer,
		MetadataUrl: metadataUrl,
		Metadata:    metadata,
	}
}

func FailureOutcome(pointer MetadataPointer, reason FailureReason, err error) *Outcome {
	o := &Outcome{
		State:   StateFailure,
		Pointer: pointer,
		Reason:  reason,
		Message: MessageFailure,
		Err:     err,
	}
	if err != nil {
		o.Error = err.Error()
	}
	return o
}

// WithContract stamps the contract the outcome belongs to
func (o *Outcome) WithContract(network string, address Address) *Outcome {
	o.Network = network
	o.Address = address
	return o
}

// IsTerminal is true once nothing is in flight for this outcome.
// NoAddress counts as terminal: no work is ever started for it.
func (o *Outcome) IsTerminal() bool {
	switch o.State {
	case StateSuccess, StateFailure, StateNoAddress:
		return true
	}
	return false
}

// ReasonOf classifies err into a failure reason
func ReasonOf(err error) FailureReason {
	switch {
	case errors.Is(err, ErrDecode):
		return ReasonDecodeError
	case errors.Is(err, ErrFetch):
		return ReasonFetchError
	}
	return ReasonContractReadError
}
