package model

import "time"

type RequestType string

const (
	RequestTowel        RequestType = "towel"
	RequestOrder        RequestType = "order"
	RequestOther        RequestType = "other"
	RequestCleaning     RequestType = "cleaning"
	RequestFood         RequestType = "food"
	RequestDoNotDisturb RequestType = "doNotDisturb"
	RequestQuestions    RequestType = "questions"
	RequestProblem      RequestType = "problem"
)

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in-progress"
	StatusDone       RequestStatus = "done"
	StatusCancelled  RequestStatus = "cancelled"
)

// Open reports whether staff still have to act on a request in this status.
func (s RequestStatus) Open() bool {
	return s == StatusPending || s == StatusInProgress
}

// Terminal reports whether the status can no longer change.
func (s RequestStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

type ServiceRequest struct {
	ID            int           `json:"id"`
	Type          RequestType   `json:"type"`
	Details       string        `json:"details,omitempty"`
	Status        RequestStatus `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	SunbedID      string        `json:"sunbedId,omitempty"`
	EstimatedTime string        `json:"estimatedTime,omitempty"`
	QueuePosition int           `json:"queuePosition,omitempty"`
	Order         *OrderSummary `json:"order,omitempty"`
}
