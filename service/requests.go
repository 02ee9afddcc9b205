package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resort-concierge/model"
)

var (
	ErrMergeTooFew     = errors.New("select at least two questions to merge")
	ErrMergeIneligible = errors.New("only pending questions can be merged")
)

// etaProfile describes how long staff take for a request type: the first slot
// in the queue waits base..base+pad minutes and every slot ahead adds step.
type etaProfile struct {
	base int
	step int
	pad  int
}

var (
	defaultETA = etaProfile{base: 10, step: 10, pad: 10}
	etaByType  = map[model.RequestType]etaProfile{
		model.RequestFood:      {base: 25, step: 15, pad: 10},
		model.RequestCleaning:  {base: 15, step: 20, pad: 10},
		model.RequestQuestions: {base: 5, step: 5, pad: 5},
		model.RequestProblem:   {base: 10, step: 15, pad: 10},
	}
)

// EstimateTime renders the wait range for the given queue position.
func EstimateTime(requestType model.RequestType, position int) string {
	profile, ok := etaByType[requestType]
	if !ok {
		profile = defaultETA
	}
	if position < 1 {
		position = 1
	}
	low := profile.base + profile.step*(position-1)
	return fmt.Sprintf("%d-%d min", low, low+profile.pad)
}

// SubmitInput carries a new request from one of the request forms.
type SubmitInput struct {
	Type     model.RequestType
	Details  string
	SunbedID string
	Order    *model.OrderSummary
	// Status is the initial open status; pending when empty.
	Status model.RequestStatus
}

type QueueOption func(*RequestQueue)

func WithClock(now func() time.Time) QueueOption {
	return func(q *RequestQueue) {
		if now != nil {
			q.now = now
		}
	}
}

func WithLogger(log *slog.Logger) QueueOption {
	return func(q *RequestQueue) {
		if log != nil {
			q.log = log
		}
	}
}

// RequestQueue tracks the guest's service requests and their estimated waits.
type RequestQueue struct {
	requests []model.ServiceRequest
	nextID   int
	now      func() time.Time
	log      *slog.Logger
}

func NewRequestQueue(opts ...QueueOption) *RequestQueue {
	q := &RequestQueue{
		nextID: 1,
		now:    time.Now,
		log:    discardLogger,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Submit files a new open request behind the open requests of the same type.
func (q *RequestQueue) Submit(in SubmitInput) model.ServiceRequest {
	status := in.Status
	if !status.Open() {
		status = model.StatusPending
	}
	position := q.openCountOfType(in.Type) + 1
	request := model.ServiceRequest{
		ID:            q.allocateID(),
		Type:          in.Type,
		Details:       strings.TrimSpace(in.Details),
		Status:        status,
		Timestamp:     q.now(),
		SunbedID:      strings.TrimSpace(in.SunbedID),
		EstimatedTime: EstimateTime(in.Type, position),
		QueuePosition: position,
		Order:         in.Order,
	}
	q.requests = append(q.requests, request)
	q.log.Info("request submitted",
		slog.Int("request_id", request.ID),
		slog.String("type", string(request.Type)),
		slog.Int("queue_position", position),
		slog.String("eta", request.EstimatedTime),
	)
	return request
}

// Cancel moves an open request to cancelled. Terminal or unknown ids are left alone.
func (q *RequestQueue) Cancel(id int) bool {
	return q.transition(id, model.StatusCancelled)
}

// Resolve marks an open request done. Terminal or unknown ids are left alone.
func (q *RequestQueue) Resolve(id int) bool {
	return q.transition(id, model.StatusDone)
}

func (q *RequestQueue) transition(id int, to model.RequestStatus) bool {
	i := q.index(id)
	if i < 0 || !q.requests[i].Status.Open() {
		return false
	}
	q.requests[i].Status = to
	q.log.Info("request status changed", slog.Int("request_id", id), slog.String("status", string(to)))
	return true
}

// AutoResolve completes every open request older than threshold and returns
// the requests it completed. A request is returned at most once.
func (q *RequestQueue) AutoResolve(threshold time.Duration) []model.ServiceRequest {
	now := q.now()
	var resolved []model.ServiceRequest
	for i := range q.requests {
		request := &q.requests[i]
		if !request.Status.Open() || now.Sub(request.Timestamp) <= threshold {
			continue
		}
		request.Status = model.StatusDone
		resolved = append(resolved, *request)
		q.log.Info("request completed by staff", slog.Int("request_id", request.ID), slog.String("type", string(request.Type)))
	}
	return resolved
}

// Merge folds several pending questions into one. The merged request takes
// the place and wait estimate of the original closest to the front of the
// queue; its details number the original texts in submission order.
func (q *RequestQueue) Merge(ids []int) (model.ServiceRequest, error) {
	if len(ids) < 2 {
		return model.ServiceRequest{}, ErrMergeTooFew
	}

	seen := map[int]bool{}
	for _, id := range ids {
		if seen[id] {
			return model.ServiceRequest{}, fmt.Errorf("%w: request %d listed twice", ErrMergeIneligible, id)
		}
		seen[id] = true
		i := q.index(id)
		if i < 0 {
			return model.ServiceRequest{}, fmt.Errorf("%w: request %d not found", ErrMergeIneligible, id)
		}
		original := q.requests[i]
		if original.Type != model.RequestQuestions || original.Status != model.StatusPending {
			return model.ServiceRequest{}, fmt.Errorf("%w: request %d is %s/%s", ErrMergeIneligible, id, original.Type, original.Status)
		}
	}

	originals := make([]model.ServiceRequest, 0, len(ids))
	firstIndex := -1
	for i, request := range q.requests {
		if !seen[request.ID] {
			continue
		}
		if firstIndex < 0 {
			firstIndex = i
		}
		originals = append(originals, request)
	}

	best := originals[0]
	lines := make([]string, 0, len(originals))
	for n, original := range originals {
		if original.QueuePosition > 0 && (best.QueuePosition == 0 || original.QueuePosition < best.QueuePosition) {
			best = original
		}
		lines = append(lines, fmt.Sprintf("%d. %s", n+1, original.Details))
	}

	merged := model.ServiceRequest{
		ID:            q.allocateID(),
		Type:          model.RequestQuestions,
		Details:       strings.Join(lines, "\n"),
		Status:        model.StatusPending,
		Timestamp:     q.now(),
		SunbedID:      best.SunbedID,
		EstimatedTime: best.EstimatedTime,
		QueuePosition: best.QueuePosition,
	}

	kept := make([]model.ServiceRequest, 0, len(q.requests)-len(originals)+1)
	for i, request := range q.requests {
		if i == firstIndex {
			kept = append(kept, merged)
		}
		if seen[request.ID] {
			continue
		}
		kept = append(kept, request)
	}
	q.requests = kept
	q.log.Info("questions merged", slog.Any("request_ids", ids), slog.Int("merged_id", merged.ID))
	return merged, nil
}

// Remove deletes a finished request from the history. Open requests stay.
func (q *RequestQueue) Remove(id int) bool {
	i := q.index(id)
	if i < 0 || !q.requests[i].Status.Terminal() {
		return false
	}
	q.requests = append(q.requests[:i], q.requests[i+1:]...)
	return true
}

// ClearHistory removes every finished request and reports how many went.
func (q *RequestQueue) ClearHistory() int {
	kept := q.requests[:0]
	removed := 0
	for _, request := range q.requests {
		if request.Status.Terminal() {
			removed++
			continue
		}
		kept = append(kept, request)
	}
	q.requests = kept
	return removed
}

func (q *RequestQueue) Get(id int) (model.ServiceRequest, bool) {
	i := q.index(id)
	if i < 0 {
		return model.ServiceRequest{}, false
	}
	return q.requests[i], true
}

// Requests returns a copy of every request in submission order.
func (q *RequestQueue) Requests() []model.ServiceRequest {
	return append([]model.ServiceRequest(nil), q.requests...)
}

func (q *RequestQueue) Len() int {
	return len(q.requests)
}

// OpenCount is the notification badge: requests staff still have to handle.
func (q *RequestQueue) OpenCount() int {
	count := 0
	for _, request := range q.requests {
		if request.Status.Open() {
			count++
		}
	}
	return count
}

func (q *RequestQueue) openCountOfType(requestType model.RequestType) int {
	count := 0
	for _, request := range q.requests {
		if request.Type == requestType && request.Status.Open() {
			count++
		}
	}
	return count
}

func (q *RequestQueue) allocateID() int {
	id := q.nextID
	q.nextID++
	return id
}

func (q *RequestQueue) index(id int) int {
	for i, request := range q.requests {
		if request.ID == id {
			return i
		}
	}
	return -1
}

// RequestBuckets splits requests for the notifications panel. Pending and
// in-progress requests share the in-progress bucket.
type RequestBuckets struct {
	InProgress []model.ServiceRequest
	Done       []model.ServiceRequest
	Cancelled  []model.ServiceRequest
}

func Partition(requests []model.ServiceRequest) RequestBuckets {
	var buckets RequestBuckets
	for _, request := range requests {
		switch {
		case request.Status.Open():
			buckets.InProgress = append(buckets.InProgress, request)
		case request.Status == model.StatusDone:
			buckets.Done = append(buckets.Done, request)
		case request.Status == model.StatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, request)
		}
	}
	return buckets
}

type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterInProgress StatusFilter = "in-progress"
	FilterDone       StatusFilter = "done"
	FilterCancelled  StatusFilter = "cancelled"
)

// Label is the filter button caption.
func (f StatusFilter) Label() string {
	switch f {
	case FilterInProgress:
		return "In Progress"
	case FilterDone:
		return "Completed"
	case FilterCancelled:
		return "Cancelled"
	default:
		return "All"
	}
}

// Matches reports whether request belongs under filter.
func (f StatusFilter) Matches(request model.ServiceRequest) bool {
	switch f {
	case FilterInProgress:
		return request.Status.Open()
	case FilterDone:
		return request.Status == model.StatusDone
	case FilterCancelled:
		return request.Status == model.StatusCancelled
	default:
		return true
	}
}

func FilterRequests(requests []model.ServiceRequest, filter StatusFilter) []model.ServiceRequest {
	var out []model.ServiceRequest
	for _, request := range requests {
		if filter.Matches(request) {
			out = append(out, request)
		}
	}
	return out
}

// ShowQueueBadge reports whether the queue position should be displayed.
func ShowQueueBadge(request model.ServiceRequest) bool {
	return request.Status == model.StatusPending && request.QueuePosition > 0
}

// RequestLabel is the human title of a request.
func RequestLabel(request model.ServiceRequest) string {
	switch request.Type {
	case model.RequestTowel:
		return "Towel Request"
	case model.RequestOrder:
		return "Food & Drinks Order"
	case model.RequestOther:
		if request.Details != "" {
			return request.Details
		}
		return "Other Service"
	case model.RequestCleaning:
		return "Housekeeping"
	case model.RequestFood:
		return "Room Service Order"
	case model.RequestDoNotDisturb:
		return "Do Not Disturb"
	case model.RequestQuestions:
		return "Question"
	case model.RequestProblem:
		return "Problem Report"
	default:
		return "Service Request"
	}
}

// CompletionMessage is the toast shown when staff complete a request.
func CompletionMessage(request model.ServiceRequest) string {
	if request.Type == model.RequestOther {
		if request.Details == "" {
			return "Service request completed by staff"
		}
		return request.Details + " completed by staff"
	}
	return string(request.Type) + " completed by staff"
}
