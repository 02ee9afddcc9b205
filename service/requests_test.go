package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resort-concierge/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestQueue() (*RequestQueue, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)}
	return NewRequestQueue(WithClock(clock.Now)), clock
}

func TestSubmit_QueuePositionAndETA(t *testing.T) {
	q, _ := newTestQueue()

	first := q.Submit(SubmitInput{Type: model.RequestFood, Details: "Club sandwich"})
	assert.Equal(t, 1, first.QueuePosition)
	assert.Equal(t, "25-35 min", first.EstimatedTime)
	assert.Equal(t, model.StatusPending, first.Status)

	second := q.Submit(SubmitInput{Type: model.RequestFood, Details: "Nachos"})
	assert.Equal(t, 2, second.QueuePosition)
	assert.Equal(t, "40-50 min", second.EstimatedTime)

	cleaning := q.Submit(SubmitInput{Type: model.RequestCleaning})
	assert.Equal(t, 1, cleaning.QueuePosition, "positions are counted per type")
	assert.Equal(t, "15-25 min", cleaning.EstimatedTime)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmit_ETATable(t *testing.T) {
	cases := []struct {
		requestType model.RequestType
		position    int
		want        string
	}{
		{model.RequestFood, 1, "25-35 min"},
		{model.RequestFood, 3, "55-65 min"},
		{model.RequestCleaning, 2, "35-45 min"},
		{model.RequestQuestions, 1, "5-10 min"},
		{model.RequestQuestions, 3, "15-20 min"},
		{model.RequestProblem, 2, "25-35 min"},
		{model.RequestOther, 1, "10-20 min"},
		{model.RequestTowel, 2, "20-30 min"},
		{model.RequestOther, 0, "10-20 min"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, EstimateTime(tc.requestType, tc.position), "%s at %d", tc.requestType, tc.position)
	}
}

func TestSubmit_ClosedRequestsDoNotCount(t *testing.T) {
	q, _ := newTestQueue()
	first := q.Submit(SubmitInput{Type: model.RequestFood})
	q.Submit(SubmitInput{Type: model.RequestFood, Status: model.StatusInProgress})
	require.True(t, q.Cancel(first.ID))

	next := q.Submit(SubmitInput{Type: model.RequestFood})
	assert.Equal(t, 2, next.QueuePosition, "in-progress requests still hold a slot")
}

func TestSubmit_InitialStatus(t *testing.T) {
	q, _ := newTestQueue()
	waiter := q.Submit(SubmitInput{Type: model.RequestTowel, SunbedID: " A1 ", Status: model.StatusInProgress})
	assert.Equal(t, model.StatusInProgress, waiter.Status)
	assert.Equal(t, "A1", waiter.SunbedID)

	bogus := q.Submit(SubmitInput{Type: model.RequestTowel, Status: model.StatusDone})
	assert.Equal(t, model.StatusPending, bogus.Status)
	assert.Equal(t, 2, q.OpenCount())
}

func TestCancel_TerminalIsNoOp(t *testing.T) {
	q, _ := newTestQueue()
	r := q.Submit(SubmitInput{Type: model.RequestTowel})

	require.True(t, q.Resolve(r.ID))
	assert.False(t, q.Cancel(r.ID))
	got, _ := q.Get(r.ID)
	assert.Equal(t, model.StatusDone, got.Status)

	other := q.Submit(SubmitInput{Type: model.RequestTowel})
	require.True(t, q.Cancel(other.ID))
	assert.False(t, q.Cancel(other.ID))
	assert.False(t, q.Resolve(other.ID))
	got, _ = q.Get(other.ID)
	assert.Equal(t, model.StatusCancelled, got.Status)

	assert.False(t, q.Cancel(999))
}

func TestAutoResolve_AfterThresholdOnce(t *testing.T) {
	q, clock := newTestQueue()
	old := q.Submit(SubmitInput{Type: model.RequestTowel, Status: model.StatusInProgress})
	clock.Advance(20 * time.Second)
	young := q.Submit(SubmitInput{Type: model.RequestOther, Details: "Extra pillow", Status: model.StatusInProgress})
	cancelled := q.Submit(SubmitInput{Type: model.RequestTowel})
	q.Cancel(cancelled.ID)

	clock.Advance(10 * time.Second)
	assert.Empty(t, q.AutoResolve(30*time.Second), "exactly 30s old is not older than the threshold")

	clock.Advance(time.Second)
	resolved := q.AutoResolve(30 * time.Second)
	require.Len(t, resolved, 1)
	assert.Equal(t, old.ID, resolved[0].ID)
	assert.Equal(t, model.StatusDone, resolved[0].Status)

	assert.Empty(t, q.AutoResolve(30*time.Second))

	clock.Advance(30 * time.Second)
	resolved = q.AutoResolve(30 * time.Second)
	require.Len(t, resolved, 1)
	assert.Equal(t, young.ID, resolved[0].ID)
	assert.Equal(t, "Extra pillow completed by staff", CompletionMessage(resolved[0]))

	got, _ := q.Get(cancelled.ID)
	assert.Equal(t, model.StatusCancelled, got.Status)
	assert.Equal(t, 0, q.OpenCount())
}

func TestMerge_CombinesPendingQuestions(t *testing.T) {
	q, clock := newTestQueue()
	towel := q.Submit(SubmitInput{Type: model.RequestTowel})
	q1 := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "What time is breakfast?"})
	q2 := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "Is there a laundry service?"})
	q3 := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "Can I borrow an umbrella?"})
	clock.Advance(time.Minute)

	merged, err := q.Merge([]int{q3.ID, q1.ID})
	require.NoError(t, err)
	assert.Equal(t, "1. What time is breakfast?\n2. Can I borrow an umbrella?", merged.Details)
	assert.Equal(t, 1, merged.QueuePosition)
	assert.Equal(t, q1.EstimatedTime, merged.EstimatedTime)
	assert.Equal(t, model.StatusPending, merged.Status)
	assert.Equal(t, model.RequestQuestions, merged.Type)
	assert.Equal(t, clock.now, merged.Timestamp)

	_, ok := q.Get(q1.ID)
	assert.False(t, ok)
	_, ok = q.Get(q3.ID)
	assert.False(t, ok)

	var order []int
	for _, r := range q.Requests() {
		order = append(order, r.ID)
	}
	assert.Equal(t, []int{towel.ID, merged.ID, q2.ID}, order)
}

func TestMerge_RejectsWithoutChanges(t *testing.T) {
	q, _ := newTestQueue()
	q1 := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "one"})
	q2 := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "two"})
	problem := q.Submit(SubmitInput{Type: model.RequestProblem, Details: "leak"})
	waiting := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "three", Status: model.StatusInProgress})
	before := q.Requests()

	_, err := q.Merge([]int{q1.ID})
	assert.ErrorIs(t, err, ErrMergeTooFew)
	_, err = q.Merge(nil)
	assert.ErrorIs(t, err, ErrMergeTooFew)
	_, err = q.Merge([]int{q1.ID, problem.ID})
	assert.ErrorIs(t, err, ErrMergeIneligible)
	_, err = q.Merge([]int{q1.ID, waiting.ID})
	assert.ErrorIs(t, err, ErrMergeIneligible)
	_, err = q.Merge([]int{q1.ID, 404})
	assert.ErrorIs(t, err, ErrMergeIneligible)
	_, err = q.Merge([]int{q1.ID, q1.ID})
	assert.ErrorIs(t, err, ErrMergeIneligible)

	q.Cancel(q2.ID)
	_, err = q.Merge([]int{q1.ID, q2.ID})
	assert.ErrorIs(t, err, ErrMergeIneligible)

	after := q.Requests()
	require.Len(t, after, len(before))
	assert.Equal(t, before[0], after[0])
}

func TestRemove_OnlyTerminal(t *testing.T) {
	q, _ := newTestQueue()
	open := q.Submit(SubmitInput{Type: model.RequestTowel})
	done := q.Submit(SubmitInput{Type: model.RequestTowel})
	q.Resolve(done.ID)

	assert.False(t, q.Remove(open.ID))
	assert.True(t, q.Remove(done.ID))
	assert.False(t, q.Remove(done.ID))
	assert.Equal(t, 1, q.Len())
}

func TestClearHistory_KeepsOpenRequests(t *testing.T) {
	q, _ := newTestQueue()
	open := q.Submit(SubmitInput{Type: model.RequestTowel})
	done := q.Submit(SubmitInput{Type: model.RequestTowel})
	cancelled := q.Submit(SubmitInput{Type: model.RequestOther})
	q.Resolve(done.ID)
	q.Cancel(cancelled.ID)

	assert.Equal(t, 2, q.ClearHistory())
	requests := q.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, open.ID, requests[0].ID)
}

func TestPartitionAndFilters(t *testing.T) {
	q, _ := newTestQueue()
	pending := q.Submit(SubmitInput{Type: model.RequestQuestions, Details: "?"})
	working := q.Submit(SubmitInput{Type: model.RequestTowel, Status: model.StatusInProgress})
	done := q.Submit(SubmitInput{Type: model.RequestTowel})
	cancelled := q.Submit(SubmitInput{Type: model.RequestTowel})
	q.Resolve(done.ID)
	q.Cancel(cancelled.ID)

	buckets := Partition(q.Requests())
	assert.Len(t, buckets.InProgress, 2)
	assert.Len(t, buckets.Done, 1)
	assert.Len(t, buckets.Cancelled, 1)
	assert.Equal(t, 2, q.OpenCount())

	assert.Len(t, FilterRequests(q.Requests(), FilterAll), 4)
	assert.Len(t, FilterRequests(q.Requests(), FilterInProgress), 2)
	assert.Len(t, FilterRequests(q.Requests(), FilterDone), 1)
	assert.Len(t, FilterRequests(q.Requests(), FilterCancelled), 1)
	assert.Equal(t, "Completed", FilterDone.Label())

	p, _ := q.Get(pending.ID)
	w, _ := q.Get(working.ID)
	assert.True(t, ShowQueueBadge(p))
	assert.False(t, ShowQueueBadge(w))
}

func TestRequestLabel(t *testing.T) {
	assert.Equal(t, "Towel Request", RequestLabel(model.ServiceRequest{Type: model.RequestTowel}))
	assert.Equal(t, "Food & Drinks Order", RequestLabel(model.ServiceRequest{Type: model.RequestOrder}))
	assert.Equal(t, "Sun cream", RequestLabel(model.ServiceRequest{Type: model.RequestOther, Details: "Sun cream"}))
	assert.Equal(t, "Other Service", RequestLabel(model.ServiceRequest{Type: model.RequestOther}))
	assert.Equal(t, "Service Request", RequestLabel(model.ServiceRequest{Type: "spa"}))
	assert.Equal(t, "towel completed by staff", CompletionMessage(model.ServiceRequest{Type: model.RequestTowel}))
}
