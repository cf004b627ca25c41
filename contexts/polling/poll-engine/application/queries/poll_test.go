package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rankify/contexts/polling/poll-engine/adapters/memory"
	"rankify/contexts/polling/poll-engine/application/queries"
	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// countingCache wraps the in-memory ballot cache and records traffic.
type countingCache struct {
	store *memory.Store
	gets  int
	puts  int
}

func (c *countingCache) GetBallot(ctx context.Context, id entities.PollID) ([]string, bool, error) {
	c.gets++
	return c.store.GetBallot(ctx, id)
}

func (c *countingCache) PutBallot(ctx context.Context, id entities.PollID, options []string, ttl time.Duration) error {
	c.puts++
	return c.store.PutBallot(ctx, id, options, ttl)
}

func (c *countingCache) Invalidate(ctx context.Context, id entities.PollID) error {
	return c.store.Invalidate(ctx, id)
}

// brokenCache fails every operation to exercise degraded reads.
type brokenCache struct{}

func (brokenCache) GetBallot(context.Context, entities.PollID) ([]string, bool, error) {
	return nil, false, errors.New("cache unavailable")
}

func (brokenCache) PutBallot(context.Context, entities.PollID, []string, time.Duration) error {
	return errors.New("cache unavailable")
}

func (brokenCache) Invalidate(context.Context, entities.PollID) error {
	return errors.New("cache unavailable")
}

func seedPoll(t *testing.T, store *memory.Store, id entities.PollID, start, end *time.Time, created time.Time) {
	t.Helper()
	ballot, err := entities.NewBallotFromTexts([]string{"Pizza", "Sushi", "Pasta"})
	if err != nil {
		t.Fatalf("build ballot failed: %v", err)
	}
	schedule, err := entities.NewSchedule(start, end)
	if err != nil {
		t.Fatalf("build schedule failed: %v", err)
	}
	poll, err := entities.NewPoll(id, "Lunch", ballot, schedule, created)
	if err != nil {
		t.Fatalf("build poll failed: %v", err)
	}
	if _, err := store.Create(context.Background(), poll); err != nil {
		t.Fatalf("persist poll failed: %v", err)
	}
}

func TestPollDetailsProjectsDerivedState(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	seedPoll(t, store, "poll-1", &start, nil, now.Add(-24*time.Hour))

	q := queries.PollQueries{Polls: store, Clock: fixedClock{now: now}}
	details, err := q.PollDetails(context.Background(), "poll-1")
	if err != nil {
		t.Fatalf("poll details failed: %v", err)
	}
	if details.Title != "Lunch" {
		t.Fatalf("unexpected title %q", details.Title)
	}
	if details.State != entities.PollStateOngoing {
		t.Fatalf("expected ongoing, got %s", details.State)
	}
	if len(details.Options) != 3 || details.Options[0] != "Pizza" {
		t.Fatalf("unexpected options %v", details.Options)
	}
	if details.Start == nil || !details.Start.Equal(start) {
		t.Fatalf("unexpected start %v", details.Start)
	}
	if !details.Created.Equal(now.Add(-24 * time.Hour)) {
		t.Fatalf("unexpected created %v", details.Created)
	}
}

func TestPollDetailsUnknownPoll(t *testing.T) {
	q := queries.PollQueries{Polls: memory.NewStore()}

	_, err := q.PollDetails(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrPollNotFound) {
		t.Fatalf("expected poll not found, got %v", err)
	}
}

func TestBallotReadsThroughCache(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedPoll(t, store, "poll-1", nil, nil, now)
	cache := &countingCache{store: memory.NewStore()}

	q := queries.PollQueries{Polls: store, Cache: cache, Clock: fixedClock{now: now}}

	first, err := q.Ballot(context.Background(), "poll-1")
	if err != nil {
		t.Fatalf("ballot query failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("unexpected ballot %v", first)
	}
	if cache.puts != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.puts)
	}

	second, err := q.Ballot(context.Background(), "poll-1")
	if err != nil {
		t.Fatalf("cached ballot query failed: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("unexpected cached ballot %v", second)
	}
	if cache.puts != 1 {
		t.Fatalf("cache hit must not refill, puts %d", cache.puts)
	}
	if cache.gets != 2 {
		t.Fatalf("expected two cache lookups, got %d", cache.gets)
	}
}

func TestBallotSurvivesBrokenCache(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedPoll(t, store, "poll-1", nil, nil, now)

	q := queries.PollQueries{Polls: store, Cache: brokenCache{}, Clock: fixedClock{now: now}}

	options, err := q.Ballot(context.Background(), "poll-1")
	if err != nil {
		t.Fatalf("ballot query must degrade on cache failure, got %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("unexpected ballot %v", options)
	}
}

func TestBallotUnknownPoll(t *testing.T) {
	q := queries.PollQueries{Polls: memory.NewStore()}

	_, err := q.Ballot(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrPollNotFound) {
		t.Fatalf("expected poll not found, got %v", err)
	}
}
