package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/poll"
)

func TestComposeRandomPollClampsToAvailable(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune", "Arrival", "Her", "Tenet")

	composed, err := e.ComposeRandomPoll(ctx, testGroup, 15)
	if err != nil {
		t.Fatalf("ComposeRandomPoll: %v", err)
	}
	if len(composed.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(composed.Options))
	}
	if composed.Question != "What are we watching?" {
		t.Fatalf("question = %q", composed.Question)
	}
}

func TestComposeRandomPollNeedsTwoMovies(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune")

	if _, err := e.ComposeRandomPoll(ctx, testGroup, 3); !errors.Is(err, poll.ErrTooFewOptions) {
		t.Fatalf("1 movie = %v, want ErrTooFewOptions", err)
	}
}

func TestComposePollFromOrdinals(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune", "Arrival", "Her")

	composed, err := e.ComposePollFromOrdinals(ctx, testGroup, []int{3, 1})
	if err != nil {
		t.Fatalf("ComposePollFromOrdinals: %v", err)
	}
	if len(composed.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(composed.Options))
	}
	if composed.Options[0].Label != "Her" || composed.Options[1].Label != "Dune" {
		t.Fatalf("options should follow requested order: %+v", composed.Options)
	}
}

func TestComposePollFromOrdinalsLimits(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune", "Arrival", "Her")

	eleven := []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2}
	if _, err := e.ComposePollFromOrdinals(ctx, testGroup, eleven); !errors.Is(err, poll.ErrTooManyOptions) {
		t.Fatalf("11 ordinals = %v, want ErrTooManyOptions", err)
	}

	// Stale ordinals are dropped; one survivor is not enough to vote on.
	if _, err := e.ComposePollFromOrdinals(ctx, testGroup, []int{1, 9}); !errors.Is(err, poll.ErrTooFewOptions) {
		t.Fatalf("single survivor = %v, want ErrTooFewOptions", err)
	}
}

func TestComposeBasketPoll(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune", "Arrival", "Her", "Tenet")

	if _, err := e.BasketAdd(ctx, testGroup, alice, []int{1, 4}); err != nil {
		t.Fatalf("BasketAdd alice: %v", err)
	}
	if _, err := e.BasketAdd(ctx, testGroup, bob, []int{4, 2}); err != nil {
		t.Fatalf("BasketAdd bob: %v", err)
	}

	composed, err := e.ComposeBasketPoll(ctx, testGroup)
	if err != nil {
		t.Fatalf("ComposeBasketPoll: %v", err)
	}
	if len(composed.Options) != 3 {
		t.Fatalf("options = %d, want 3 (distinct ordinals 1,2,4)", len(composed.Options))
	}
	if composed.Options[0].Label != "Dune" || composed.Options[1].Label != "Arrival" || composed.Options[2].Label != "Tenet" {
		t.Fatalf("options = %+v", composed.Options)
	}
}

func TestComposeBasketPollEmptyBasket(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	mustAdd(t, e, "Dune", "Arrival")

	if _, err := e.ComposeBasketPoll(ctx, testGroup); !errors.Is(err, poll.ErrTooFewOptions) {
		t.Fatalf("empty basket = %v, want ErrTooFewOptions", err)
	}
}
