package engine

import (
	"context"

	"github.com/danchopon/FeetForTarantino/internal/basket"
)

// BasketAdd records the participant's ordinal selections. Validation is
// all-or-nothing; the result partitions new entries from repeats.
func (e *Engine) BasketAdd(ctx context.Context, groupID int64, p Participant, ordinals []int) (*basket.AddResult, error) {
	result, err := e.basket.Add(ctx, groupID, p.ID, p.Name, ordinals)
	if err != nil {
		return nil, err
	}
	e.logger.Info("basket add", "group", groupID, "by", p.Name,
		"added", len(result.Added), "repeats", len(result.AlreadyPresent))
	return result, nil
}

// BasketRemove deletes the listed ordinals for the participant, or all of
// their entries when none are given.
func (e *Engine) BasketRemove(ctx context.Context, groupID int64, p Participant, ordinals []int) (int64, error) {
	removed, err := e.basket.Remove(ctx, groupID, p.ID, ordinals)
	if err != nil {
		return 0, err
	}
	e.logger.Info("basket remove", "group", groupID, "by", p.Name, "removed", removed)
	return removed, nil
}

// BasketClearGroup wipes every participant's entries.
func (e *Engine) BasketClearGroup(ctx context.Context, groupID int64, p Participant) (int64, error) {
	removed, err := e.basket.ClearGroup(ctx, groupID)
	if err != nil {
		return 0, err
	}
	e.logger.Info("basket cleared", "group", groupID, "by", p.Name, "removed", removed)
	return removed, nil
}

// BasketMine lists the participant's ordinals, ascending.
func (e *Engine) BasketMine(ctx context.Context, groupID int64, p Participant) ([]int, error) {
	return e.basket.ListMine(ctx, groupID, p.ID)
}

// BasketAll lists every participant's selections, participants by name.
func (e *Engine) BasketAll(ctx context.Context, groupID int64) ([]basket.ParticipantSelections, error) {
	return e.basket.ListAll(ctx, groupID)
}
