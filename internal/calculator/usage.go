package calculator

import (
	"math/big"

	"github.com/mmynk/shuttlecash/internal/models"
)

// PlayerUsage is one player's attributed shuttlecock total for a day.
type PlayerUsage struct {
	PlayerID string

	// Quantity is the exact sum of the player's equal shares.
	Quantity *big.Rat

	// Sessions is the number of sessions the player appeared in.
	Sessions int
}

// AggregateUsage attributes each session's shuttlecocks to its players for the
// given date and sums them per player.
//
// Algorithm:
//   - For each session on date: every player gets quantity / len(players)
//   - Shares are exact rationals, so the sum over all players equals the sum of
//     session quantities
//   - Players are returned in order of first appearance
//
// Sessions with no players are assumed rejected upstream and contribute nothing.
func AggregateUsage(date string, sessions []models.UsageSession) []PlayerUsage {
	index := make(map[string]int)
	var out []PlayerUsage

	for _, s := range sessions {
		if s.Date != date || len(s.PlayerIDs) == 0 {
			continue
		}

		share := big.NewRat(s.Quantity, int64(len(s.PlayerIDs)))
		for _, id := range s.PlayerIDs {
			i, ok := index[id]
			if !ok {
				i = len(out)
				index[id] = i
				out = append(out, PlayerUsage{PlayerID: id, Quantity: new(big.Rat)})
			}
			out[i].Quantity.Add(out[i].Quantity, share)
			out[i].Sessions++
		}
	}

	return out
}

// TotalQuantity sums attributed quantities.
func TotalQuantity(usage []PlayerUsage) *big.Rat {
	total := new(big.Rat)
	for _, u := range usage {
		total.Add(total, u.Quantity)
	}
	return total
}
