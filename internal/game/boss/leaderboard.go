package boss

import "sort"

// LeaderboardEntry is one ranked row of a damage leaderboard.
type LeaderboardEntry struct {
	Rank int
	Contribution
}

// Aggregate groups actions by player and sums their damage.
//
// Postcondition: result is ordered by TotalDamage descending, ties by PlayerID
// ascending; Username and Level are left for the caller to fill.
func Aggregate(actions []*Action) []Contribution {
	byPlayer := make(map[int64]*Contribution)
	for _, a := range actions {
		c, ok := byPlayer[a.PlayerID]
		if !ok {
			c = &Contribution{PlayerID: a.PlayerID}
			byPlayer[a.PlayerID] = c
		}
		c.TotalDamage += a.Damage
		c.Attacks++
	}

	out := make([]Contribution, 0, len(byPlayer))
	for _, c := range byPlayer {
		out = append(out, *c)
	}
	SortContributions(out)
	return out
}

// SortContributions orders cs by TotalDamage descending, then PlayerID.
func SortContributions(cs []Contribution) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].TotalDamage != cs[j].TotalDamage {
			return cs[i].TotalDamage > cs[j].TotalDamage
		}
		return cs[i].PlayerID < cs[j].PlayerID
	})
}

// Rank numbers already-ordered contributions starting at 1.
func Rank(cs []Contribution) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(cs))
	for i, c := range cs {
		out[i] = LeaderboardEntry{Rank: i + 1, Contribution: c}
	}
	return out
}
