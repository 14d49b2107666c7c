package boss

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/idlerealm/worldboss/internal/game/dice"
)

// killerBonusPercent is the flat share of template rewards given to the killer.
const killerBonusPercent = 20

// ItemGrant is one successful drop roll.
type ItemGrant struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Reward is what one contributing player receives from a kill.
type Reward struct {
	PlayerID        int64       `json:"player_id"`
	Username        string      `json:"username"`
	Damage          int64       `json:"damage"`
	Share           float64     `json:"share"`
	Gold            int64       `json:"gold"`
	Exp             int64       `json:"exp"`
	KillerBonusGold int64       `json:"killer_bonus_gold,omitempty"`
	KillerBonusExp  int64       `json:"killer_bonus_exp,omitempty"`
	Items           []ItemGrant `json:"items,omitempty"`
}

// TotalGold returns the proportional gold plus any killer bonus.
func (r *Reward) TotalGold() int64 { return r.Gold + r.KillerBonusGold }

// TotalExp returns the proportional exp plus any killer bonus.
func (r *Reward) TotalExp() int64 { return r.Exp + r.KillerBonusExp }

// RewardSummary is the full payout of one defeated instance.
type RewardSummary struct {
	InstanceID  int64    `json:"instance_id"`
	KillerID    int64    `json:"killer_id"`
	TotalDamage int64    `json:"total_damage"`
	Rewards     []Reward `json:"rewards"`
}

// For returns the reward of playerID, or nil if the player did not contribute.
func (s *RewardSummary) For(playerID int64) *Reward {
	for i := range s.Rewards {
		if s.Rewards[i].PlayerID == playerID {
			return &s.Rewards[i]
		}
	}
	return nil
}

// ComputeRewards splits the template's gold and exp across contributions by
// damage share (floored), adds the killer bonus, and rolls every drop rule
// independently for every eligible contributor.
//
// Drop rolls happen rule by rule, contributor by contributor in the order of
// contributions: one Float64 (success iff draw <= rate), then on success one
// Intn for the quantity.
//
// Precondition: contributions come from Contributions (ordered) and include killerID.
// Postcondition: sum of Gold over Rewards <= t.GoldReward; likewise for Exp.
func ComputeRewards(src dice.Source, t *Template, instanceID int64, contributions []Contribution, killerID int64) RewardSummary {
	summary := RewardSummary{InstanceID: instanceID, KillerID: killerID}
	for _, c := range contributions {
		summary.TotalDamage += c.TotalDamage
	}

	summary.Rewards = make([]Reward, 0, len(contributions))
	for _, c := range contributions {
		r := Reward{PlayerID: c.PlayerID, Username: c.Username, Damage: c.TotalDamage}
		if summary.TotalDamage > 0 {
			r.Share = float64(c.TotalDamage) / float64(summary.TotalDamage)
			r.Gold = proportion(t.GoldReward, c.TotalDamage, summary.TotalDamage)
			r.Exp = proportion(t.ExpReward, c.TotalDamage, summary.TotalDamage)
		}
		if c.PlayerID == killerID {
			r.KillerBonusGold = proportion(t.GoldReward, killerBonusPercent, 100)
			r.KillerBonusExp = proportion(t.ExpReward, killerBonusPercent, 100)
		}
		summary.Rewards = append(summary.Rewards, r)
	}

	for _, rule := range t.DropRules {
		for i := range summary.Rewards {
			r := &summary.Rewards[i]
			if rule.KillerOnly && r.PlayerID != killerID {
				continue
			}
			if !dice.Chance(src, rule.DropRate) {
				continue
			}
			r.Items = append(r.Items, ItemGrant{
				ItemID:   rule.ItemID,
				Quantity: dice.Between(src, rule.MinQuantity, rule.MaxQuantity),
			})
		}
	}
	return summary
}

// proportion returns floor(amount * part / whole) using a 128-bit intermediate
// product, so it is exact for every int64 amount.
//
// Precondition: amount >= 0, 0 <= part <= whole, whole > 0.
func proportion(amount, part, whole int64) int64 {
	if amount <= 0 || part <= 0 || whole <= 0 {
		return 0
	}
	if part >= whole {
		return amount
	}
	hi, lo := bits.Mul64(uint64(amount), uint64(part))
	// hi < whole because part < whole, so Div64 cannot overflow.
	q, _ := bits.Div64(hi, lo, uint64(whole))
	return int64(q)
}

// distributeRewards computes and applies the payout for a defeated instance
// through tx. Any failure aborts the caller's transaction.
func distributeRewards(ctx context.Context, tx Tx, src dice.Source, t *Template, inst *Instance, killerID int64) (*RewardSummary, error) {
	contributions, err := tx.Contributions(ctx, inst.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("loading contributions for instance %d: %w", inst.ID, err)
	}
	summary := ComputeRewards(src, t, inst.ID, contributions, killerID)
	for _, r := range summary.Rewards {
		if gold, exp := r.TotalGold(), r.TotalExp(); gold > 0 || exp > 0 {
			if err := tx.GrantRewards(ctx, r.PlayerID, gold, exp); err != nil {
				return nil, fmt.Errorf("granting rewards to player %d: %w", r.PlayerID, err)
			}
		}
		for _, it := range r.Items {
			if err := tx.AddItem(ctx, r.PlayerID, it.ItemID, it.Quantity); err != nil {
				return nil, fmt.Errorf("granting %dx %s to player %d: %w", it.Quantity, it.ItemID, r.PlayerID, err)
			}
		}
	}
	return &summary, nil
}
