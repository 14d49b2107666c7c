package gameserver

import (
	"time"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/gameserver/bossv1"
)

func bossViewOf(v *boss.InstanceView, now time.Time) *bossv1.BossView {
	inst, tmpl := v.Instance, v.Template
	remaining := max(inst.EndTime.Sub(now), 0)
	return &bossv1.BossView{
		InstanceId:       inst.ID,
		TemplateId:       tmpl.ID,
		Name:             tmpl.Name,
		Description:      tmpl.Description,
		Level:            int32(tmpl.Level),
		Rarity:           string(tmpl.Rarity),
		Weaknesses:       skillNames(tmpl.Weaknesses),
		CurrentHealth:    inst.CurrentHealth,
		MaxHealth:        tmpl.MaxHealth,
		IsDefeated:       inst.IsDefeated,
		StartTime:        formatTime(inst.StartTime),
		EndTime:          formatTime(inst.EndTime),
		RemainingSeconds: int64(remaining / time.Second),
	}
}

func attackResponseOf(r *boss.AttackResult) *bossv1.AttackResponse {
	return &bossv1.AttackResponse{
		Message:         r.Message,
		AttackId:        r.AttackID,
		InstanceId:      r.InstanceID,
		BossName:        r.BossName,
		Damage:          r.Damage,
		Critical:        r.Critical,
		HealthLoss:      int32(r.HealthLoss),
		NewPlayerHealth: int32(r.NewPlayerHealth),
		BossHealth:      r.BossHealth,
		BossMaxHealth:   r.BossMaxHealth,
		BossDefeated:    r.BossDefeated,
		Rewards:         rewardSummaryOf(r.Rewards),
	}
}

func rejectionResponseOf(r *boss.Rejection) *bossv1.AttackResponse {
	return &bossv1.AttackResponse{
		Rejected:         true,
		Reason:           string(r.Reason),
		RemainingSeconds: int32(r.RemainingSeconds),
		Message:          r.Error(),
	}
}

func rewardSummaryOf(s *boss.RewardSummary) *bossv1.RewardSummary {
	if s == nil {
		return nil
	}
	out := &bossv1.RewardSummary{
		InstanceId:  s.InstanceID,
		KillerId:    s.KillerID,
		TotalDamage: s.TotalDamage,
		Rewards:     make([]*bossv1.Reward, 0, len(s.Rewards)),
	}
	for _, r := range s.Rewards {
		m := &bossv1.Reward{
			PlayerId:        r.PlayerID,
			Username:        r.Username,
			Damage:          r.Damage,
			Share:           r.Share,
			Gold:            r.Gold,
			Exp:             r.Exp,
			KillerBonusGold: r.KillerBonusGold,
			KillerBonusExp:  r.KillerBonusExp,
		}
		for _, it := range r.Items {
			m.Items = append(m.Items, &bossv1.ItemGrant{ItemId: it.ItemID, Quantity: int32(it.Quantity)})
		}
		out.Rewards = append(out.Rewards, m)
	}
	return out
}

func leaderboardEntryOf(e boss.LeaderboardEntry) *bossv1.LeaderboardEntry {
	return &bossv1.LeaderboardEntry{
		Rank:        int32(e.Rank),
		PlayerId:    e.PlayerID,
		Username:    e.Username,
		Level:       int32(e.Level),
		TotalDamage: e.TotalDamage,
		Attacks:     int32(e.Attacks),
	}
}

func instanceSummaryOf(i *boss.Instance) *bossv1.InstanceSummary {
	s := &bossv1.InstanceSummary{
		InstanceId:    i.ID,
		TemplateId:    i.TemplateID,
		Name:          i.TemplateName,
		CurrentHealth: i.CurrentHealth,
		IsActive:      i.IsActive,
		IsDefeated:    i.IsDefeated,
		StartTime:     formatTime(i.StartTime),
		EndTime:       formatTime(i.EndTime),
	}
	if i.DefeatedBy != nil {
		s.DefeatedBy = *i.DefeatedBy
	}
	if i.DefeatedAt != nil {
		s.DefeatedAt = formatTime(*i.DefeatedAt)
	}
	return s
}

func dropRuleOf(d *boss.DropRule) *bossv1.DropRule {
	return &bossv1.DropRule{
		Id:          d.ID,
		TemplateId:  d.TemplateID,
		ItemId:      d.ItemID,
		DropRate:    d.DropRate,
		MinQuantity: int32(d.MinQuantity),
		MaxQuantity: int32(d.MaxQuantity),
		KillerOnly:  d.KillerOnly,
	}
}

func dropRuleFromProto(m *bossv1.DropRule) *boss.DropRule {
	return &boss.DropRule{
		ID:          m.GetId(),
		TemplateID:  m.GetTemplateId(),
		ItemID:      m.GetItemId(),
		DropRate:    m.GetDropRate(),
		MinQuantity: int(m.GetMinQuantity()),
		MaxQuantity: int(m.GetMaxQuantity()),
		KillerOnly:  m.GetKillerOnly(),
	}
}

func templateOf(t *boss.Template) *bossv1.BossTemplate {
	m := &bossv1.BossTemplate{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		MaxHealth:   t.MaxHealth,
		Attack:      int32(t.Attack),
		Defense:     int32(t.Defense),
		Level:       int32(t.Level),
		Weaknesses:  skillNames(t.Weaknesses),
		GoldReward:  t.GoldReward,
		ExpReward:   t.ExpReward,
		Rarity:      string(t.Rarity),
	}
	for i := range t.DropRules {
		m.DropRules = append(m.DropRules, dropRuleOf(&t.DropRules[i]))
	}
	return m
}

// templateFromProto converts the message, rejecting unknown weakness skills.
func templateFromProto(m *bossv1.BossTemplate) (*boss.Template, error) {
	t := &boss.Template{
		ID:          m.GetId(),
		Name:        m.GetName(),
		Description: m.GetDescription(),
		MaxHealth:   m.GetMaxHealth(),
		Attack:      int(m.GetAttack()),
		Defense:     int(m.GetDefense()),
		Level:       int(m.GetLevel()),
		GoldReward:  m.GetGoldReward(),
		ExpReward:   m.GetExpReward(),
		Rarity:      boss.Rarity(m.GetRarity()),
	}
	for _, raw := range m.GetWeaknesses() {
		s, err := character.ParseSkill(raw)
		if err != nil {
			return nil, err
		}
		t.Weaknesses = append(t.Weaknesses, s)
	}
	for _, d := range m.GetDropRules() {
		t.DropRules = append(t.DropRules, *dropRuleFromProto(d))
	}
	return t, nil
}

func settingsOf(s *boss.Settings) *bossv1.Settings {
	m := &bossv1.Settings{
		AutoSwitchEnabled:    s.AutoSwitchEnabled,
		AutoSwitchDelayHours: int32(s.AutoSwitchDelayHours),
		DefaultDurationHours: int32(s.DefaultDurationHours),
		SelectionMode:        string(s.SelectionMode),
	}
	if !s.UpdatedAt.IsZero() {
		m.UpdatedAt = formatTime(s.UpdatedAt)
	}
	return m
}

func settingsFromProto(m *bossv1.Settings) boss.Settings {
	return boss.Settings{
		AutoSwitchEnabled:    m.GetAutoSwitchEnabled(),
		AutoSwitchDelayHours: int(m.GetAutoSwitchDelayHours()),
		DefaultDurationHours: int(m.GetDefaultDurationHours()),
		SelectionMode:        boss.SelectionMode(m.GetSelectionMode()),
	}
}

func rotationResponseOf(res *boss.RotationResult, now time.Time) *bossv1.RunAutoSwitchCheckResponse {
	resp := &bossv1.RunAutoSwitchCheckResponse{Rotated: res.Rotated}
	if res.Previous != nil {
		resp.PreviousInstanceId = res.Previous.ID
	}
	if res.Next != nil {
		resp.Next = bossViewOf(res.Next, now)
	}
	return resp
}

func skillNames(skills []character.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, string(s))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
