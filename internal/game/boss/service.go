package boss

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/dice"
)

// Config holds process-level combat settings. Rotation settings live in the
// store as Settings so admins can change them at runtime.
type Config struct {
	// AttackCooldown is the minimum time between two attacks by one player,
	// measured from the player's latest attack on any instance.
	AttackCooldown time.Duration
	// LeaderboardSize is the default number of leaderboard rows.
	LeaderboardSize int
	// SpawnAttempts bounds retries when a concurrent spawn wins the race.
	SpawnAttempts int
}

// DefaultConfig returns the standard combat configuration.
func DefaultConfig() Config {
	return Config{
		AttackCooldown:  5 * time.Minute,
		LeaderboardSize: 10,
		SpawnAttempts:   3,
	}
}

// InstanceView pairs an instance with its template for presentation.
type InstanceView struct {
	Instance *Instance
	Template *Template
}

// AttackResult is the outcome of a successful attack.
type AttackResult struct {
	AttackID        string
	InstanceID      int64
	BossName        string
	Damage          int64
	Critical        bool
	HealthLoss      int
	NewPlayerHealth int
	BossHealth      int64
	BossMaxHealth   int64
	BossDefeated    bool
	// Rewards is set only on the defeating attack.
	Rewards *RewardSummary
	Message string
}

// RotationResult reports what an automatic check did.
type RotationResult struct {
	Rotated  bool
	Previous *Instance
	Next     *InstanceView
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPublisher sets the receiver of committed boss events.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithConfig overrides DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// Service owns the boss lifecycle: lazy spawn, attacks, defeat with reward
// distribution, rotation, and the admin operations on templates and settings.
// It is safe for concurrent use; cross-request consistency comes from the
// Store's transactions.
type Service struct {
	store     Store
	src       dice.Source
	logger    *zap.Logger
	cfg       Config
	now       func() time.Time
	publisher Publisher
	spawns    singleflight.Group
}

// NewService creates a Service.
//
// Precondition: store, src, and logger must be non-nil.
func NewService(store Store, src dice.Source, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:     store,
		src:       src,
		logger:    logger,
		cfg:       DefaultConfig(),
		now:       time.Now,
		publisher: nopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.SpawnAttempts < 1 {
		s.cfg.SpawnAttempts = 1
	}
	return s
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// CurrentInstance returns the live instance, spawning one with RANDOM
// selection and the default duration when none is live.
//
// Postcondition: returns a live instance, or ErrNoTemplates when nothing can spawn.
func (s *Service) CurrentInstance(ctx context.Context) (*InstanceView, error) {
	var view *InstanceView
	err := s.store.InTx(ctx, func(tx Tx) error {
		inst, err := tx.ActiveInstance(ctx, false)
		if err != nil {
			return err
		}
		if !inst.Live(s.now()) {
			return ErrNoActiveInstance
		}
		view, err = s.viewOf(ctx, tx, inst)
		return err
	})
	if err == nil {
		return view, nil
	}
	if !errors.Is(err, ErrNoActiveInstance) {
		return nil, fmt.Errorf("reading current boss: %w", err)
	}

	// The spawn is shared by every waiting caller, so it must not inherit the
	// first caller's cancellation. Each caller still stops waiting on its own.
	ch := s.spawns.DoChan("lazy-spawn", func() (any, error) {
		return s.spawnLazily(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*InstanceView), nil
	}
}

// spawnLazily creates an instance when none is live. Losing a spawn race to
// another process is retried by re-reading the winner.
func (s *Service) spawnLazily(ctx context.Context) (*InstanceView, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.SpawnAttempts; attempt++ {
		var (
			view   *InstanceView
			events []Event
		)
		err := s.store.InTx(ctx, func(tx Tx) error {
			events = nil
			now := s.now()
			cur, err := tx.ActiveInstance(ctx, true)
			switch {
			case err == nil && cur.Live(now):
				view, err = s.viewOf(ctx, tx, cur)
				return err
			case err == nil:
				ev, err := s.deactivate(ctx, tx, cur, now)
				if err != nil {
					return err
				}
				events = append(events, ev)
			case !errors.Is(err, ErrNoActiveInstance):
				return err
			}

			settings, err := s.settings(ctx, tx)
			if err != nil {
				return err
			}
			tmpl, err := s.pick(ctx, tx, SelectRandom)
			if err != nil {
				return err
			}
			view, err = s.spawn(ctx, tx, tmpl, settings.DefaultDuration(), now)
			if err != nil {
				return err
			}
			events = append(events, spawnedEvent(view.Instance, now))
			return nil
		})
		if err == nil {
			s.publish(events...)
			return view, nil
		}
		if !errors.Is(err, ErrActiveInstanceExists) {
			return nil, fmt.Errorf("spawning boss: %w", err)
		}
		lastErr = err
		s.logger.Debug("lost spawn race, re-reading active instance", zap.Int("attempt", attempt+1))
	}
	return nil, fmt.Errorf("spawning boss: %w", lastErr)
}

// Attack resolves one hit by playerID using skill against the live instance.
//
// Rejections (*Rejection) leave every piece of state untouched. On the lethal
// hit the defeat transition and the reward payout commit in the same
// transaction as the damage; a reward failure rolls the whole attack back.
func (s *Service) Attack(ctx context.Context, playerID int64, skill character.Skill) (*AttackResult, error) {
	if !skill.Valid() {
		return nil, fmt.Errorf("%w: unknown skill %q", ErrInvalidAttack, skill)
	}

	var (
		res    *AttackResult
		events []Event
	)
	err := s.store.InTx(ctx, func(tx Tx) error {
		events = nil
		now := s.now()

		inst, err := tx.ActiveInstance(ctx, true)
		if errors.Is(err, ErrNoActiveInstance) {
			return reject(ReasonNoActiveBoss)
		}
		if err != nil {
			return err
		}
		if !inst.Live(now) {
			return reject(ReasonNoActiveBoss)
		}
		if inst.IsDefeated {
			return reject(ReasonAlreadyDefeated)
		}

		player, err := tx.GetPlayer(ctx, playerID, true)
		if err != nil {
			return err
		}
		if !player.Alive() {
			return reject(ReasonInsufficientHealth)
		}

		last, err := tx.LastActionAt(ctx, playerID)
		if err != nil {
			return err
		}
		if !last.IsZero() {
			if wait := s.cfg.AttackCooldown - now.Sub(last); wait > 0 {
				return cooldownRejection(wait)
			}
		}

		tmpl, err := tx.GetTemplate(ctx, inst.TemplateID)
		if err != nil {
			return err
		}
		bonus, err := PlayerBonus(ctx, tx, playerID)
		if err != nil {
			return err
		}
		skillLevel, err := tx.SkillLevel(ctx, playerID, skill)
		if err != nil {
			return err
		}

		hit := ResolveDamage(s.src, DamageInput{
			PlayerLevel: player.Level,
			SkillLevel:  skillLevel,
			Skill:       skill,
			Weak:        tmpl.WeakTo(skill),
			BossDefense: tmpl.Defense,
			Bonus:       bonus,
		})

		cost := HealthCost(s.src, player.MaxHealth, bonus)
		newHealth := max(player.Health-cost, 0)
		if err := tx.SetPlayerHealth(ctx, playerID, newHealth); err != nil {
			return err
		}

		if _, err := tx.InsertAction(ctx, &Action{
			InstanceID:  inst.ID,
			PlayerID:    playerID,
			Damage:      hit.Damage,
			Skill:       skill,
			IsCritical:  hit.Critical,
			PlayerLevel: player.Level,
			SkillLevel:  skillLevel,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		defeated := inst.applyDamage(hit.Damage, playerID, now)
		if err := tx.UpdateInstance(ctx, inst); err != nil {
			return err
		}

		res = &AttackResult{
			AttackID:        uuid.NewString(),
			InstanceID:      inst.ID,
			BossName:        tmpl.Name,
			Damage:          hit.Damage,
			Critical:        hit.Critical,
			HealthLoss:      player.Health - newHealth,
			NewPlayerHealth: newHealth,
			BossHealth:      inst.CurrentHealth,
			BossMaxHealth:   tmpl.MaxHealth,
			BossDefeated:    defeated,
		}
		events = append(events, Event{
			Kind:          EventAttacked,
			InstanceID:    inst.ID,
			TemplateName:  tmpl.Name,
			PlayerID:      playerID,
			AttackID:      res.AttackID,
			Damage:        hit.Damage,
			Critical:      hit.Critical,
			CurrentHealth: inst.CurrentHealth,
			At:            now,
		})

		if defeated {
			summary, err := distributeRewards(ctx, tx, s.src, tmpl, inst, playerID)
			if err != nil {
				return err
			}
			res.Rewards = summary
			events = append(events, Event{
				Kind:         EventDefeated,
				InstanceID:   inst.ID,
				TemplateName: tmpl.Name,
				PlayerID:     playerID,
				AttackID:     res.AttackID,
				At:           now,
			})
		}
		res.Message = attackMessage(res)
		return nil
	})
	if err != nil {
		if r, ok := AsRejection(err); ok {
			s.logger.Debug("attack rejected",
				zap.Int64("player_id", playerID),
				zap.String("reason", string(r.Reason)),
				zap.Int("remaining_seconds", r.RemainingSeconds),
			)
			return nil, r
		}
		return nil, fmt.Errorf("attacking boss: %w", err)
	}

	s.publish(events...)
	s.logger.Debug("attack resolved",
		zap.String("attack_id", res.AttackID),
		zap.Int64("player_id", playerID),
		zap.Int64("instance_id", res.InstanceID),
		zap.Int64("damage", res.Damage),
		zap.Bool("critical", res.Critical),
		zap.Int64("boss_health", res.BossHealth),
	)
	if res.BossDefeated {
		s.logger.Info("boss defeated",
			zap.Int64("instance_id", res.InstanceID),
			zap.String("boss", res.BossName),
			zap.Int64("killer_id", playerID),
			zap.Int("contributors", len(res.Rewards.Rewards)),
			zap.Int64("total_damage", res.Rewards.TotalDamage),
		)
	}
	return res, nil
}

func attackMessage(r *AttackResult) string {
	msg := fmt.Sprintf("You dealt %d damage to %s.", r.Damage, r.BossName)
	if r.Critical {
		msg = "Critical hit! " + msg
	}
	if r.BossDefeated {
		msg += fmt.Sprintf(" You landed the final blow and defeated %s!", r.BossName)
	}
	return msg
}

// Deactivate takes an instance out of rotation. No-op when already inactive.
func (s *Service) Deactivate(ctx context.Context, instanceID int64) error {
	var events []Event
	err := s.store.InTx(ctx, func(tx Tx) error {
		events = nil
		inst, err := tx.GetInstance(ctx, instanceID, true)
		if err != nil {
			return err
		}
		if !inst.IsActive {
			return nil
		}
		ev, err := s.deactivate(ctx, tx, inst, s.now())
		if err != nil {
			return err
		}
		events = append(events, ev)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deactivating instance %d: %w", instanceID, err)
	}
	s.publish(events...)
	return nil
}

// ForceSpawn replaces the current instance with a new one. templateID 0
// defers to the configured selection mode; durationHours <= 0 uses the
// configured default.
//
// Postcondition: returns ErrFightInProgress when an undefeated live instance exists.
func (s *Service) ForceSpawn(ctx context.Context, templateID int64, durationHours int) (*InstanceView, error) {
	var (
		view   *InstanceView
		events []Event
	)
	err := s.store.InTx(ctx, func(tx Tx) error {
		events = nil
		now := s.now()
		cur, err := tx.ActiveInstance(ctx, true)
		switch {
		case err == nil && cur.Attackable(now):
			return ErrFightInProgress
		case err == nil:
			ev, err := s.deactivate(ctx, tx, cur, now)
			if err != nil {
				return err
			}
			events = append(events, ev)
		case !errors.Is(err, ErrNoActiveInstance):
			return err
		}

		settings, err := s.settings(ctx, tx)
		if err != nil {
			return err
		}
		var tmpl *Template
		if templateID != 0 {
			tmpl, err = tx.GetTemplate(ctx, templateID)
		} else {
			tmpl, err = s.pick(ctx, tx, settings.SelectionMode)
		}
		if err != nil {
			return err
		}
		duration := settings.DefaultDuration()
		if durationHours > 0 {
			duration = time.Duration(durationHours) * time.Hour
		}
		view, err = s.spawn(ctx, tx, tmpl, duration, now)
		if err != nil {
			return err
		}
		events = append(events, spawnedEvent(view.Instance, now))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("force spawning boss: %w", err)
	}
	s.publish(events...)
	s.logger.Info("boss force spawned",
		zap.Int64("instance_id", view.Instance.ID),
		zap.String("boss", view.Template.Name),
		zap.Time("end_time", view.Instance.EndTime),
	)
	return view, nil
}

// RunAutoSwitchCheck rotates the current instance when it was defeated at
// least AutoSwitchDelayHours ago, or when it expired undefeated. Disabled
// auto switching makes this a no-op. Safe to call repeatedly.
func (s *Service) RunAutoSwitchCheck(ctx context.Context) (*RotationResult, error) {
	result := &RotationResult{}
	var events []Event
	err := s.store.InTx(ctx, func(tx Tx) error {
		events = nil
		*result = RotationResult{}
		now := s.now()
		settings, err := s.settings(ctx, tx)
		if err != nil {
			return err
		}
		if !settings.AutoSwitchEnabled {
			return nil
		}
		cur, err := tx.ActiveInstance(ctx, true)
		if errors.Is(err, ErrNoActiveInstance) {
			return nil
		}
		if err != nil {
			return err
		}
		if !rotationDue(cur, settings, now) {
			return nil
		}

		ev, err := s.deactivate(ctx, tx, cur, now)
		if err != nil {
			return err
		}
		events = append(events, ev)
		tmpl, err := s.pick(ctx, tx, settings.SelectionMode)
		if err != nil {
			return err
		}
		next, err := s.spawn(ctx, tx, tmpl, settings.DefaultDuration(), now)
		if err != nil {
			return err
		}
		events = append(events, spawnedEvent(next.Instance, now))
		*result = RotationResult{Rotated: true, Previous: cur, Next: next}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("running auto switch check: %w", err)
	}
	s.publish(events...)
	if result.Rotated {
		s.logger.Info("boss rotated",
			zap.Int64("previous_instance_id", result.Previous.ID),
			zap.Int64("next_instance_id", result.Next.Instance.ID),
			zap.String("next_boss", result.Next.Template.Name),
		)
	}
	return result, nil
}

func rotationDue(inst *Instance, settings *Settings, now time.Time) bool {
	if inst.IsDefeated {
		return inst.DefeatedAt != nil && !inst.DefeatedAt.Add(settings.AutoSwitchDelay()).After(now)
	}
	return inst.Expired(now)
}

// Leaderboard ranks contributors to instanceID by total damage. instanceID 0
// means the current active instance; with none active the board is empty.
// limit <= 0 uses the configured leaderboard size.
func (s *Service) Leaderboard(ctx context.Context, instanceID int64, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardSize
	}
	var entries []LeaderboardEntry
	err := s.store.InTx(ctx, func(tx Tx) error {
		id := instanceID
		if id == 0 {
			inst, err := tx.ActiveInstance(ctx, false)
			if errors.Is(err, ErrNoActiveInstance) {
				return nil
			}
			if err != nil {
				return err
			}
			id = inst.ID
		} else if _, err := tx.GetInstance(ctx, id, false); err != nil {
			return err
		}
		cs, err := tx.Contributions(ctx, id, limit)
		if err != nil {
			return err
		}
		entries = Rank(cs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	return entries, nil
}

// Cooldown returns how long playerID must wait before attacking; zero when ready.
func (s *Service) Cooldown(ctx context.Context, playerID int64) (time.Duration, error) {
	var wait time.Duration
	err := s.store.InTx(ctx, func(tx Tx) error {
		last, err := tx.LastActionAt(ctx, playerID)
		if err != nil || last.IsZero() {
			return err
		}
		wait = max(s.cfg.AttackCooldown-s.now().Sub(last), 0)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reading cooldown for player %d: %w", playerID, err)
	}
	return wait, nil
}

// RecentInstances lists the latest instances, newest first.
func (s *Service) RecentInstances(ctx context.Context, limit int) ([]*Instance, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardSize
	}
	var out []*Instance
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.ListRecentInstances(ctx, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing recent instances: %w", err)
	}
	return out, nil
}

func (s *Service) viewOf(ctx context.Context, tx Tx, inst *Instance) (*InstanceView, error) {
	tmpl, err := tx.GetTemplate(ctx, inst.TemplateID)
	if err != nil {
		return nil, err
	}
	return &InstanceView{Instance: inst, Template: tmpl}, nil
}

func (s *Service) pick(ctx context.Context, tx Tx, mode SelectionMode) (*Template, error) {
	templates, err := tx.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return SelectTemplate(mode, templates, s.src)
}

// spawn inserts a fresh full-health instance of tmpl.
//
// Precondition: no other instance is active within tx.
func (s *Service) spawn(ctx context.Context, tx Tx, tmpl *Template, duration time.Duration, now time.Time) (*InstanceView, error) {
	inst, err := tx.InsertInstance(ctx, &Instance{
		TemplateID:    tmpl.ID,
		TemplateName:  tmpl.Name,
		CurrentHealth: tmpl.MaxHealth,
		IsActive:      true,
		StartTime:     now,
		EndTime:       now.Add(duration),
	})
	if err != nil {
		return nil, err
	}
	return &InstanceView{Instance: inst, Template: tmpl}, nil
}

func (s *Service) deactivate(ctx context.Context, tx Tx, inst *Instance, now time.Time) (Event, error) {
	inst.IsActive = false
	if err := tx.UpdateInstance(ctx, inst); err != nil {
		return Event{}, err
	}
	return Event{
		Kind:          EventDeactivated,
		InstanceID:    inst.ID,
		TemplateName:  inst.TemplateName,
		CurrentHealth: inst.CurrentHealth,
		At:            now,
	}, nil
}

// settings returns the stored settings, creating the defaults on first use.
func (s *Service) settings(ctx context.Context, tx Tx) (*Settings, error) {
	st, err := tx.GetSettings(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}
	def := DefaultSettings()
	def.UpdatedAt = s.now()
	if err := tx.SaveSettings(ctx, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *Service) publish(events ...Event) {
	for _, ev := range events {
		s.publisher.Publish(ev)
	}
}

func spawnedEvent(inst *Instance, now time.Time) Event {
	return Event{
		Kind:          EventSpawned,
		InstanceID:    inst.ID,
		TemplateName:  inst.TemplateName,
		CurrentHealth: inst.CurrentHealth,
		At:            now,
	}
}
