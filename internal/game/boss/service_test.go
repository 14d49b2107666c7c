package boss_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/dice"
	"github.com/idlerealm/worldboss/internal/game/inventory"
	"github.com/idlerealm/worldboss/internal/storage/memory"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recorder struct {
	mu     sync.Mutex
	events []boss.Event
}

func (r *recorder) Publish(ev boss.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []boss.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]boss.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

type fixture struct {
	store  *memory.Store
	svc    *boss.Service
	clock  *clock
	events *recorder
}

func newFixture(t *testing.T, src dice.Source) *fixture {
	t.Helper()
	return newFixtureWithStore(t, memory.NewStore(), src, nil)
}

// newFixtureWithStore builds a service over wrap(store) when wrap is non-nil.
func newFixtureWithStore(t *testing.T, store *memory.Store, src dice.Source, wrap func(boss.Store) boss.Store) *fixture {
	t.Helper()
	require.NoError(t, store.RegisterItems(
		&inventory.Item{ID: "ore", Name: "Iron Ore"},
		&inventory.Item{ID: "crown", Name: "Golem Crown"},
	))
	f := &fixture{
		store:  store,
		clock:  &clock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)},
		events: &recorder{},
	}
	var bs boss.Store = store
	if wrap != nil {
		bs = wrap(store)
	}
	f.svc = boss.NewService(bs, src, zaptest.NewLogger(t),
		boss.WithClock(f.clock.Now),
		boss.WithPublisher(f.events),
	)
	return f
}

func (f *fixture) template(t *testing.T, tmpl boss.Template) *boss.Template {
	t.Helper()
	if tmpl.Level == 0 {
		tmpl.Level = 1
	}
	if tmpl.Rarity == "" {
		tmpl.Rarity = boss.RarityCommon
	}
	out, err := f.svc.CreateTemplate(context.Background(), &tmpl)
	require.NoError(t, err)
	return out
}

func (f *fixture) player(t *testing.T, name string, level, health int, skills map[character.Skill]int) *character.Player {
	t.Helper()
	ctx := context.Background()
	p, err := f.store.PutPlayer(ctx, &character.Player{
		Username: name, Level: level, Health: health, MaxHealth: 100,
	})
	require.NoError(t, err)
	for skill, lvl := range skills {
		require.NoError(t, f.store.SetSkillLevel(ctx, p.ID, skill, lvl))
	}
	return p
}

func (f *fixture) reload(t *testing.T, id int64) *character.Player {
	t.Helper()
	p, err := f.store.Player(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) spawn(t *testing.T) *boss.InstanceView {
	t.Helper()
	v, err := f.svc.CurrentInstance(context.Background())
	require.NoError(t, err)
	return v
}

func requireRejection(t *testing.T, err error, reason boss.RejectReason) *boss.Rejection {
	t.Helper()
	require.Error(t, err)
	r, ok := boss.AsRejection(err)
	require.True(t, ok, "expected rejection, got %v", err)
	require.Equal(t, reason, r.Reason)
	return r
}

var bigBoss = boss.Template{Name: "Mountain", MaxHealth: 1_000_000, GoldReward: 100, ExpReward: 100}

func TestCurrentInstance_NoTemplates(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	_, err := f.svc.CurrentInstance(context.Background())
	assert.ErrorIs(t, err, boss.ErrNoTemplates)
}

func TestCurrentInstance_LazySpawnIsStable(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	tmpl := f.template(t, boss.Template{Name: "Golem", MaxHealth: 500})

	v1 := f.spawn(t)
	assert.Equal(t, tmpl.ID, v1.Template.ID)
	assert.Equal(t, int64(500), v1.Instance.CurrentHealth)
	assert.True(t, v1.Instance.IsActive)
	assert.Equal(t, 24*time.Hour, v1.Instance.EndTime.Sub(v1.Instance.StartTime))

	v2 := f.spawn(t)
	assert.Equal(t, v1.Instance.ID, v2.Instance.ID)
	assert.Equal(t, []boss.EventKind{boss.EventSpawned}, f.events.kinds())
}

func TestCurrentInstance_ConcurrentCallersShareOneSpawn(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	f.template(t, boss.Template{Name: "Golem", MaxHealth: 500})

	ids := make([]int64, 16)
	var g errgroup.Group
	for i := range ids {
		g.Go(func() error {
			v, err := f.svc.CurrentInstance(context.Background())
			if err != nil {
				return err
			}
			ids[i] = v.Instance.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	recent, err := f.svc.RecentInstances(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

// gatedStore parks transaction number hold until release is closed and
// closes reader when the transaction after it starts. Zero hold disarms it.
type gatedStore struct {
	boss.Store
	calls   atomic.Int32
	hold    int32
	held    chan struct{}
	reader  chan struct{}
	release chan struct{}
}

func (g *gatedStore) InTx(ctx context.Context, fn func(boss.Tx) error) error {
	n := g.calls.Add(1)
	if g.hold == 0 {
		return g.Store.InTx(ctx, fn)
	}
	switch n {
	case g.hold:
		close(g.held)
		<-g.release
	case g.hold + 1:
		close(g.reader)
	}
	return g.Store.InTx(ctx, fn)
}

func TestCurrentInstance_CancelledCallerDoesNotAbortSharedSpawn(t *testing.T) {
	gate := &gatedStore{
		held:    make(chan struct{}),
		reader:  make(chan struct{}),
		release: make(chan struct{}),
	}
	f := newFixtureWithStore(t, memory.NewStore(), dice.NewScripted(0.5), func(s boss.Store) boss.Store {
		gate.Store = s
		return gate
	})
	f.template(t, boss.Template{Name: "Golem", MaxHealth: 500})
	// Next transaction is the first caller's read; the one after is its spawn.
	gate.hold = gate.calls.Load() + 2

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := f.svc.CurrentInstance(ctx)
		first <- err
	}()
	<-gate.held

	var g errgroup.Group
	var second *boss.InstanceView
	g.Go(func() error {
		var err error
		second, err = f.svc.CurrentInstance(context.Background())
		return err
	})
	<-gate.reader

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)
	close(gate.release)

	require.NoError(t, g.Wait())
	require.NotNil(t, second)
	assert.True(t, second.Instance.IsActive)

	recent, err := f.svc.RecentInstances(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, second.Instance.ID, recent[0].ID)
}

func TestAttack_ScenarioA(t *testing.T) {
	// factor 0.8, no crit, health cost 10%
	f := newFixture(t, dice.NewScripted(0, 0.5, 0))
	f.template(t, boss.Template{
		Name: "Pebble", MaxHealth: 100, Defense: 0, GoldReward: 1000, ExpReward: 300,
		Weaknesses: []character.Skill{character.SkillMining},
	})
	a := f.player(t, "alice", 10, 100, map[character.Skill]int{character.SkillMining: 10})
	f.spawn(t)

	res, err := f.svc.Attack(context.Background(), a.ID, character.SkillMining)
	require.NoError(t, err)
	assert.Equal(t, int64(600), res.Damage)
	assert.False(t, res.Critical)
	assert.True(t, res.BossDefeated)
	assert.Zero(t, res.BossHealth)
	assert.Equal(t, 10, res.HealthLoss)
	assert.Equal(t, 90, res.NewPlayerHealth)
	assert.NotEmpty(t, res.AttackID)
	assert.Contains(t, res.Message, "defeated")

	require.NotNil(t, res.Rewards)
	require.Len(t, res.Rewards.Rewards, 1)
	assert.Equal(t, int64(1200), res.Rewards.For(a.ID).TotalGold())
	assert.Equal(t, int64(360), res.Rewards.For(a.ID).TotalExp())

	recent, err := f.svc.RecentInstances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.NotNil(t, recent[0].DefeatedBy)
	assert.Equal(t, a.ID, *recent[0].DefeatedBy)
	assert.True(t, recent[0].IsDefeated)
	assert.True(t, recent[0].IsActive, "defeated instance stays active until rotated")

	got := f.reload(t, a.ID)
	assert.Equal(t, int64(1200), got.Gold)
	assert.Equal(t, int64(360), got.Experience)
	assert.Equal(t, 90, got.Health)

	assert.Equal(t, []boss.EventKind{boss.EventSpawned, boss.EventAttacked, boss.EventDefeated}, f.events.kinds())
}

func TestAttack_DamageAccumulates(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0, 0.5, 0, 0, 0.5, 0))
	f.template(t, bigBoss)
	a := f.player(t, "alice", 2, 100, nil)
	b := f.player(t, "bob", 4, 100, nil)
	f.spawn(t)

	// skill level 1 -> base = level*5; factor 0.8
	ra, err := f.svc.Attack(context.Background(), a.ID, character.SkillCombat)
	require.NoError(t, err)
	assert.Equal(t, int64(8), ra.Damage)
	rb, err := f.svc.Attack(context.Background(), b.ID, character.SkillCombat)
	require.NoError(t, err)
	assert.Equal(t, int64(16), rb.Damage)
	assert.Equal(t, int64(1_000_000-24), rb.BossHealth)
	assert.False(t, rb.BossDefeated)
	assert.Nil(t, rb.Rewards)
}

func TestAttack_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("no active boss", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		p := f.player(t, "alice", 1, 100, nil)
		_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
		requireRejection(t, err, boss.ReasonNoActiveBoss)
		assert.ErrorIs(t, err, boss.ErrNoActiveBoss)
	})

	t.Run("insufficient health", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		p := f.player(t, "alice", 1, 0, nil)
		f.spawn(t)
		_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
		requireRejection(t, err, boss.ReasonInsufficientHealth)
		assert.Equal(t, 0, f.store.ActionCount())
	})

	t.Run("cooldown", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		p := f.player(t, "alice", 1, 100, nil)
		f.spawn(t)

		_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
		require.NoError(t, err)
		before := f.reload(t, p.ID)

		f.clock.Advance(time.Minute)
		_, err = f.svc.Attack(ctx, p.ID, character.SkillMining)
		r := requireRejection(t, err, boss.ReasonCooldown)
		assert.Equal(t, 240, r.RemainingSeconds)
		assert.Equal(t, before.Health, f.reload(t, p.ID).Health, "rejection does not cost health")
		assert.Equal(t, 1, f.store.ActionCount())

		wait, err := f.svc.Cooldown(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 4*time.Minute, wait)

		f.clock.Advance(4 * time.Minute)
		_, err = f.svc.Attack(ctx, p.ID, character.SkillMining)
		require.NoError(t, err)
	})

	t.Run("boss already defeated", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, boss.Template{Name: "Twig", MaxHealth: 1})
		a := f.player(t, "alice", 1, 100, nil)
		b := f.player(t, "bob", 1, 100, nil)
		f.spawn(t)

		res, err := f.svc.Attack(ctx, a.ID, character.SkillMining)
		require.NoError(t, err)
		require.True(t, res.BossDefeated)

		_, err = f.svc.Attack(ctx, b.ID, character.SkillMining)
		requireRejection(t, err, boss.ReasonAlreadyDefeated)
		assert.Equal(t, 100, f.reload(t, b.ID).Health)
	})

	t.Run("expired instance", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		p := f.player(t, "alice", 1, 100, nil)
		old := f.spawn(t)

		f.clock.Advance(24 * time.Hour)
		_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
		requireRejection(t, err, boss.ReasonNoActiveBoss)

		fresh := f.spawn(t)
		assert.NotEqual(t, old.Instance.ID, fresh.Instance.ID)
		recent, err := f.svc.RecentInstances(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.False(t, recent[1].IsActive)
		assert.Equal(t, []boss.EventKind{boss.EventSpawned, boss.EventDeactivated, boss.EventSpawned}, f.events.kinds())
	})

	t.Run("unknown skill", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		_, err := f.svc.Attack(ctx, 1, "ALCHEMY")
		assert.ErrorIs(t, err, boss.ErrInvalidAttack)
	})

	t.Run("unknown player", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		f.spawn(t)
		_, err := f.svc.Attack(ctx, 404, character.SkillMining)
		assert.ErrorIs(t, err, character.ErrPlayerNotFound)
	})
}

func TestAttack_HealthClampsAtZero(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	f.template(t, bigBoss)
	p := f.player(t, "alice", 1, 3, nil)
	f.spawn(t)

	res, err := f.svc.Attack(context.Background(), p.ID, character.SkillMining)
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewPlayerHealth)
	assert.Equal(t, 3, res.HealthLoss)
}

func TestAttack_ConcurrentLethalHitsRewardOnce(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	f.template(t, boss.Template{Name: "Twig", MaxHealth: 1, GoldReward: 1000, ExpReward: 100})
	players := []*character.Player{
		f.player(t, "alice", 5, 100, nil),
		f.player(t, "bob", 5, 100, nil),
		f.player(t, "carol", 5, 100, nil),
	}
	f.spawn(t)

	results := make([]*boss.AttackResult, len(players))
	errs := make([]error, len(players))
	var g errgroup.Group
	for i, p := range players {
		g.Go(func() error {
			results[i], errs[i] = f.svc.Attack(context.Background(), p.ID, character.SkillCombat)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners := 0
	var killer int64
	for i := range players {
		if errs[i] == nil {
			require.True(t, results[i].BossDefeated)
			require.NotNil(t, results[i].Rewards)
			winners++
			killer = players[i].ID
			continue
		}
		requireRejection(t, errs[i], boss.ReasonAlreadyDefeated)
	}
	require.Equal(t, 1, winners)

	var totalGold int64
	for _, p := range players {
		got := f.reload(t, p.ID)
		totalGold += got.Gold
		if p.ID != killer {
			assert.Zero(t, got.Gold)
			assert.Equal(t, 100, got.Health)
		}
	}
	assert.Equal(t, int64(1200), totalGold)
	assert.Equal(t, 1, f.store.ActionCount())
}

type failingTx struct {
	boss.Tx
	err error
}

func (f failingTx) AddItem(context.Context, int64, string, int) error { return f.err }

type failingStore struct {
	boss.Store
	err error
}

func (f failingStore) InTx(ctx context.Context, fn func(boss.Tx) error) error {
	return f.Store.InTx(ctx, func(tx boss.Tx) error {
		return fn(failingTx{Tx: tx, err: f.err})
	})
}

func TestAttack_RewardFailureRollsBackEverything(t *testing.T) {
	disk := errors.New("inventory write failed")
	f := newFixtureWithStore(t, memory.NewStore(), dice.NewScripted(0.5), func(s boss.Store) boss.Store {
		return failingStore{Store: s, err: disk}
	})
	f.template(t, boss.Template{
		Name: "Twig", MaxHealth: 1, GoldReward: 1000, ExpReward: 100,
		DropRules: []boss.DropRule{{ItemID: "ore", DropRate: 1, MinQuantity: 1, MaxQuantity: 1}},
	})
	p := f.player(t, "alice", 5, 100, nil)
	before := f.spawn(t)

	_, err := f.svc.Attack(context.Background(), p.ID, character.SkillCombat)
	require.Error(t, err)
	assert.ErrorIs(t, err, disk)
	_, isRejection := boss.AsRejection(err)
	assert.False(t, isRejection)

	after := f.spawn(t)
	assert.Equal(t, before.Instance.ID, after.Instance.ID)
	assert.Equal(t, int64(1), after.Instance.CurrentHealth)
	assert.False(t, after.Instance.IsDefeated)

	got := f.reload(t, p.ID)
	assert.Zero(t, got.Gold)
	assert.Zero(t, got.Experience)
	assert.Equal(t, 100, got.Health)
	assert.Zero(t, f.store.ActionCount())
	assert.Empty(t, f.store.Stacks(p.ID))
	assert.Equal(t, []boss.EventKind{boss.EventSpawned}, f.events.kinds(), "nothing published for a rolled back attack")
}

func TestAttack_DropsGranted(t *testing.T) {
	f := newFixture(t, dice.NewScripted(0.5))
	f.template(t, boss.Template{
		Name: "Twig", MaxHealth: 1,
		DropRules: []boss.DropRule{
			{ItemID: "ore", DropRate: 1, MinQuantity: 3, MaxQuantity: 3},
			{ItemID: "crown", DropRate: 1, MinQuantity: 1, MaxQuantity: 1, KillerOnly: true},
		},
	})
	p := f.player(t, "alice", 5, 100, nil)
	f.spawn(t)

	_, err := f.svc.Attack(context.Background(), p.ID, character.SkillCombat)
	require.NoError(t, err)
	assert.Equal(t, []inventory.Stack{
		{PlayerID: p.ID, ItemID: "crown", Quantity: 1},
		{PlayerID: p.ID, ItemID: "ore", Quantity: 3},
	}, f.store.Stacks(p.ID))
}

func TestRunAutoSwitchCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("no instance is a no-op", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		res, err := f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		assert.False(t, res.Rotated)
	})

	t.Run("defeated rotates after delay", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, boss.Template{Name: "Twig", MaxHealth: 1})
		p := f.player(t, "alice", 1, 100, nil)
		first := f.spawn(t)
		_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
		require.NoError(t, err)

		f.clock.Advance(30 * time.Minute)
		res, err := f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		assert.False(t, res.Rotated)

		f.clock.Advance(30 * time.Minute)
		res, err = f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		require.True(t, res.Rotated)
		assert.Equal(t, first.Instance.ID, res.Previous.ID)
		assert.NotEqual(t, first.Instance.ID, res.Next.Instance.ID)
		assert.Equal(t, int64(1), res.Next.Instance.CurrentHealth)

		res, err = f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		assert.False(t, res.Rotated, "second check is idempotent")
	})

	t.Run("expired undefeated rotates", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		first := f.spawn(t)
		f.clock.Advance(24 * time.Hour)
		res, err := f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		require.True(t, res.Rotated)
		assert.Equal(t, first.Instance.ID, res.Previous.ID)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, bigBoss)
		f.spawn(t)
		st := boss.DefaultSettings()
		st.AutoSwitchEnabled = false
		_, err := f.svc.UpdateSettings(ctx, st)
		require.NoError(t, err)

		f.clock.Advance(48 * time.Hour)
		res, err := f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		assert.False(t, res.Rotated)
	})

	t.Run("sequential mode picks lowest level", func(t *testing.T) {
		f := newFixture(t, dice.NewScripted(0.5))
		f.template(t, boss.Template{Name: "High", MaxHealth: 10, Level: 9})
		low := f.template(t, boss.Template{Name: "Low", MaxHealth: 10, Level: 2})
		st := boss.DefaultSettings()
		st.SelectionMode = boss.SelectSequential
		_, err := f.svc.UpdateSettings(ctx, st)
		require.NoError(t, err)
		f.spawn(t)

		f.clock.Advance(24 * time.Hour)
		res, err := f.svc.RunAutoSwitchCheck(ctx)
		require.NoError(t, err)
		require.True(t, res.Rotated)
		assert.Equal(t, low.ID, res.Next.Template.ID)
	})
}

func TestForceSpawn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0.5))
	twig := f.template(t, boss.Template{Name: "Twig", MaxHealth: 1})
	other := f.template(t, boss.Template{Name: "Other", MaxHealth: 50, Level: 3})
	p := f.player(t, "alice", 1, 100, nil)

	v, err := f.svc.ForceSpawn(ctx, twig.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, twig.ID, v.Template.ID)

	_, err = f.svc.ForceSpawn(ctx, other.ID, 0)
	assert.ErrorIs(t, err, boss.ErrFightInProgress)

	_, err = f.svc.Attack(ctx, p.ID, character.SkillMining)
	require.NoError(t, err)

	v2, err := f.svc.ForceSpawn(ctx, other.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, other.ID, v2.Template.ID)
	assert.Equal(t, 2*time.Hour, v2.Instance.EndTime.Sub(v2.Instance.StartTime))

	_, err = f.svc.ForceSpawn(ctx, 9999, 0)
	assert.Error(t, err)
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0.5))
	f.template(t, bigBoss)
	v := f.spawn(t)

	require.NoError(t, f.svc.Deactivate(ctx, v.Instance.ID))
	require.NoError(t, f.svc.Deactivate(ctx, v.Instance.ID), "already inactive is a no-op")
	assert.ErrorIs(t, f.svc.Deactivate(ctx, 9999), boss.ErrInstanceNotFound)

	next := f.spawn(t)
	assert.NotEqual(t, v.Instance.ID, next.Instance.ID)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0, 0.5, 0, 0, 0.5, 0))
	f.template(t, bigBoss)
	a := f.player(t, "alice", 2, 100, nil)
	b := f.player(t, "bob", 4, 100, nil)

	empty, err := f.svc.Leaderboard(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	v := f.spawn(t)
	_, err = f.svc.Attack(ctx, a.ID, character.SkillCombat)
	require.NoError(t, err)
	_, err = f.svc.Attack(ctx, b.ID, character.SkillCombat)
	require.NoError(t, err)

	board, err := f.svc.Leaderboard(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "bob", board[0].Username)
	assert.Equal(t, 4, board[0].Level)
	assert.Equal(t, int64(16), board[0].TotalDamage)
	assert.Equal(t, "alice", board[1].Username)

	byID, err := f.svc.Leaderboard(ctx, v.Instance.ID, 1)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, b.ID, byID[0].PlayerID)

	_, err = f.svc.Leaderboard(ctx, 9999, 0)
	assert.ErrorIs(t, err, boss.ErrInstanceNotFound)
}

func TestAdminTemplates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0.5))
	tmpl := f.template(t, boss.Template{Name: "Golem", MaxHealth: 100})

	_, err := f.svc.CreateTemplate(ctx, &boss.Template{Name: "Golem", MaxHealth: 1, Level: 1, Rarity: boss.RarityRare})
	assert.ErrorIs(t, err, boss.ErrTemplateNameTaken)

	_, err = f.svc.CreateTemplate(ctx, &boss.Template{Name: "Bad", MaxHealth: 0, Level: 1, Rarity: boss.RarityRare})
	assert.ErrorIs(t, err, boss.ErrInvalidTemplate)

	_, err = f.svc.CreateTemplate(ctx, &boss.Template{
		Name: "Ghost", MaxHealth: 1, Level: 1, Rarity: boss.RarityRare,
		DropRules: []boss.DropRule{{ItemID: "ectoplasm", DropRate: 1, MinQuantity: 1, MaxQuantity: 1}},
	})
	assert.ErrorIs(t, err, boss.ErrItemNotFound)

	rule, err := f.svc.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "ore", DropRate: 0.25, MinQuantity: 1, MaxQuantity: 3})
	require.NoError(t, err)
	_, err = f.svc.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "ore", DropRate: 0.5, MinQuantity: 1, MaxQuantity: 1})
	assert.ErrorIs(t, err, boss.ErrDropRuleExists)
	_, err = f.svc.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "ectoplasm", DropRate: 0.5, MinQuantity: 1, MaxQuantity: 1})
	assert.ErrorIs(t, err, boss.ErrItemNotFound)
	_, err = f.svc.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "crown", DropRate: 2, MinQuantity: 1, MaxQuantity: 1})
	assert.ErrorIs(t, err, boss.ErrInvalidDropRule)

	updated, err := f.svc.UpdateTemplate(ctx, &boss.Template{ID: tmpl.ID, Name: "Iron Golem", MaxHealth: 200, Level: 4, Rarity: boss.RarityEpic})
	require.NoError(t, err)
	assert.Equal(t, "Iron Golem", updated.Name)
	require.Len(t, updated.DropRules, 1)

	_, err = f.svc.UpdateTemplate(ctx, &boss.Template{ID: 9999, Name: "X", MaxHealth: 1, Level: 1, Rarity: boss.RarityEpic})
	assert.ErrorIs(t, err, boss.ErrTemplateNotFound)

	require.NoError(t, f.svc.RemoveDropRule(ctx, tmpl.ID, rule.ID))
	got, err := f.svc.GetTemplate(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DropRules)

	v := f.spawn(t)
	assert.ErrorIs(t, f.svc.DeleteTemplate(ctx, tmpl.ID), boss.ErrTemplateInUse)
	require.NoError(t, f.svc.Deactivate(ctx, v.Instance.ID))
	assert.ErrorIs(t, f.svc.DeleteTemplate(ctx, tmpl.ID), boss.ErrTemplateInUse, "retired instances still reference it")

	unused := f.template(t, boss.Template{Name: "Wisp", MaxHealth: 10})
	require.NoError(t, f.svc.DeleteTemplate(ctx, unused.ID))
	assert.ErrorIs(t, f.svc.DeleteTemplate(ctx, unused.ID), boss.ErrTemplateNotFound)

	all, err := f.svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, tmpl.ID, all[0].ID)
}

func TestDeleteTemplate_KeepsAttackHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0.5))
	tmpl := f.template(t, bigBoss)
	p := f.player(t, "alice", 1, 100, nil)
	v := f.spawn(t)

	_, err := f.svc.Attack(ctx, p.ID, character.SkillMining)
	require.NoError(t, err)
	require.NoError(t, f.svc.Deactivate(ctx, v.Instance.ID))

	assert.ErrorIs(t, f.svc.DeleteTemplate(ctx, tmpl.ID), boss.ErrTemplateInUse)
	assert.Equal(t, 1, f.store.ActionCount())

	// The cooldown is derived from the attack log, so it must survive too.
	f.clock.Advance(time.Minute)
	wait, err := f.svc.Cooldown(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Minute, wait)

	recent, err := f.svc.RecentInstances(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, v.Instance.ID, recent[0].ID)
}

func TestSettings_LazyDefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, dice.NewScripted(0.5))

	st, err := f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, st.AutoSwitchEnabled)
	assert.Equal(t, 1, st.AutoSwitchDelayHours)
	assert.Equal(t, 24, st.DefaultDurationHours)
	assert.Equal(t, boss.SelectRandom, st.SelectionMode)

	_, err = f.svc.UpdateSettings(ctx, boss.Settings{DefaultDurationHours: 0, SelectionMode: boss.SelectRandom})
	assert.ErrorIs(t, err, boss.ErrInvalidSettings)

	saved, err := f.svc.UpdateSettings(ctx, boss.Settings{AutoSwitchDelayHours: 3, DefaultDurationHours: 6, SelectionMode: boss.SelectWeighted})
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), saved.UpdatedAt)

	st, err = f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, st.AutoSwitchEnabled)
	assert.Equal(t, boss.SelectWeighted, st.SelectionMode)
	assert.Equal(t, 6, st.DefaultDurationHours)
}
