package gameserver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/gameserver/bossv1"
)

// BossServer implements bossv1.BossServiceServer on top of boss.Service.
type BossServer struct {
	bossv1.UnimplementedBossServiceServer

	svc    *boss.Service
	logger *zap.Logger
	now    func() time.Time
}

// ServerOption configures a BossServer.
type ServerOption func(*BossServer)

// WithServerClock overrides the clock used to compute remaining times.
func WithServerClock(now func() time.Time) ServerOption {
	return func(s *BossServer) { s.now = now }
}

// NewBossServer creates a BossServer.
//
// Precondition: svc and logger must be non-nil.
func NewBossServer(svc *boss.Service, logger *zap.Logger, opts ...ServerOption) *BossServer {
	s := &BossServer{svc: svc, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ bossv1.BossServiceServer = (*BossServer)(nil)

func (s *BossServer) caller(ctx context.Context) (*character.Player, error) {
	p, ok := PlayerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no authenticated player")
	}
	return p, nil
}

// GetCurrentBoss returns the live boss, spawning one when none is live.
func (s *BossServer) GetCurrentBoss(ctx context.Context, _ *bossv1.GetCurrentBossRequest) (*bossv1.GetCurrentBossResponse, error) {
	view, err := s.svc.CurrentInstance(ctx)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_GetCurrentBoss_FullMethodName, err)
	}
	return &bossv1.GetCurrentBossResponse{Boss: bossViewOf(view, s.now())}, nil
}

// Attack resolves one hit by the caller. Rejected attacks return a response
// with Rejected set.
func (s *BossServer) Attack(ctx context.Context, req *bossv1.AttackRequest) (*bossv1.AttackResponse, error) {
	p, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Attack(ctx, p.ID, character.Skill(req.GetSkill()))
	if r, ok := boss.AsRejection(err); ok {
		s.logger.Debug("attack rejected",
			zap.Int64("player_id", p.ID),
			zap.String("reason", string(r.Reason)),
		)
		return rejectionResponseOf(r), nil
	}
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_Attack_FullMethodName, err)
	}
	return attackResponseOf(res), nil
}

// GetLeaderboard ranks contributors of an instance.
func (s *BossServer) GetLeaderboard(ctx context.Context, req *bossv1.GetLeaderboardRequest) (*bossv1.GetLeaderboardResponse, error) {
	if req.GetInstanceId() < 0 {
		return nil, status.Error(codes.InvalidArgument, "instance_id must be >= 0")
	}
	entries, err := s.svc.Leaderboard(ctx, req.GetInstanceId(), int(req.GetLimit()))
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_GetLeaderboard_FullMethodName, err)
	}
	resp := &bossv1.GetLeaderboardResponse{Entries: make([]*bossv1.LeaderboardEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, leaderboardEntryOf(e))
	}
	return resp, nil
}

// GetCooldown reports the caller's remaining attack cooldown in whole seconds.
func (s *BossServer) GetCooldown(ctx context.Context, _ *bossv1.GetCooldownRequest) (*bossv1.GetCooldownResponse, error) {
	p, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	wait, err := s.svc.Cooldown(ctx, p.ID)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_GetCooldown_FullMethodName, err)
	}
	return &bossv1.GetCooldownResponse{RemainingSeconds: int64((wait + time.Second - 1) / time.Second)}, nil
}

// ListRecentInstances lists instance history, newest first.
func (s *BossServer) ListRecentInstances(ctx context.Context, req *bossv1.ListRecentInstancesRequest) (*bossv1.ListRecentInstancesResponse, error) {
	list, err := s.svc.RecentInstances(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_ListRecentInstances_FullMethodName, err)
	}
	resp := &bossv1.ListRecentInstancesResponse{Instances: make([]*bossv1.InstanceSummary, 0, len(list))}
	for _, inst := range list {
		resp.Instances = append(resp.Instances, instanceSummaryOf(inst))
	}
	return resp, nil
}

// ListTemplates lists every template with its drop rules.
func (s *BossServer) ListTemplates(ctx context.Context, _ *bossv1.ListTemplatesRequest) (*bossv1.ListTemplatesResponse, error) {
	list, err := s.svc.ListTemplates(ctx)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_ListTemplates_FullMethodName, err)
	}
	resp := &bossv1.ListTemplatesResponse{Templates: make([]*bossv1.BossTemplate, 0, len(list))}
	for _, t := range list {
		resp.Templates = append(resp.Templates, templateOf(t))
	}
	return resp, nil
}

// GetTemplate returns one template.
func (s *BossServer) GetTemplate(ctx context.Context, req *bossv1.GetTemplateRequest) (*bossv1.BossTemplate, error) {
	t, err := s.svc.GetTemplate(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_GetTemplate_FullMethodName, err)
	}
	return templateOf(t), nil
}

// CreateTemplate validates and stores a new template with its drop rules.
func (s *BossServer) CreateTemplate(ctx context.Context, req *bossv1.BossTemplate) (*bossv1.BossTemplate, error) {
	in, err := templateFromProto(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	in.ID = 0
	t, err := s.svc.CreateTemplate(ctx, in)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_CreateTemplate_FullMethodName, err)
	}
	return templateOf(t), nil
}

// UpdateTemplate replaces the attributes of an existing template.
func (s *BossServer) UpdateTemplate(ctx context.Context, req *bossv1.BossTemplate) (*bossv1.BossTemplate, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	in, err := templateFromProto(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	t, err := s.svc.UpdateTemplate(ctx, in)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_UpdateTemplate_FullMethodName, err)
	}
	return templateOf(t), nil
}

// DeleteTemplate removes a template no instance has ever been spawned from.
func (s *BossServer) DeleteTemplate(ctx context.Context, req *bossv1.DeleteTemplateRequest) (*bossv1.DeleteTemplateResponse, error) {
	if err := s.svc.DeleteTemplate(ctx, req.GetId()); err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_DeleteTemplate_FullMethodName, err)
	}
	return &bossv1.DeleteTemplateResponse{}, nil
}

// AddDropRule attaches a drop rule to a template.
func (s *BossServer) AddDropRule(ctx context.Context, req *bossv1.DropRule) (*bossv1.DropRule, error) {
	d, err := s.svc.AddDropRule(ctx, dropRuleFromProto(req))
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_AddDropRule_FullMethodName, err)
	}
	return dropRuleOf(d), nil
}

// RemoveDropRule detaches a drop rule from a template.
func (s *BossServer) RemoveDropRule(ctx context.Context, req *bossv1.RemoveDropRuleRequest) (*bossv1.RemoveDropRuleResponse, error) {
	if err := s.svc.RemoveDropRule(ctx, req.GetTemplateId(), req.GetRuleId()); err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_RemoveDropRule_FullMethodName, err)
	}
	return &bossv1.RemoveDropRuleResponse{}, nil
}

// ForceSpawn replaces a finished or missing boss with a new instance.
func (s *BossServer) ForceSpawn(ctx context.Context, req *bossv1.ForceSpawnRequest) (*bossv1.ForceSpawnResponse, error) {
	view, err := s.svc.ForceSpawn(ctx, req.GetTemplateId(), int(req.GetDurationHours()))
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_ForceSpawn_FullMethodName, err)
	}
	return &bossv1.ForceSpawnResponse{Boss: bossViewOf(view, s.now())}, nil
}

// DeactivateInstance takes an instance out of rotation.
func (s *BossServer) DeactivateInstance(ctx context.Context, req *bossv1.DeactivateInstanceRequest) (*bossv1.DeactivateInstanceResponse, error) {
	if err := s.svc.Deactivate(ctx, req.GetInstanceId()); err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_DeactivateInstance_FullMethodName, err)
	}
	return &bossv1.DeactivateInstanceResponse{}, nil
}

// GetSettings returns the rotation settings.
func (s *BossServer) GetSettings(ctx context.Context, _ *bossv1.GetSettingsRequest) (*bossv1.Settings, error) {
	st, err := s.svc.Settings(ctx)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_GetSettings_FullMethodName, err)
	}
	return settingsOf(st), nil
}

// UpdateSettings validates and stores new rotation settings.
func (s *BossServer) UpdateSettings(ctx context.Context, req *bossv1.Settings) (*bossv1.Settings, error) {
	st, err := s.svc.UpdateSettings(ctx, settingsFromProto(req))
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_UpdateSettings_FullMethodName, err)
	}
	return settingsOf(st), nil
}

// RunAutoSwitchCheck runs the rotation check on demand.
func (s *BossServer) RunAutoSwitchCheck(ctx context.Context, _ *bossv1.RunAutoSwitchCheckRequest) (*bossv1.RunAutoSwitchCheckResponse, error) {
	res, err := s.svc.RunAutoSwitchCheck(ctx)
	if err != nil {
		return nil, toStatus(s.logger, bossv1.BossService_RunAutoSwitchCheck_FullMethodName, err)
	}
	return rotationResponseOf(res, s.now()), nil
}
