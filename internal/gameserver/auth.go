package gameserver

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/gameserver/bossv1"
)

// Metadata keys carrying caller credentials.
const (
	MetadataUsername = "username"
	MetadataPassword = "password"
)

// Authenticator verifies player credentials.
//
// Postcondition: returns character.ErrPlayerNotFound for an unknown username
// and character.ErrInvalidCredentials for a wrong password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*character.Player, error)
}

// adminMethods lists the BossService methods restricted to the admin role.
var adminMethods = map[string]bool{
	bossv1.BossService_ListTemplates_FullMethodName:      true,
	bossv1.BossService_GetTemplate_FullMethodName:        true,
	bossv1.BossService_CreateTemplate_FullMethodName:     true,
	bossv1.BossService_UpdateTemplate_FullMethodName:     true,
	bossv1.BossService_DeleteTemplate_FullMethodName:     true,
	bossv1.BossService_AddDropRule_FullMethodName:        true,
	bossv1.BossService_RemoveDropRule_FullMethodName:     true,
	bossv1.BossService_ForceSpawn_FullMethodName:         true,
	bossv1.BossService_DeactivateInstance_FullMethodName: true,
	bossv1.BossService_GetSettings_FullMethodName:        true,
	bossv1.BossService_UpdateSettings_FullMethodName:     true,
	bossv1.BossService_RunAutoSwitchCheck_FullMethodName: true,
}

type playerKey struct{}

// ContextWithPlayer returns a copy of ctx carrying p.
func ContextWithPlayer(ctx context.Context, p *character.Player) context.Context {
	return context.WithValue(ctx, playerKey{}, p)
}

// PlayerFromContext returns the authenticated caller stored by AuthInterceptor.
func PlayerFromContext(ctx context.Context) (*character.Player, bool) {
	p, ok := ctx.Value(playerKey{}).(*character.Player)
	return p, ok && p != nil
}

// WithCredentials attaches username and password to outgoing call metadata.
func WithCredentials(ctx context.Context, username, password string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, MetadataUsername, username, MetadataPassword, password)
}

// AuthInterceptor authenticates every BossService call from its metadata
// credentials and enforces the admin role on administrative methods. Calls to
// other services (health, reflection) pass through untouched.
//
// Precondition: auth and logger must be non-nil.
func AuthInterceptor(auth Authenticator, logger *zap.Logger) grpc.UnaryServerInterceptor {
	prefix := "/" + ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		username := first(md.Get(MetadataUsername))
		password := first(md.Get(MetadataPassword))
		if username == "" || password == "" {
			return nil, status.Error(codes.Unauthenticated, "missing credentials")
		}

		p, err := auth.Authenticate(ctx, username, password)
		if err != nil {
			if errors.Is(err, character.ErrInvalidCredentials) || errors.Is(err, character.ErrPlayerNotFound) {
				logger.Debug("authentication failed", zap.String("username", username), zap.String("method", info.FullMethod))
				return nil, status.Error(codes.Unauthenticated, "invalid credentials")
			}
			logger.Error("authenticating caller", zap.String("username", username), zap.Error(err))
			return nil, status.Error(codes.Internal, "authentication unavailable")
		}

		if adminMethods[info.FullMethod] && !p.IsAdmin() {
			logger.Warn("admin method denied",
				zap.Int64("player_id", p.ID),
				zap.String("method", info.FullMethod),
			)
			return nil, status.Errorf(codes.PermissionDenied, "%s requires the admin role", info.FullMethod)
		}
		return handler(ContextWithPlayer(ctx, p), req)
	}
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
