package gameserver

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/idlerealm/worldboss/internal/gameserver/bossv1"
	"github.com/idlerealm/worldboss/internal/observability"
)

// ServiceName is the fully qualified name of BossService, used as its health
// service key.
var ServiceName = bossv1.BossService_ServiceDesc.ServiceName

// NewGRPCServer builds a gRPC server exposing BossService and the health
// service. Requests are logged before authentication so rejected calls are
// still recorded.
//
// Precondition: bs, auth, hs, and logger must be non-nil.
func NewGRPCServer(bs *BossServer, auth Authenticator, hs *health.Server, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		observability.UnaryServerLogger(logger),
		AuthInterceptor(auth, logger),
	))
	s := grpc.NewServer(opts...)
	bossv1.RegisterBossServiceServer(s, bs)
	healthpb.RegisterHealthServer(s, hs)
	return s
}
