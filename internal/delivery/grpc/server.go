package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NewServer builds the gRPC server with the catalog, health and reflection
// services registered. The returned health server lets the caller flip the
// serving status during shutdown.
func NewServer(catalog CatalogServer, logger *logrus.Logger) (*gogrpc.Server, *health.Server) {
	srv := gogrpc.NewServer(gogrpc.UnaryInterceptor(loggingInterceptor(logger)))

	RegisterCatalogServer(srv, catalog)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(CatalogServiceName, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	logger.Info("gRPC catalog, health and reflection services registered")
	return srv, healthSrv
}

func loggingInterceptor(logger *logrus.Logger) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		entry := logger.WithFields(logrus.Fields{
			"grpc_method": info.FullMethod,
			"grpc_code":   status.Code(err).String(),
			"latency_ms":  time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.Warn("gRPC call failed")
		} else {
			entry.Debug("gRPC call completed")
		}
		return resp, err
	}
}

// CatalogClient calls the catalog service over any client connection.
type CatalogClient struct {
	cc gogrpc.ClientConnInterface
}

func NewCatalogClient(cc gogrpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func (c *CatalogClient) GetProduct(ctx context.Context, id int64, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/"+CatalogServiceName+"/GetProduct", wrapperspb.Int64(id), out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListProducts(ctx context.Context, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/"+CatalogServiceName+"/ListProducts", &emptypb.Empty{}, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
