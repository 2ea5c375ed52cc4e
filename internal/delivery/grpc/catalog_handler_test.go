package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

func newTestClient(t *testing.T) (*CatalogClient, *gogrpc.ClientConn) {
	t.Helper()
	logger, _ := test.NewNullLogger()

	rating := 4.5
	store := repository.NewMemoryStore(logger, repository.WithSeedProducts(
		domain.ProductInput{Name: "Laptop", Description: "14 inch", Price: 1000, Category: "Electronics", Rating: &rating, Image: "https://img.example.com/l.jpg"},
		domain.ProductInput{Name: "Mug", Description: "Stoneware", Price: 12.5, Category: "Home"},
	))
	handler := NewCatalogHandler(usecase.NewProductUseCase(store, logger), logger)
	srv, _ := NewServer(handler, logger)

	lis := bufconn.Listen(bufSize)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewCatalogClient(conn), conn
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestGetProduct(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := testContext(t)

	msg, err := client.GetProduct(ctx, 1)
	require.NoError(t, err)

	fields := msg.AsMap()
	assert.Equal(t, "Laptop", fields["name"])
	assert.Equal(t, 1000.0, fields["price"])
	assert.Equal(t, 1.0, fields["id"])
	assert.Equal(t, 4.5, fields["rating"])
	assert.Equal(t, []interface{}{"https://img.example.com/l.jpg"}, fields["images"])
	assert.NotContains(t, fields, "badge")
}

func TestGetProductErrors(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := testContext(t)

	_, err := client.GetProduct(ctx, 99)
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetProduct(ctx, 0)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListProducts(t *testing.T) {
	client, _ := newTestClient(t)

	msg, err := client.ListProducts(testContext(t))
	require.NoError(t, err)

	list, ok := msg.AsMap()["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "Mug", list[0].(map[string]interface{})["name"])
	assert.Equal(t, "Laptop", list[1].(map[string]interface{})["name"])
}

func TestHealthService(t *testing.T) {
	_, conn := newTestClient(t)

	resp, err := healthpb.NewHealthClient(conn).Check(testContext(t), &healthpb.HealthCheckRequest{Service: CatalogServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestMapDomainErrorToGrpcStatus(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, status.Code(mapDomainErrorToGrpcStatus(domain.NewValidationError("bad"))))
	assert.Equal(t, codes.NotFound, status.Code(mapDomainErrorToGrpcStatus(domain.NewNotFoundError("gone"))))
	assert.Equal(t, codes.FailedPrecondition, status.Code(mapDomainErrorToGrpcStatus(domain.NewConflictError("no"))))
	assert.Equal(t, codes.Internal, status.Code(mapDomainErrorToGrpcStatus(assert.AnError)))
}
