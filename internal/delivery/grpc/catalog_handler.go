package grpc

import (
	"context"
	"time"

	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const CatalogServiceName = "storefront.v1.Catalog"

// CatalogServer is the read-only catalog API. Messages are protobuf well-known
// types, so no generated code is needed on either side.
type CatalogServer interface {
	GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
	ListProducts(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

var CatalogServiceDesc = gogrpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "GetProduct", Handler: catalogGetProductHandler},
		{MethodName: "ListProducts", Handler: catalogListProductsHandler},
	},
	Streams:  []gogrpc.StreamDesc{},
	Metadata: "storefront/v1/catalog",
}

func RegisterCatalogServer(s gogrpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

func catalogGetProductHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor gogrpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).GetProduct(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: "/" + CatalogServiceName + "/GetProduct"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServer).GetProduct(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func catalogListProductsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor gogrpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).ListProducts(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: "/" + CatalogServiceName + "/ListProducts"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServer).ListProducts(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

type CatalogHandler struct {
	productUseCase usecase.ProductUseCase
	log            *logrus.Logger
}

func NewCatalogHandler(puc usecase.ProductUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		productUseCase: puc,
		log:            logger,
	}
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := int(req.GetValue())
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%d", id)
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.GetProduct(id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	msg, err := productToStruct(product)
	if err != nil {
		h.log.Errorf("gRPC Handler: Failed to encode product %d: %v", id, err)
		return nil, status.Error(codes.Internal, "failed to encode product")
	}
	return msg, nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	products, err := h.productUseCase.ListProducts("")
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	list := make([]interface{}, 0, len(products))
	for _, p := range products {
		list = append(list, productFields(p))
	}
	msg, err := structpb.NewStruct(map[string]interface{}{"products": list})
	if err != nil {
		h.log.Errorf("gRPC Handler: Failed to encode product list: %v", err)
		return nil, status.Error(codes.Internal, "failed to encode products")
	}
	h.log.Infof("gRPC Handler: Listed %d products", len(products))
	return msg, nil
}

func productToStruct(p domain.Product) (*structpb.Struct, error) {
	return structpb.NewStruct(productFields(p))
}

// productFields flattens a product into the value types structpb accepts.
func productFields(p domain.Product) map[string]interface{} {
	images := make([]interface{}, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img)
	}
	fields := map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"images":      images,
		"createdAt":   p.CreatedAt.Format(time.RFC3339Nano),
		"updatedAt":   p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.Image != "" {
		fields["image"] = p.Image
	}
	if p.OriginalPrice != nil {
		fields["originalPrice"] = *p.OriginalPrice
	}
	if p.Badge != nil {
		fields["badge"] = *p.Badge
	}
	if p.Rating != nil {
		fields["rating"] = *p.Rating
	}
	if p.ReviewCount != nil {
		fields["reviewCount"] = *p.ReviewCount
	}
	return fields
}

func mapDomainErrorToGrpcStatus(err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case domain.KindConflict:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
