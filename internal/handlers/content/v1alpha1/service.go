package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgcatalog.content.v1alpha1.ContentService"

const (
	resolveMethod       = "/" + ServiceName + "/Resolve"
	generateNameMethod  = "/" + ServiceName + "/GenerateName"
	executeMethod       = "/" + ServiceName + "/Execute"
	probabilitiesMethod = "/" + ServiceName + "/Probabilities"
)

// ContentServiceServer is the server API for the content service
type ContentServiceServer interface {
	Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error)
	GenerateName(context.Context, *GenerateNameRequest) (*GenerateNameResponse, error)
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
	Probabilities(context.Context, *ProbabilitiesRequest) (*ProbabilitiesResponse, error)
}

// RegisterContentServiceServer registers srv on s
func RegisterContentServiceServer(s grpc.ServiceRegistrar, srv ContentServiceServer) {
	s.RegisterService(&ContentServiceDesc, srv)
}

// ContentServiceDesc describes the content service for grpc.Server
var ContentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ContentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: resolveHandler},
		{MethodName: "GenerateName", Handler: generateNameHandler},
		{MethodName: "Execute", Handler: executeHandler},
		{MethodName: "Probabilities", Handler: probabilitiesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgcatalog/content/v1alpha1/content.json",
}

// unary adapts a typed method to grpc.MethodDesc, running interceptors when
// the server has them
func unary[Req any, Resp any](
	method string,
	call func(ContentServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ContentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ContentServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	resolveHandler       = unary(resolveMethod, ContentServiceServer.Resolve)
	generateNameHandler  = unary(generateNameMethod, ContentServiceServer.GenerateName)
	executeHandler       = unary(executeMethod, ContentServiceServer.Execute)
	probabilitiesHandler = unary(probabilitiesMethod, ContentServiceServer.Probabilities)
)

// ContentServiceClient is the client API for the content service
type ContentServiceClient interface {
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
	GenerateName(ctx context.Context, in *GenerateNameRequest, opts ...grpc.CallOption) (*GenerateNameResponse, error)
	Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error)
	Probabilities(ctx context.Context, in *ProbabilitiesRequest, opts ...grpc.CallOption) (*ProbabilitiesResponse, error)
}

type contentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewContentServiceClient creates a client that speaks the JSON codec
func NewContentServiceClient(cc grpc.ClientConnInterface) ContentServiceClient {
	return &contentServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contentServiceClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	return invoke[ResolveResponse](ctx, c.cc, resolveMethod, in, opts)
}

func (c *contentServiceClient) GenerateName(ctx context.Context, in *GenerateNameRequest, opts ...grpc.CallOption) (*GenerateNameResponse, error) {
	return invoke[GenerateNameResponse](ctx, c.cc, generateNameMethod, in, opts)
}

func (c *contentServiceClient) Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error) {
	return invoke[ExecuteResponse](ctx, c.cc, executeMethod, in, opts)
}

func (c *contentServiceClient) Probabilities(ctx context.Context, in *ProbabilitiesRequest, opts ...grpc.CallOption) (*ProbabilitiesResponse, error) {
	return invoke[ProbabilitiesResponse](ctx, c.cc, probabilitiesMethod, in, opts)
}
