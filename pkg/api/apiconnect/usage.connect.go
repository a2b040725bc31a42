package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/pkg/api"
)

// UsageServiceName is the fully-qualified name of the UsageService service.
const UsageServiceName = "shuttlecash.v1.UsageService"

const (
	UsageServiceLogUsageProcedure    = "/shuttlecash.v1.UsageService/LogUsage"
	UsageServiceDeleteUsageProcedure = "/shuttlecash.v1.UsageService/DeleteUsage"
	UsageServiceListUsageProcedure   = "/shuttlecash.v1.UsageService/ListUsage"
)

// UsageServiceClient is a client for the shuttlecash.v1.UsageService service.
type UsageServiceClient interface {
	LogUsage(context.Context, *connect.Request[api.LogUsageRequest]) (*connect.Response[api.LogUsageResponse], error)
	DeleteUsage(context.Context, *connect.Request[api.DeleteUsageRequest]) (*connect.Response[api.DeleteUsageResponse], error)
	ListUsage(context.Context, *connect.Request[api.ListUsageRequest]) (*connect.Response[api.ListUsageResponse], error)
}

// NewUsageServiceClient constructs a client for the shuttlecash.v1.UsageService service.
func NewUsageServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UsageServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &usageServiceClient{
		logUsage: connect.NewClient[api.LogUsageRequest, api.LogUsageResponse](
			httpClient, baseURL+UsageServiceLogUsageProcedure, opts...,
		),
		deleteUsage: connect.NewClient[api.DeleteUsageRequest, api.DeleteUsageResponse](
			httpClient, baseURL+UsageServiceDeleteUsageProcedure, opts...,
		),
		listUsage: connect.NewClient[api.ListUsageRequest, api.ListUsageResponse](
			httpClient, baseURL+UsageServiceListUsageProcedure, opts...,
		),
	}
}

type usageServiceClient struct {
	logUsage    *connect.Client[api.LogUsageRequest, api.LogUsageResponse]
	deleteUsage *connect.Client[api.DeleteUsageRequest, api.DeleteUsageResponse]
	listUsage   *connect.Client[api.ListUsageRequest, api.ListUsageResponse]
}

func (c *usageServiceClient) LogUsage(ctx context.Context, req *connect.Request[api.LogUsageRequest]) (*connect.Response[api.LogUsageResponse], error) {
	return c.logUsage.CallUnary(ctx, req)
}

func (c *usageServiceClient) DeleteUsage(ctx context.Context, req *connect.Request[api.DeleteUsageRequest]) (*connect.Response[api.DeleteUsageResponse], error) {
	return c.deleteUsage.CallUnary(ctx, req)
}

func (c *usageServiceClient) ListUsage(ctx context.Context, req *connect.Request[api.ListUsageRequest]) (*connect.Response[api.ListUsageResponse], error) {
	return c.listUsage.CallUnary(ctx, req)
}

// UsageServiceHandler is implemented by the shuttlecash.v1.UsageService server.
type UsageServiceHandler interface {
	LogUsage(context.Context, *connect.Request[api.LogUsageRequest]) (*connect.Response[api.LogUsageResponse], error)
	DeleteUsage(context.Context, *connect.Request[api.DeleteUsageRequest]) (*connect.Response[api.DeleteUsageResponse], error)
	ListUsage(context.Context, *connect.Request[api.ListUsageRequest]) (*connect.Response[api.ListUsageResponse], error)
}

// NewUsageServiceHandler builds an HTTP handler from the service implementation.
func NewUsageServiceHandler(svc UsageServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	return "/" + UsageServiceName + "/", route(map[string]http.Handler{
		UsageServiceLogUsageProcedure:    connect.NewUnaryHandler(UsageServiceLogUsageProcedure, svc.LogUsage, opts...),
		UsageServiceDeleteUsageProcedure: connect.NewUnaryHandler(UsageServiceDeleteUsageProcedure, svc.DeleteUsage, opts...),
		UsageServiceListUsageProcedure:   connect.NewUnaryHandler(UsageServiceListUsageProcedure, svc.ListUsage, opts...),
	})
}
