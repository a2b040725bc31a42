package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/pkg/api"
)

// DashboardServiceName is the fully-qualified name of the DashboardService service.
const DashboardServiceName = "shuttlecash.v1.DashboardService"

const (
	// DashboardServiceGetSummaryProcedure is the path of DashboardService.GetSummary.
	DashboardServiceGetSummaryProcedure = "/shuttlecash.v1.DashboardService/GetSummary"
)

// DashboardServiceClient is a client for the shuttlecash.v1.DashboardService service.
type DashboardServiceClient interface {
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewDashboardServiceClient constructs a client for the shuttlecash.v1.DashboardService service.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &dashboardServiceClient{
		getSummary: connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](
			httpClient, baseURL+DashboardServiceGetSummaryProcedure, opts...,
		),
	}
}

type dashboardServiceClient struct {
	getSummary *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
}

func (c *dashboardServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// DashboardServiceHandler is implemented by the shuttlecash.v1.DashboardService server.
type DashboardServiceHandler interface {
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler from the service implementation.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	return "/" + DashboardServiceName + "/", route(map[string]http.Handler{
		DashboardServiceGetSummaryProcedure: connect.NewUnaryHandler(DashboardServiceGetSummaryProcedure, svc.GetSummary, opts...),
	})
}
