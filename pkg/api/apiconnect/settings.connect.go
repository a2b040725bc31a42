package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/pkg/api"
)

// SettingsServiceName is the fully-qualified name of the SettingsService service.
const SettingsServiceName = "shuttlecash.v1.SettingsService"

const (
	// SettingsServiceGetPricingProcedure is the path of SettingsService.GetPricing.
	SettingsServiceGetPricingProcedure = "/shuttlecash.v1.SettingsService/GetPricing"
	// SettingsServiceUpdatePricingProcedure is the path of SettingsService.UpdatePricing.
	SettingsServiceUpdatePricingProcedure = "/shuttlecash.v1.SettingsService/UpdatePricing"
)

// SettingsServiceClient is a client for the shuttlecash.v1.SettingsService service.
type SettingsServiceClient interface {
	GetPricing(context.Context, *connect.Request[api.GetPricingRequest]) (*connect.Response[api.GetPricingResponse], error)
	UpdatePricing(context.Context, *connect.Request[api.UpdatePricingRequest]) (*connect.Response[api.UpdatePricingResponse], error)
}

// NewSettingsServiceClient constructs a client for the shuttlecash.v1.SettingsService service.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &settingsServiceClient{
		getPricing: connect.NewClient[api.GetPricingRequest, api.GetPricingResponse](
			httpClient, baseURL+SettingsServiceGetPricingProcedure, opts...,
		),
		updatePricing: connect.NewClient[api.UpdatePricingRequest, api.UpdatePricingResponse](
			httpClient, baseURL+SettingsServiceUpdatePricingProcedure, opts...,
		),
	}
}

type settingsServiceClient struct {
	getPricing    *connect.Client[api.GetPricingRequest, api.GetPricingResponse]
	updatePricing *connect.Client[api.UpdatePricingRequest, api.UpdatePricingResponse]
}

func (c *settingsServiceClient) GetPricing(ctx context.Context, req *connect.Request[api.GetPricingRequest]) (*connect.Response[api.GetPricingResponse], error) {
	return c.getPricing.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdatePricing(ctx context.Context, req *connect.Request[api.UpdatePricingRequest]) (*connect.Response[api.UpdatePricingResponse], error) {
	return c.updatePricing.CallUnary(ctx, req)
}

// SettingsServiceHandler is implemented by the shuttlecash.v1.SettingsService server.
type SettingsServiceHandler interface {
	GetPricing(context.Context, *connect.Request[api.GetPricingRequest]) (*connect.Response[api.GetPricingResponse], error)
	UpdatePricing(context.Context, *connect.Request[api.UpdatePricingRequest]) (*connect.Response[api.UpdatePricingResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler from the service implementation.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	return "/" + SettingsServiceName + "/", route(map[string]http.Handler{
		SettingsServiceGetPricingProcedure:    connect.NewUnaryHandler(SettingsServiceGetPricingProcedure, svc.GetPricing, opts...),
		SettingsServiceUpdatePricingProcedure: connect.NewUnaryHandler(SettingsServiceUpdatePricingProcedure, svc.UpdatePricing, opts...),
	})
}
