package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shuttlecash/pkg/api"
)

// MemberServiceName is the fully-qualified name of the MemberService service.
const MemberServiceName = "shuttlecash.v1.MemberService"

const (
	MemberServiceCreateMemberProcedure = "/shuttlecash.v1.MemberService/CreateMember"
	MemberServiceUpdateMemberProcedure = "/shuttlecash.v1.MemberService/UpdateMember"
	MemberServiceDeleteMemberProcedure = "/shuttlecash.v1.MemberService/DeleteMember"
	MemberServiceListMembersProcedure  = "/shuttlecash.v1.MemberService/ListMembers"
)

// MemberServiceClient is a client for the shuttlecash.v1.MemberService service.
type MemberServiceClient interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
}

// NewMemberServiceClient constructs a client for the shuttlecash.v1.MemberService service.
func NewMemberServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MemberServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = withClientCodec(opts)
	return &memberServiceClient{
		createMember: connect.NewClient[api.CreateMemberRequest, api.CreateMemberResponse](
			httpClient, baseURL+MemberServiceCreateMemberProcedure, opts...,
		),
		updateMember: connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](
			httpClient, baseURL+MemberServiceUpdateMemberProcedure, opts...,
		),
		deleteMember: connect.NewClient[api.DeleteMemberRequest, api.DeleteMemberResponse](
			httpClient, baseURL+MemberServiceDeleteMemberProcedure, opts...,
		),
		listMembers: connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](
			httpClient, baseURL+MemberServiceListMembersProcedure, opts...,
		),
	}
}

type memberServiceClient struct {
	createMember *connect.Client[api.CreateMemberRequest, api.CreateMemberResponse]
	updateMember *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	deleteMember *connect.Client[api.DeleteMemberRequest, api.DeleteMemberResponse]
	listMembers  *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
}

func (c *memberServiceClient) CreateMember(ctx context.Context, req *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

func (c *memberServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

// MemberServiceHandler is implemented by the shuttlecash.v1.MemberService server.
type MemberServiceHandler interface {
	CreateMember(context.Context, *connect.Request[api.CreateMemberRequest]) (*connect.Response[api.CreateMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
}

// NewMemberServiceHandler builds an HTTP handler from the service implementation.
func NewMemberServiceHandler(svc MemberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withHandlerCodec(opts)
	return "/" + MemberServiceName + "/", route(map[string]http.Handler{
		MemberServiceCreateMemberProcedure: connect.NewUnaryHandler(MemberServiceCreateMemberProcedure, svc.CreateMember, opts...),
		MemberServiceUpdateMemberProcedure: connect.NewUnaryHandler(MemberServiceUpdateMemberProcedure, svc.UpdateMember, opts...),
		MemberServiceDeleteMemberProcedure: connect.NewUnaryHandler(MemberServiceDeleteMemberProcedure, svc.DeleteMember, opts...),
		MemberServiceListMembersProcedure:  connect.NewUnaryHandler(MemberServiceListMembersProcedure, svc.ListMembers, opts...),
	})
}
