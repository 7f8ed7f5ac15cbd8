package handler

import (
	"context"

	"google.golang.org/grpc"

	"workshop-scheduler/internal/model"
)

const ServiceName = "workshop.v1.AppointmentService"

// FullMethod returns the gRPC path for a method of the service.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type CreateAppointmentRequest struct {
	Appointment model.Appointment `json:"appointment"`
}

type CreateAppointmentResponse struct {
	Appointment model.Appointment `json:"appointment"`
}

type ListAppointmentsRequest struct{}

type ListAppointmentsResponse struct {
	Appointments []model.Appointment `json:"appointments"`
}

type GetAppointmentRequest struct {
	ID string `json:"id"`
}

type GetAppointmentResponse struct {
	Appointment model.Appointment `json:"appointment"`
}

type UpdateAppointmentRequest struct {
	Appointment model.Appointment `json:"appointment"`
}

type UpdateAppointmentResponse struct {
	Appointment model.Appointment `json:"appointment"`
}

type DeleteAppointmentRequest struct {
	ID string `json:"id"`
}

type DeleteAppointmentResponse struct{}

// AppointmentServer is implemented by Handler.
type AppointmentServer interface {
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	GetAppointment(context.Context, *GetAppointmentRequest) (*GetAppointmentResponse, error)
	UpdateAppointment(context.Context, *UpdateAppointmentRequest) (*UpdateAppointmentResponse, error)
	DeleteAppointment(context.Context, *DeleteAppointmentRequest) (*DeleteAppointmentResponse, error)
}

// unary adapts a typed method to grpc.MethodDesc's handler signature.
func unary[Req, Resp any](method string, call func(AppointmentServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AppointmentServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			next := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AppointmentServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, next)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AppointmentServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateAppointment", AppointmentServer.CreateAppointment),
		unary("ListAppointments", AppointmentServer.ListAppointments),
		unary("GetAppointment", AppointmentServer.GetAppointment),
		unary("UpdateAppointment", AppointmentServer.UpdateAppointment),
		unary("DeleteAppointment", AppointmentServer.DeleteAppointment),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "workshop/v1/appointment",
}

func Register(s grpc.ServiceRegistrar, srv AppointmentServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls the service over any connection, always with the JSON
// codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error) {
	return invoke[CreateAppointmentResponse](ctx, c.cc, "CreateAppointment", in, opts)
}

func (c *Client) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, "ListAppointments", in, opts)
}

func (c *Client) GetAppointment(ctx context.Context, in *GetAppointmentRequest, opts ...grpc.CallOption) (*GetAppointmentResponse, error) {
	return invoke[GetAppointmentResponse](ctx, c.cc, "GetAppointment", in, opts)
}

func (c *Client) UpdateAppointment(ctx context.Context, in *UpdateAppointmentRequest, opts ...grpc.CallOption) (*UpdateAppointmentResponse, error) {
	return invoke[UpdateAppointmentResponse](ctx, c.cc, "UpdateAppointment", in, opts)
}

func (c *Client) DeleteAppointment(ctx context.Context, in *DeleteAppointmentRequest, opts ...grpc.CallOption) (*DeleteAppointmentResponse, error) {
	return invoke[DeleteAppointmentResponse](ctx, c.cc, "DeleteAppointment", in, opts)
}
