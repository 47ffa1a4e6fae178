package grpc

// proto.go defines the gRPC server and client API for
// ibantools/identifier/v1/identifier.proto. Messages are plain structs carried
// by the JSON codec; regenerate with buf to switch to protobuf encoding.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "ibantools.identifier.v1.IdentifierService"

// --- Messages ---

type ValidateIBANRequest struct {
	IBAN string `json:"iban"`
}

type ValidateBBANRequest struct {
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
}

type ValidateBICRequest struct {
	BIC string `json:"bic"`
}

type ValidationResponse struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

type ExtractIBANRequest struct {
	IBAN string `json:"iban"`
}

type IBANDetailsMsg struct {
	IBAN        string `json:"iban"`
	Friendly    string `json:"friendly"`
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	CheckDigits string `json:"check_digits"`
}

type ExtractIBANResponse struct {
	Input   string          `json:"input"`
	Valid   bool            `json:"valid"`
	Reason  string          `json:"reason,omitempty"`
	Details *IBANDetailsMsg `json:"details,omitempty"`
}

type BICDetailsMsg struct {
	BankCode     string `json:"bank_code"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	LocationCode string `json:"location_code"`
	BranchCode   string `json:"branch_code"`
	TestBIC      bool   `json:"test_bic"`
}

type ExtractBICResponse struct {
	Input   string         `json:"input"`
	Valid   bool           `json:"valid"`
	Reason  string         `json:"reason,omitempty"`
	Details *BICDetailsMsg `json:"details,omitempty"`
}

type ComposeIBANRequest struct {
	CountryCode string `json:"country_code"`
	BBAN        string `json:"bban"`
}

// ComposeIBANResponse leaves IBAN empty when composition failed.
type ComposeIBANResponse struct {
	IBAN     string `json:"iban,omitempty"`
	Composed bool   `json:"composed"`
	Reason   string `json:"reason,omitempty"`
}

type FormatIBANRequest struct {
	IBAN      string  `json:"iban"`
	Separator *string `json:"separator,omitempty"`
}

type FormatIBANResponse struct {
	Electronic string `json:"electronic"`
	Friendly   string `json:"friendly"`
}

type CountryMsg struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	IBANLength   int32  `json:"iban_length,omitempty"`
	BBANPattern  string `json:"bban_pattern,omitempty"`
	IBANRegistry bool   `json:"iban_registry"`
	SEPA         bool   `json:"sepa"`
}

type ListCountriesRequest struct {
	IBANOnly bool `json:"iban_only"`
	SEPAOnly bool `json:"sepa_only"`
}

type ListCountriesResponse struct {
	Countries []*CountryMsg `json:"countries"`
	Total     int32         `json:"total"`
}

type GetCountryRequest struct {
	Code string `json:"code"`
}

type GetCountryResponse struct {
	Country *CountryMsg `json:"country"`
}

// --- Server API ---

// IdentifierServiceServer is the server API for IdentifierService.
type IdentifierServiceServer interface {
	ValidateIBAN(context.Context, *ValidateIBANRequest) (*ValidationResponse, error)
	ExtractIBAN(context.Context, *ExtractIBANRequest) (*ExtractIBANResponse, error)
	ComposeIBAN(context.Context, *ComposeIBANRequest) (*ComposeIBANResponse, error)
	FormatIBAN(context.Context, *FormatIBANRequest) (*FormatIBANResponse, error)
	ValidateBBAN(context.Context, *ValidateBBANRequest) (*ValidationResponse, error)
	ValidateBIC(context.Context, *ValidateBICRequest) (*ValidationResponse, error)
	ExtractBIC(context.Context, *ValidateBICRequest) (*ExtractBICResponse, error)
	ListCountries(context.Context, *ListCountriesRequest) (*ListCountriesResponse, error)
	GetCountry(context.Context, *GetCountryRequest) (*GetCountryResponse, error)
	mustEmbedUnimplementedIdentifierServiceServer()
}

// UnimplementedIdentifierServiceServer provides forward-compatible default implementations.
type UnimplementedIdentifierServiceServer struct{}

func (UnimplementedIdentifierServiceServer) ValidateIBAN(context.Context, *ValidateIBANRequest) (*ValidationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateIBAN not implemented")
}
func (UnimplementedIdentifierServiceServer) ExtractIBAN(context.Context, *ExtractIBANRequest) (*ExtractIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractIBAN not implemented")
}
func (UnimplementedIdentifierServiceServer) ComposeIBAN(context.Context, *ComposeIBANRequest) (*ComposeIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComposeIBAN not implemented")
}
func (UnimplementedIdentifierServiceServer) FormatIBAN(context.Context, *FormatIBANRequest) (*FormatIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FormatIBAN not implemented")
}
func (UnimplementedIdentifierServiceServer) ValidateBBAN(context.Context, *ValidateBBANRequest) (*ValidationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateBBAN not implemented")
}
func (UnimplementedIdentifierServiceServer) ValidateBIC(context.Context, *ValidateBICRequest) (*ValidationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateBIC not implemented")
}
func (UnimplementedIdentifierServiceServer) ExtractBIC(context.Context, *ValidateBICRequest) (*ExtractBICResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractBIC not implemented")
}
func (UnimplementedIdentifierServiceServer) ListCountries(context.Context, *ListCountriesRequest) (*ListCountriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCountries not implemented")
}
func (UnimplementedIdentifierServiceServer) GetCountry(context.Context, *GetCountryRequest) (*GetCountryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCountry not implemented")
}
func (UnimplementedIdentifierServiceServer) mustEmbedUnimplementedIdentifierServiceServer() {}

// RegisterIdentifierServiceServer registers the IdentifierServiceServer with the gRPC server.
func RegisterIdentifierServiceServer(s grpclib.ServiceRegistrar, srv IdentifierServiceServer) {
	s.RegisterService(&_IdentifierService_serviceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodDesc, running interceptors
// the way generated code does.
func unaryHandler[Req any, Resp any](
	method string,
	call func(IdentifierServiceServer, context.Context, *Req) (*Resp, error),
) grpclib.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpclib.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(IdentifierServiceServer), ctx, req)
			}
			info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(IdentifierServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, req, info, handler)
		},
	}
}

var _IdentifierService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IdentifierServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		unaryHandler("ValidateIBAN", IdentifierServiceServer.ValidateIBAN),
		unaryHandler("ExtractIBAN", IdentifierServiceServer.ExtractIBAN),
		unaryHandler("ComposeIBAN", IdentifierServiceServer.ComposeIBAN),
		unaryHandler("FormatIBAN", IdentifierServiceServer.FormatIBAN),
		unaryHandler("ValidateBBAN", IdentifierServiceServer.ValidateBBAN),
		unaryHandler("ValidateBIC", IdentifierServiceServer.ValidateBIC),
		unaryHandler("ExtractBIC", IdentifierServiceServer.ExtractBIC),
		unaryHandler("ListCountries", IdentifierServiceServer.ListCountries),
		unaryHandler("GetCountry", IdentifierServiceServer.GetCountry),
	},
	Streams: []grpclib.StreamDesc{},
}

// --- Client API ---

// IdentifierServiceClient is the client API for IdentifierService. Calls use
// the JSON codec.
type IdentifierServiceClient struct {
	cc grpclib.ClientConnInterface
}

func NewIdentifierServiceClient(cc grpclib.ClientConnInterface) *IdentifierServiceClient {
	return &IdentifierServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpclib.ClientConnInterface, method string, req interface{}, opts []grpclib.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(jsonCodec{}.Name())}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentifierServiceClient) ValidateIBAN(ctx context.Context, in *ValidateIBANRequest, opts ...grpclib.CallOption) (*ValidationResponse, error) {
	return invoke[ValidationResponse](ctx, c.cc, "ValidateIBAN", in, opts)
}
func (c *IdentifierServiceClient) ExtractIBAN(ctx context.Context, in *ExtractIBANRequest, opts ...grpclib.CallOption) (*ExtractIBANResponse, error) {
	return invoke[ExtractIBANResponse](ctx, c.cc, "ExtractIBAN", in, opts)
}
func (c *IdentifierServiceClient) ComposeIBAN(ctx context.Context, in *ComposeIBANRequest, opts ...grpclib.CallOption) (*ComposeIBANResponse, error) {
	return invoke[ComposeIBANResponse](ctx, c.cc, "ComposeIBAN", in, opts)
}
func (c *IdentifierServiceClient) FormatIBAN(ctx context.Context, in *FormatIBANRequest, opts ...grpclib.CallOption) (*FormatIBANResponse, error) {
	return invoke[FormatIBANResponse](ctx, c.cc, "FormatIBAN", in, opts)
}
func (c *IdentifierServiceClient) ValidateBBAN(ctx context.Context, in *ValidateBBANRequest, opts ...grpclib.CallOption) (*ValidationResponse, error) {
	return invoke[ValidationResponse](ctx, c.cc, "ValidateBBAN", in, opts)
}
func (c *IdentifierServiceClient) ValidateBIC(ctx context.Context, in *ValidateBICRequest, opts ...grpclib.CallOption) (*ValidationResponse, error) {
	return invoke[ValidationResponse](ctx, c.cc, "ValidateBIC", in, opts)
}
func (c *IdentifierServiceClient) ExtractBIC(ctx context.Context, in *ValidateBICRequest, opts ...grpclib.CallOption) (*ExtractBICResponse, error) {
	return invoke[ExtractBICResponse](ctx, c.cc, "ExtractBIC", in, opts)
}
func (c *IdentifierServiceClient) ListCountries(ctx context.Context, in *ListCountriesRequest, opts ...grpclib.CallOption) (*ListCountriesResponse, error) {
	return invoke[ListCountriesResponse](ctx, c.cc, "ListCountries", in, opts)
}
func (c *IdentifierServiceClient) GetCountry(ctx context.Context, in *GetCountryRequest, opts ...grpclib.CallOption) (*GetCountryResponse, error) {
	return invoke[GetCountryResponse](ctx, c.cc, "GetCountry", in, opts)
}
