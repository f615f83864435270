package conf

import (
	middleware "estate_erp/internal/middleware/grpc"

	"google.golang.org/grpc"
)

// NewUnaryInterceptors creates the interceptor chain for the gRPC health endpoint.
func NewUnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		middleware.NewUnaryTimeoutInterceptor(nil),
		middleware.UnaryPanicInterceptor,
	}
}
