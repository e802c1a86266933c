// Package connect provides Connect RPC service implementations.
package connect

import (
	"context"
	"crypto/subtle"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
)

const (
	// AdminTokenHeader is the header name for admin authentication token.
	AdminTokenHeader = "X-Admin-Token"
)

var errInvalidAdminToken = errors.New("invalid admin token")

// NewAdminAuthInterceptor creates an interceptor that validates admin tokens
// from request metadata for AdminService methods.
func NewAdminAuthInterceptor(adminToken string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token := req.Header().Get(AdminTokenHeader)
			if token == "" || adminToken == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidAdminToken)
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidAdminToken)
			}
			return next(ctx, req)
		}
	}
}
