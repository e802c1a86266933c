package connect

import (
	"context"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/app/entitlement"
	"github.com/osa030/19player/internal/app/session"
	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
	"github.com/osa030/19player/internal/gen/player/v1/playerv1connect"
)

// AdminService implements the AdminService RPC.
type AdminService struct {
	session *session.Manager
}

// NewAdminService creates a new AdminService.
func NewAdminService(session *session.Manager) *AdminService {
	return &AdminService{session: session}
}

// Ensure AdminService implements the interface.
var _ playerv1connect.AdminServiceHandler = (*AdminService)(nil)

// GetEntitlement reports the entitlement source and its current answer.
func (s *AdminService) GetEntitlement(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.EntitlementResponse], error) {
	return s.entitlementResponse(), nil
}

// SetEntitlement flips a switch entitlement source.
func (s *AdminService) SetEntitlement(
	ctx context.Context,
	req *connect.Request[playerv1.SetEntitlementRequest],
) (*connect.Response[playerv1.EntitlementResponse], error) {
	setter, ok := s.session.Entitlement().(entitlement.Setter)
	if !ok {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			errors.Wrapf(entitlement.ErrUnsupported, "source %s cannot be set", s.sourceName()))
	}

	setter.Set(req.Msg.Entitled)
	zlog.Info().Msgf("admin: entitlement set entitled=%t", req.Msg.Entitled)
	s.session.EntitlementChanged()
	return s.entitlementResponse(), nil
}

// SetSubscriptionToken replaces the subscription token of a token entitlement source.
func (s *AdminService) SetSubscriptionToken(
	ctx context.Context,
	req *connect.Request[playerv1.SetSubscriptionTokenRequest],
) (*connect.Response[playerv1.EntitlementResponse], error) {
	setter, ok := s.session.Entitlement().(entitlement.TokenSetter)
	if !ok {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			errors.Wrapf(entitlement.ErrUnsupported, "source %s does not take tokens", s.sourceName()))
	}

	if err := setter.SetToken(req.Msg.Token); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	zlog.Info().Msgf("admin: subscription token replaced cleared=%t", req.Msg.Token == "")
	s.session.EntitlementChanged()
	return s.entitlementResponse(), nil
}

func (s *AdminService) entitlementResponse() *connect.Response[playerv1.EntitlementResponse] {
	src := s.session.Entitlement()
	resp := &playerv1.EntitlementResponse{Source: s.sourceName()}
	if src != nil {
		resp.Entitled = src.IsEntitled()
	}
	return connect.NewResponse(resp)
}

func (s *AdminService) sourceName() string {
	if src := s.session.Entitlement(); src != nil {
		return src.Name()
	}
	return "none"
}
