package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Registration submits new agent sign-ups. Public; the account only gains
// a bearer after the first sign-in.
type Registration struct {
	client *transport.Client
	logger zerolog.Logger

	result *state.Resource[string]
}

func NewRegistration(client *transport.Client, logger zerolog.Logger) *Registration {
	return &Registration{
		client: client,
		logger: logger,
		result: state.NewResource(""),
	}
}

func (s *Registration) Register(ctx context.Context, sub form.RegistrationSubmission) error {
	return state.RunDetail(s.result, "Registration failed, please try again later or contact support team",
		func() (string, int, error) {
			contentType, body, err := sub.Encode(s.logger)
			if err != nil {
				return "", 0, err
			}
			var resp detailResponse
			status, err := s.client.PostMultipartWithStatus(ctx, endpoints.AgentRegistration, contentType, body, &resp)
			return resp.Detail, status, err
		})
}

func (s *Registration) Result() state.Snapshot[string] { return s.result.Snapshot() }

func (s *Registration) ResetResult() { s.result.Reset() }
