package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Account covers the subscription side of an agent account: the plan
// catalog, the agent's current account, and the subscribe payment call.
//
// ShowUpgradeMessage is the free-tier nudge: it flips on whenever the
// fetched account's plan price parses to zero and stays on until the UI
// dismisses it with HideUpgradeMessage.
type Account struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	plans     *state.Resource[[]model.Plan]
	account   *state.Resource[model.Account]
	subscribe *state.Resource[string]

	mu          sync.Mutex
	showMessage bool
}

func NewAccount(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Account {
	return &Account{
		client:    client,
		tokens:    tokens,
		logger:    logger,
		plans:     state.NewResource[[]model.Plan](nil),
		account:   state.NewResource(model.Account{}),
		subscribe: state.NewResource(""),
	}
}

func (s *Account) FetchPlans(ctx context.Context) error {
	return state.Run(s.plans, "Failed to fetch Plans", func() ([]model.Plan, error) {
		var out []model.Plan
		err := s.client.Get(ctx, endpoints.Plans, &out)
		return out, err
	})
}

func (s *Account) FetchAccount(ctx context.Context) error {
	err := state.Run(s.account, "Failed to fetch Account", func() (model.Account, error) {
		var out model.Account
		err := s.client.Get(ctx, endpoints.Account, &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
	if err != nil {
		return err
	}

	acct := s.account.Snapshot().Data
	if price, perr := strconv.ParseFloat(acct.Plan.Price, 64); perr == nil && price == 0 {
		s.mu.Lock()
		s.showMessage = true
		s.mu.Unlock()
	}
	return nil
}

func (s *Account) Subscribe(ctx context.Context, sub form.SubscribeSubmission) error {
	return state.RunDetail(s.subscribe, "Failed to Subscribe", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.Subscribe, contentType, body, &resp,
			transport.WithBearer(s.tokens.AccessToken()))
		return resp.Detail, status, err
	})
}

func (s *Account) ShowUpgradeMessage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showMessage
}

func (s *Account) HideUpgradeMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMessage = false
}

func (s *Account) Plans() state.Snapshot[[]model.Plan] { return s.plans.Snapshot() }
func (s *Account) Current() state.Snapshot[model.Account] { return s.account.Snapshot() }
func (s *Account) SubscribeResult() state.Snapshot[string] { return s.subscribe.Snapshot() }

func (s *Account) ResetSubscribeResult() { s.subscribe.Reset() }
