// Package session owns the credential pair, the identity derived from the
// access token, and the authentication flag every other operation depends
// on.
//
// The authentication invariant matches the production web client: a session
// is authenticated iff an access token exists AND the decoded is_superuser
// claim is false. The superuser claim disqualifying the agent-portal role
// looks inverted, but it is the behavior the backend expects and is
// preserved, not fixed. A failed decode likewise yields a user with
// IsSuperuser true, keeping the session unauthenticated.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/apierror"
	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/token"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Fixed messages of the sign-in failure taxonomy. The backend's arbitrary
// error shapes collapse into these cases; the UI never needs more detail
// than the conventional envelopes carry.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Something went wrong on the server"
	msgSessionExpired     = "Session expired. Please sign in again."
	msgDecodeFailed       = "Failed to decode token."
	msgNoRefreshToken     = "No refresh token found"
	msgSignOutFailed      = "Failed to sign out"
)

// User is the display identity decoded from the access token.
type User struct {
	FullName    string
	Email       string
	IsSuperuser bool
}

// Session is the externally visible auth state.
type Session struct {
	Tokens          token.Credentials
	User            User
	IsAuthenticated bool
	Loading         bool
	Error           string
	ErrorCode       int
}

// Credentials is the sign-in request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signInResponse is the sign-in envelope. The keys differ from the
// persisted-storage layout: the backend answers access/refresh, storage
// keeps access_token/refresh_token.
type signInResponse struct {
	Tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"tokens"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Manager drives the session lifecycle and implements the transport
// auth-failure hook.
type Manager struct {
	client     *transport.Client
	store      token.Store
	returnPath *token.ReturnPath
	redirect   func(path string)
	loginPath  string
	logger     zerolog.Logger
	now        func() time.Time

	mu    sync.Mutex
	state Session
}

type Option func(*Manager)

// WithRedirect sets the navigation hook invoked on forced teardown; the
// view layer maps it to a location change.
func WithRedirect(fn func(path string)) Option {
	return func(m *Manager) { m.redirect = fn }
}

func WithLoginPath(path string) Option {
	return func(m *Manager) { m.loginPath = path }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func WithReturnPath(rp *token.ReturnPath) Option {
	return func(m *Manager) { m.returnPath = rp }
}

// WithClock overrides time for expiry checks; used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager hydrates the session from the persisted store: tokens are
// loaded and the access token decoded best-effort. Nothing here fails hard;
// any problem degrades to an anonymous session.
func NewManager(client *transport.Client, store token.Store, opts ...Option) *Manager {
	m := &Manager{
		client:     client,
		store:      store,
		returnPath: &token.ReturnPath{},
		redirect:   func(string) {},
		loginPath:  "/login",
		logger:     zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	creds, err := store.Load()
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to load persisted tokens")
		creds = token.Credentials{}
	}

	user := restoreUser(creds.Access)
	m.state = Session{
		Tokens:          creds,
		User:            user,
		IsAuthenticated: creds.Access != "" && !user.IsSuperuser,
	}
	return m
}

// restoreUser decodes the persisted access token. Absent or undecodable
// tokens produce the anonymous record with IsSuperuser set, which keeps
// IsAuthenticated false.
func restoreUser(access string) User {
	if access == "" {
		return User{IsSuperuser: true}
	}
	claims, err := DecodeClaims(access)
	if err != nil {
		return User{IsSuperuser: true}
	}
	return User{
		FullName:    claims.FullName,
		Email:       claims.Email,
		IsSuperuser: claims.IsSuperuser,
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// AccessToken returns the current access token for per-call bearer
// attachment.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Tokens.Access
}

// ReturnPath exposes the post-login return-navigation slot.
func (m *Manager) ReturnPath() *token.ReturnPath {
	return m.returnPath
}

// SignIn posts the credentials and, on success, persists both tokens and
// derives the user identity from the access token's claims. Failures are
// classified into the fixed taxonomy: 400 surfaces the first non-field
// error, 500 a generic server message, anything else invalid credentials.
func (m *Manager) SignIn(ctx context.Context, creds Credentials) error {
	m.mu.Lock()
	m.state.Loading = true
	m.state.Error = ""
	m.state.ErrorCode = 0
	m.mu.Unlock()

	var resp signInResponse
	err := m.client.Post(ctx, endpoints.Login, creds, &resp)
	if err != nil {
		status := apierror.StatusCode(err)
		msg := msgInvalidCredentials
		switch status {
		case 400:
			if apiErr, ok := apierror.As(err); ok && len(apiErr.NonFieldErrors) > 0 {
				msg = apiErr.NonFieldErrors[0]
			}
		case 500:
			msg = msgServerError
		}

		m.logger.Warn().Int("status", status).Msg("sign-in failed")

		m.mu.Lock()
		m.state.Loading = false
		m.state.Error = msg
		m.state.ErrorCode = status
		m.mu.Unlock()
		return err
	}

	tokens := token.Credentials{Access: resp.Tokens.Access, Refresh: resp.Tokens.Refresh}
	if err := m.store.Save(tokens); err != nil {
		m.logger.Error().Err(err).Msg("failed to persist tokens")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	m.state.Tokens = tokens

	if tokens.Access == "" {
		return nil
	}

	claims, err := DecodeClaims(tokens.Access)
	if err != nil {
		m.state.Error = msgDecodeFailed
		return nil
	}

	m.state.User = User{
		FullName:    claims.FullName,
		Email:       claims.Email,
		IsSuperuser: claims.IsSuperuser,
	}
	m.state.IsAuthenticated = !claims.IsSuperuser

	if claims.ExpiresAt != nil && !m.now().Before(claims.ExpiresAt.Time) {
		m.state.Error = msgSessionExpired
	}
	return nil
}

// SignOutRequest revokes the refresh token server-side. Local state is
// cleared only when the remote call succeeds; a failed call records the
// error and leaves the possibly stale tokens in place, the same way the
// web client does. SignOut remains the local fallback.
func (m *Manager) SignOutRequest(ctx context.Context) (string, error) {
	m.mu.Lock()
	refresh := m.state.Tokens.Refresh
	access := m.state.Tokens.Access
	if refresh == "" {
		m.state.Error = msgNoRefreshToken
		m.mu.Unlock()
		return "", errors.New(msgNoRefreshToken)
	}
	m.state.Loading = true
	m.mu.Unlock()

	contentType, body, err := form.SignOutSubmission{Refresh: refresh}.Encode(m.logger)
	if err != nil {
		m.mu.Lock()
		m.state.Loading = false
		m.state.Error = msgSignOutFailed
		m.mu.Unlock()
		return "", err
	}

	var resp detailResponse
	err = m.client.PostMultipart(ctx, endpoints.SignOut, contentType, body, &resp, transport.WithBearer(access))
	if err != nil {
		m.logger.Warn().Err(err).Msg("remote sign-out failed")
		m.mu.Lock()
		m.state.Loading = false
		m.state.Error = msgSignOutFailed
		m.mu.Unlock()
		return "", err
	}

	m.mu.Lock()
	m.state = Session{}
	m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		m.logger.Error().Err(err).Msg("failed to clear persisted tokens")
	}
	return resp.Detail, nil
}

// SignOut clears the session locally and wipes persisted storage,
// independent of any network call.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.state = Session{}
	m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		m.logger.Error().Err(err).Msg("failed to clear persisted tokens")
	}
}

// HandleAuthFailure is the transport interceptor hook: it records where the
// application was, tears the session down, and navigates to the login
// route. It runs for any 401/403 response, whichever operation triggered
// it.
func (m *Manager) HandleAuthFailure(currentPath string) {
	m.returnPath.Set(currentPath)
	m.logger.Warn().Str("path", currentPath).Msg("session torn down after auth failure")

	m.mu.Lock()
	m.state = Session{}
	m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		m.logger.Error().Err(err).Msg("failed to clear persisted tokens")
	}

	m.redirect(m.loginPath)
}
