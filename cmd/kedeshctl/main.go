// kedeshctl is a small console front end over the SDK: it signs in with
// the credentials from the environment, walks the public search, and
// prints what it finds. It doubles as a smoke test against a live backend.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seranise/kedesh-go/internal/config"
	"github.com/seranise/kedesh-go/internal/query"
	"github.com/seranise/kedesh-go/internal/session"
	"github.com/seranise/kedesh-go/internal/store"
	"github.com/seranise/kedesh-go/internal/token"
	"github.com/seranise/kedesh-go/internal/transport"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	tokens, err := newTokenStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token store")
	}

	opts := []transport.Option{transport.WithLogger(log.Logger)}
	if cfg.RequestTimeoutSeconds > 0 {
		opts = append(opts, transport.WithTimeout(cfg.RequestTimeout()))
	}
	if cfg.WithCredentials {
		opts = append(opts, transport.WithCredentials())
	}
	client := transport.New(cfg.BaseURL, opts...)

	st := store.New(client, tokens, log.Logger,
		session.WithLoginPath(cfg.LoginPath),
		session.WithRedirect(func(path string) {
			log.Warn().Str("path", path).Msg("session expired, sign in again")
		}),
	)

	ctx := context.Background()

	username := os.Getenv("KEDESH_USERNAME")
	password := os.Getenv("KEDESH_PASSWORD")
	if username != "" {
		if err := st.Session.SignIn(ctx, session.Credentials{Username: username, Password: password}); err != nil {
			sess := st.Session.Snapshot()
			log.Fatal().Str("error", sess.Error).Int("code", sess.ErrorCode).Msg("sign-in failed")
		}
		sess := st.Session.Snapshot()
		log.Info().Str("user", sess.User.FullName).Bool("authenticated", sess.IsAuthenticated).Msg("signed in")
	}

	if err := st.Locations.FetchRegions(ctx); err != nil {
		log.Fatal().Str("error", st.Locations.Regions().Error).Msg("failed to fetch regions")
	}
	regions := st.Locations.Regions().Data
	log.Info().Int("count", len(regions)).Msg("regions fetched")

	if len(regions) > 0 {
		st.Houses.Filter.SetRegion(query.S(regions[0].Name))
	}
	if err := st.Houses.FetchFiltered(ctx); err != nil {
		log.Fatal().Str("error", st.Houses.Filtered().Error).Msg("failed to fetch houses")
	}
	houses := st.Houses.Filtered().Data
	log.Info().Int("count", houses.Count).Msg("houses matched")
	for _, h := range houses.Results {
		log.Info().
			Str("property_id", h.PropertyID).
			Str("category", string(h.Category)).
			Str("price", h.Price).
			Str("region", h.Location.Region).
			Msg("house")
	}

	// Follow the server's cursor for one more page, if there is one.
	if houses.Next != nil {
		if page, ok := query.PageFromURL(*houses.Next); ok {
			st.Houses.SetPage(query.S(page))
			if err := st.Houses.FetchFiltered(ctx); err != nil {
				log.Fatal().Str("error", st.Houses.Filtered().Error).Msg("failed to fetch next page")
			}
			log.Info().Str("page", page).Int("results", len(st.Houses.Filtered().Data.Results)).Msg("next page fetched")
		}
	}

	if st.Session.Snapshot().IsAuthenticated {
		if err := st.Houses.FetchList(ctx); err != nil {
			log.Fatal().Str("error", st.Houses.List().Error).Msg("failed to fetch own listings")
		}
		log.Info().Int("count", st.Houses.List().Data.Count).Msg("own houses fetched")

		if detail, err := st.Session.SignOutRequest(ctx); err == nil {
			log.Info().Str("detail", detail).Msg("signed out")
		}
	}
}

func newTokenStore(cfg *config.Config) (token.Store, error) {
	switch cfg.TokenStore {
	case config.StoreFile:
		return token.NewFileStore(cfg.TokenFile), nil
	case config.StoreRedis:
		return token.NewRedisStore(cfg.RedisURL, "kedesh:tokens")
	default:
		return token.NewMemoryStore(), nil
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
