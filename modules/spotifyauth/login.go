package spotifyauth

import (
	"github.com/dmitrymomot/spotifyauth/handler"
	"github.com/dmitrymomot/spotifyauth/pkg/cookie"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
	"github.com/dmitrymomot/spotifyauth/pkg/spotify"
)

// LoginRequest is empty; login takes no input.
type LoginRequest struct{}

func (s *Service) login(ctx handler.Context, _ LoginRequest) handler.Response {
	cfg, err := s.configSource(ctx)
	if err == nil {
		err = cfg.ValidateAuthorize()
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "spotify configuration missing",
			logger.Event("login"),
			logger.Error(err),
		)
		return handler.JSONError(&handler.ErrorDetail{Error: "Spotify environment variables missing."})
	}

	state, err := spotify.GenerateState()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate state",
			logger.Event("login"),
			logger.Error(err),
		)
		return handler.JSONError(&handler.ErrorDetail{Error: "Failed to generate state"})
	}

	s.cookies.Set(ctx.ResponseWriter(), spotify.StateCookieName, state,
		cookie.WithMaxAge(spotify.StateMaxAge),
	)

	s.logger.DebugContext(ctx, "redirecting to spotify authorization", logger.Event("login"))

	return handler.Redirect(s.client(cfg).AuthCodeURL(state))
}
