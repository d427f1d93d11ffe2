package spotifyauth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/spotifyauth/handler"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
	"github.com/dmitrymomot/spotifyauth/pkg/spotify"
)

// CallbackRequest holds the query parameters Spotify appends to the
// redirect URI.
type CallbackRequest struct {
	Code  string `query:"code"`
	State string `query:"state"`
}

var (
	errStateMismatch = handler.NewHTTPError(http.StatusBadRequest, "State mismatch")
	errMissingCode   = handler.NewHTTPError(http.StatusBadRequest, "Missing authorization code")
)

func (s *Service) callback(ctx handler.Context, req CallbackRequest) handler.Response {
	r, w := ctx.Request(), ctx.ResponseWriter()

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		return handler.JSONError(handler.ErrMethodNotAllowed)
	}

	w.Header().Set("Cache-Control", "no-store")

	// The state is single use: the cookie is cleared whatever the outcome.
	stored, _ := s.cookies.GetUnescaped(r, spotify.StateCookieName)
	s.cookies.Delete(w, spotify.StateCookieName)

	if !spotify.ValidState(stored, req.State) {
		s.logger.WarnContext(ctx, "state mismatch",
			logger.Event("callback"),
			slog.Bool("cookie_present", stored != ""),
			slog.Bool("state_present", req.State != ""),
		)
		return handler.JSONError(errStateMismatch)
	}

	if req.Code == "" {
		s.logger.WarnContext(ctx, "authorization code missing", logger.Event("callback"))
		return handler.JSONError(errMissingCode)
	}

	cfg, err := s.configSource(ctx)
	if err == nil {
		err = cfg.ValidateExchange()
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "spotify configuration missing",
			logger.Event("callback"),
			logger.Error(err),
		)
		return handler.JSONError(&handler.ErrorDetail{Error: "Spotify credentials missing"})
	}

	token, err := s.client(cfg).Exchange(ctx, req.Code)
	if err != nil {
		var reqErr *spotify.RequestError
		if errors.As(err, &reqErr) {
			s.logger.ErrorContext(ctx, "token endpoint rejected the exchange",
				logger.Event("callback"),
				logger.StatusCode(reqErr.StatusCode),
			)
			return handler.JSONError(&handler.ErrorDetail{
				Error:    "Failed to fetch token",
				Details:  reqErr.Body,
				Redirect: cfg.RedirectURL,
			})
		}

		s.logger.ErrorContext(ctx, "token exchange failed",
			logger.Event("callback"),
			logger.Error(err),
		)
		return handler.JSONError(&handler.ErrorDetail{
			Error:   "Token exchange failed",
			Details: err.Error(),
		})
	}

	s.logger.InfoContext(ctx, "token exchange succeeded", logger.Event("callback"))

	return handler.RawJSON(token)
}
