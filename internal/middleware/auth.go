package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/pkg/authenticator"
	"github.com/questx-lab/questlog/pkg/errorx"
	"github.com/questx-lab/questlog/pkg/router"
	"github.com/questx-lab/questlog/pkg/xcontext"
)

type AuthVerifier struct {
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
	required          bool
}

func NewAuthVerifier(accessTokenEngine authenticator.TokenEngine[model.AccessToken]) *AuthVerifier {
	return &AuthVerifier{accessTokenEngine: accessTokenEngine}
}

// Required rejects requests without an access token instead of treating them as anonymous
// players.
func (a *AuthVerifier) Required() *AuthVerifier {
	a.required = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		token := getAccessToken(ctx, r)
		if token == "" {
			if a.required {
				return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
			}

			return ctx, nil
		}

		info, err := a.accessTokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithViewer(ctx, model.Viewer{UserID: info.ID, IsGM: info.IsGM}), nil
	}
}

func getAccessToken(ctx context.Context, r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
