package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akomcomputer/shopsuite-backend/api/middleware"
	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	pkgauth "github.com/akomcomputer/shopsuite-backend/pkg/auth"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/security"
)

// SessionWriter issues and revokes admin sessions.
type SessionWriter interface {
	Issue(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

type loginRequest struct {
	PIN       string `json:"pin" validate:"required"`
	StaffName string `json:"staff_name,omitempty" validate:"omitempty,max=120"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthLogin checks the shared admin PIN, mints an access token, and records
// the session. The argon2id hash wins when both PIN forms are configured.
func AuthLogin(cfg config.AuthConfig, sessions SessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ok, err := verifyPIN(cfg, body.PIN)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify pin"))
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid pin"))
			return
		}

		now := time.Now().UTC()
		jti := uuid.NewString()
		token, err := pkgauth.MintAccessToken(cfg, now, pkgauth.AccessTokenPayload{
			StaffName: strings.TrimSpace(body.StaffName),
			JTI:       jti,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token"))
			return
		}

		if sessions != nil {
			if err := sessions.Issue(r.Context(), jti); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "issue session"))
				return
			}
		}

		responses.WriteSuccess(w, loginResponse{
			AccessToken: token,
			ExpiresAt:   now.Add(cfg.SessionTTL()),
		})
	}
}

// AuthLogout revokes the session behind the presented token. Runs behind the
// Auth middleware, so the session id is always in context.
func AuthLogout(sessions SessionWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jti := middleware.SessionIDFromContext(r.Context())
		if jti == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
			return
		}

		if sessions != nil {
			if err := sessions.Revoke(r.Context(), jti); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func verifyPIN(cfg config.AuthConfig, pin string) (bool, error) {
	if cfg.PINHash != "" {
		return security.VerifyPIN(pin, cfg.PINHash)
	}
	return security.ComparePlain(pin, cfg.PIN), nil
}
