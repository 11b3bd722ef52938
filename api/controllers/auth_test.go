package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pkgauth "github.com/akomcomputer/shopsuite-backend/pkg/auth"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/security"
)

type fakeSessions struct {
	issued  []string
	revoked []string
	err     error
}

func (f *fakeSessions) Issue(_ context.Context, accessID string) error {
	if f.err != nil {
		return f.err
	}
	f.issued = append(f.issued, accessID)
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, accessID)
	return nil
}

func loginConfig() config.AuthConfig {
	return config.AuthConfig{
		PIN:               "123456",
		JWTSecret:         "test-secret",
		JWTIssuer:         "shopsuite-test",
		ExpirationMinutes: 30,
	}
}

func postLogin(t *testing.T, handler http.HandlerFunc, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthLoginIssuesTokenAndSession(t *testing.T) {
	cfg := loginConfig()
	sessions := &fakeSessions{}
	handler := AuthLogin(cfg, sessions, nil)

	rec := postLogin(t, handler, `{"pin":"123456","staff_name":"Akom"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sessions.issued, 1)

	var envelope struct {
		Data loginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)

	claims, err := pkgauth.ParseAccessToken(cfg, envelope.Data.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "Akom", claims.StaffName)
	require.Equal(t, sessions.issued[0], claims.ID)
}

func TestAuthLoginRejectsWrongPIN(t *testing.T) {
	sessions := &fakeSessions{}
	handler := AuthLogin(loginConfig(), sessions, nil)

	rec := postLogin(t, handler, `{"pin":"999999"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, sessions.issued)
}

func TestAuthLoginRejectsMissingPIN(t *testing.T) {
	handler := AuthLogin(loginConfig(), &fakeSessions{}, nil)

	rec := postLogin(t, handler, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthLoginHashWinsOverPlain(t *testing.T) {
	hash, err := security.HashPIN("654321")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}

	cfg := loginConfig()
	cfg.PINHash = hash

	handler := AuthLogin(cfg, &fakeSessions{}, nil)

	// The plain PIN no longer works once a hash is configured.
	rec := postLogin(t, handler, `{"pin":"123456"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postLogin(t, handler, `{"pin":"654321"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}
