// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/models"
)

// DefaultSessionLifetime is used when the token carries no exp claim.
const DefaultSessionLifetime = 7 * 24 * time.Hour

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clientAuthService) Login(ctx context.Context, creds models.LoginCredentials) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, clientError(app.MsgLoginFailed, err)
	}

	session, err := s.signIn(ctx, resp)
	if err != nil {
		return models.Session{}, clientError(app.MsgLoginFailed, err)
	}

	return session, nil
}

func (s *clientAuthService) Register(ctx context.Context, data models.RegisterData) (models.Session, error) {
	resp, err := s.adapter.Register(ctx, data)
	if err != nil {
		return models.Session{}, clientError(app.MsgRegistrationFailed, err)
	}

	session, err := s.signIn(ctx, resp)
	if err != nil {
		return models.Session{}, clientError(app.MsgRegistrationFailed, err)
	}

	return session, nil
}

func (s *clientAuthService) Refresh(ctx context.Context) (models.Session, error) {
	resp, err := s.adapter.Refresh(ctx)
	if err == nil {
		var session models.Session
		if session, err = s.signIn(ctx, resp); err == nil {
			return session, nil
		}
	}

	s.logger.Info().Err(err).Msg("session refresh failed, logging out")
	s.Logout(ctx)

	return models.Session{}, clientError(app.MsgSessionExpired, err)
}

func (s *clientAuthService) Logout(ctx context.Context) {
	s.adapter.SetToken("")
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Err(err).Msg("error clearing session")
	}
}

func (s *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return models.Session{}, &ClientError{Message: app.MsgSessionExpired, Err: err}
	}

	if !session.Valid(s.now()) {
		s.Logout(ctx)
		return models.Session{}, ErrNotAuthenticated
	}

	s.adapter.SetToken(session.Token)
	return session, nil
}

// signIn arms the adapter with the token from resp and persists the session.
func (s *clientAuthService) signIn(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	token := resp.AccessToken()
	if token == "" {
		return models.Session{}, ErrNoTokenReturned
	}

	now := s.now()
	expiresAt, err := utils.ParseExpiryFromJWT(token)
	if err != nil {
		expiresAt = now.Add(DefaultSessionLifetime)
	}

	session := models.Session{
		Token:     token,
		User:      resp.User,
		ExpiresAt: expiresAt,
		UpdatedAt: now,
	}
	if err = s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.adapter.SetToken(token)
	return session, nil
}
