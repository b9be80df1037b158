package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ownerSubject is the subject claim of every issued token. The list has a
// single owner, so there is nothing else to identify.
const ownerSubject = "owner"

type authServiceImpl struct {
	logger         zerolog.Logger
	passwordHash   string
	jwtIssuer      string
	jwtSigningKey  []byte
	accessTokenTTL time.Duration
}

func NewAuthService(
	logger zerolog.Logger,
	passwordHash string,
	jwtIssuer string,
	jwtSigningKey []byte,
	accessTokenTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		logger:         logger,
		passwordHash:   passwordHash,
		jwtIssuer:      jwtIssuer,
		jwtSigningKey:  jwtSigningKey,
		accessTokenTTL: accessTokenTTL,
	}
}

func (s *authServiceImpl) Enabled() bool {
	return s.passwordHash != ""
}

func (s *authServiceImpl) Login(password string) (*LoginResult, error) {
	if !s.Enabled() {
		s.logger.Warn().Msg("login attempted while auth is disabled")
		return nil, ErrAuthDisabled
	}

	match, err := argon2id.ComparePasswordAndHash(password, s.passwordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().Msg("passwords do not match")
		return nil, ErrPasswordMismatch
	}

	accessToken, expiresAt, err := s.generateAccessToken()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate access token")
		return nil, err
	}

	s.logger.Info().
		Time("expires_at", expiresAt).
		Msg("logged in")
	return &LoginResult{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authServiceImpl) ParseToken(token string) (*jwt.RegisteredClaims, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithSubject(ownerSubject),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token is expired: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}
	return claims, nil
}

func (s *authServiceImpl) generateAccessToken() (string, time.Time, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.accessTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        tokenUUID.String(),
		Issuer:    s.jwtIssuer,
		Subject:   ownerSubject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
