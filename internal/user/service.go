package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

var ErrUnauthorized = errors.New("unauthorized")

type UserService interface {
	// FindBySubject resolves an existing user record; callers that must not
	// provision users (reads) depend on the ErrUserNotFound it propagates.
	FindBySubject(ctx context.Context, subjectID string) (*User, error)
	// FindOrCreateFromClaims provisions the user on first authenticated write.
	FindOrCreateFromClaims(ctx context.Context, claims *auth.Claims) (*User, error)
	UpsertFromLogin(ctx context.Context, subjectID, email, name, refreshToken string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) FindBySubject(ctx context.Context, subjectID string) (*User, error) {
	return s.repo.FindBySubject(subjectID)
}

func (s *userService) FindOrCreateFromClaims(ctx context.Context, claims *auth.Claims) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindBySubject(claims.SubjectID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	email := claims.Email
	if email == "" {
		email = "unknown@email.com"
	}
	name := claims.Name
	if name == "" {
		name = "Unknown User"
	}

	u = &User{
		ID:        uuid.New(),
		SubjectID: claims.SubjectID,
		Email:     email,
		Name:      name,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user on first authenticated action")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User created on first authenticated action")
	return u, nil
}

func (s *userService) UpsertFromLogin(ctx context.Context, subjectID, email, name, refreshToken string) (*User, error) {
	log := config.WithContext(ctx)

	encrypted := ""
	if refreshToken != "" {
		var err error
		encrypted, err = config.Encrypt(refreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt refresh token")
			return nil, err
		}
	}

	u, err := s.repo.FindBySubject(subjectID)
	if errors.Is(err, ErrUserNotFound) {
		u = &User{
			ID:        uuid.New(),
			SubjectID: subjectID,
			Email:     email,
			Name:      name,
		}
		if encrypted != "" {
			u.RefreshToken = encrypted
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user on login")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("User created on login")
		return u, nil
	}
	if err != nil {
		return nil, err
	}

	u.Email = email
	u.Name = name
	if encrypted != "" {
		u.RefreshToken = encrypted
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to refresh user on login")
		return nil, err
	}
	return u, nil
}
