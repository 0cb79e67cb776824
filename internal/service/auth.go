package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/hash"
	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/tokens"
	"github.com/vendorbuddy/backend/internal/transport"
)

const SessionTTL = 24 * time.Hour

type AuthService struct {
	Repo          *repo.GormRepo
	SessionSecret []byte
	Producer      *mykafka.Producer
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}
	if req.UserType != "vendor" && req.UserType != "supplier" {
		return nil, fmt.Errorf("%w: userType must be vendor or supplier", ErrValidation)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("signup_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Location:     req.Location,
		PasswordHash: pwHash,
		UserType:     req.UserType,
	}

	var supplier *models.Supplier
	if req.UserType == "supplier" {
		supplier = &models.Supplier{
			Name:        req.BusinessName,
			Distance:    "",
			Rating:      0,
			Verified:    false,
			Specialties: []string{},
		}
	}

	if err := s.Repo.CreateUser(ctx, &user, supplier); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return nil, ErrUserExists
		}
		l.Error("signup_error", "reason", "cannot create user", "error", err)
		return nil, err
	}

	event := map[string]interface{}{
		"type":     "user_registered",
		"userID":   user.ID,
		"email":    user.Email,
		"userType": user.UserType,
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicUserEvents, user.ID.String(), event); err != nil {
		l.Warn("kafka_publish_error", "error", err)
	}

	return &user, nil
}

func (s *AuthService) Signin(ctx context.Context, req transport.SigninRequest) (*models.User, string, time.Time, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, ErrNotFound
		}
		l.Error("signin_error", "error", err)
		return nil, "", time.Time{}, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	exp := time.Now().Add(SessionTTL)
	token, err := tokens.NewSessionToken(user.ID, s.SessionSecret, exp)
	if err != nil {
		l.Error("signin_error", "reason", "cannot sign session token", "error", err)
		return nil, "", time.Time{}, err
	}

	return user, token, exp, nil
}

// Me resolves the authenticated caller and the supplier they are linked to,
// if any.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, *uuid.UUID, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return user, user.SupplierID, nil
}
