package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/repos"
	"github.com/nvelez/clientbridge-backend/internal/requestdata"
	"github.com/nvelez/clientbridge-backend/internal/types"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *types.StaffView, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	staffRepo    repos.StaffRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, staffRepo repos.StaffRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		staffRepo:    staffRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Login(ctx context.Context, email, password string) (string, *types.StaffView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil, fmt.Errorf("email is required to login")
	}
	if password == "" {
		return "", nil, fmt.Errorf("password is required to login")
	}

	member, err := as.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == repos.ErrNotFound {
			return "", nil, fmt.Errorf("invalid email or password")
		}
		return "", nil, fmt.Errorf("look up staff member: %w", err)
	}
	if !member.Active {
		return "", nil, fmt.Errorf("account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	token, err := as.generateAccessToken(member)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}

	as.log.Info("Staff member logged in", "staff_id", member.ID)
	view := member.View()
	return token, &view, nil
}

func (as *authService) generateAccessToken(member *types.Staff) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   member.ID.String(),
		"email": member.Email,
		"name":  member.FullName(),
		"iat":   now.Unix(),
		"exp":   now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	staffID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject: %w", err)
	}
	member, err := as.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return ctx, fmt.Errorf("token staff member: %w", err)
	}
	if !member.Active {
		return ctx, fmt.Errorf("account is deactivated")
	}

	rd := &requestdata.RequestData{
		StaffID:    member.ID,
		StaffEmail: member.Email,
		StaffName:  member.FullName(),
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
