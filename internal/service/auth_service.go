package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// SeedOwner creates the owner account or resets its password.
	SeedOwner(ctx context.Context, email, password, fullName string) (*entity.Owner, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTL time.Duration) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owner, err := uow.OwnerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"user_id": owner.Id.String(),
		"role":    string(owner.Role),
		"exp":     expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Owner: dto.OwnerDTO{
			Id:       owner.Id,
			Email:    owner.Email,
			FullName: owner.FullName,
			Role:     string(owner.Role),
		},
	}, nil
}

func (s *authService) SeedOwner(ctx context.Context, email, password, fullName string) (*entity.Owner, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || len(password) < 8 {
		return nil, errors.New("owner seed needs an email and a password of at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.OwnerRepository()

	owner, err := repo.FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if owner != nil {
		owner.PasswordHash = string(hash)
		if fullName != "" {
			owner.FullName = fullName
		}
		if err := repo.Update(ctx, owner); err != nil {
			return nil, err
		}
		return owner, nil
	}

	owner = &entity.Owner{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         entity.OwnerRoleAdmin,
	}
	if err := repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}
