package service

import (
	"errors"

	"dermasilk/config"
	"dermasilk/internal/auth"
	"dermasilk/internal/models"
	"dermasilk/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds  = errors.New("invalid email or password")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type AuthService struct {
	cfg          *config.Config
	operatorRepo *repository.OperatorRepository
}

func NewAuthService(cfg *config.Config, operatorRepo *repository.OperatorRepository) *AuthService {
	return &AuthService{cfg: cfg, operatorRepo: operatorRepo}
}

func (s *AuthService) Login(email, password string) (*models.Operator, string, string, error) {
	op, err := s.operatorRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, op.ID, op.Email)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, op.ID)
	if err != nil {
		return nil, "", "", err
	}
	return op, access, refresh, nil
}

func (s *AuthService) Refresh(refreshToken string) (string, error) {
	id, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	op, err := s.operatorRepo.GetByID(id)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, op.ID, op.Email)
}

func (s *AuthService) ChangePassword(operatorID uint, current, next string) error {
	op, err := s.operatorRepo.GetByID(operatorID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	op.PasswordHash = string(hash)
	return s.operatorRepo.Update(op)
}
