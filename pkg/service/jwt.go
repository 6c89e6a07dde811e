package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "repair-system/pkg/errors"
)

// Claims — полезная нагрузка токена: кто пользователь и какие города ему доступны.
type Claims struct {
	UserID int64    `json:"user_id"`
	Label  string   `json:"label"`
	Cities []string `json:"cities,omitempty"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID int64, label string, cities []string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	secretKey []byte
	logger    *zap.Logger
}

func NewJWTService(secretKey string, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey: []byte(secretKey),
		logger:    logger,
	}
}

func (s *jwtService) GenerateToken(userID int64, label string, cities []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Label:  label,
		Cities: cities,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Warn("не удалось разобрать токен", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
