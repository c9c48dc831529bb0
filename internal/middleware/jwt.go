package middleware

import (
	"net/http"
	"strings"
	"time"

	"Rateio/config"
	appErrors "Rateio/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

type JwtService struct {
	secret     []byte
	expiration time.Duration
}

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJwtService(cfg config.JWTConfig) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, appErrors.NewAppError("JWT_SECRET_MISSING", "JWT_SECRET não configurado", http.StatusInternalServerError)
	}
	return &JwtService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
	}, nil
}

func (s *JwtService) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(tokenString string) (string, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", appErrors.ErrInvalidToken.WithError(err)
	}
	return claims.Email, nil
}

func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondAuthError(c, appErrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondAuthError(c, appErrors.ErrInvalidToken)
			return
		}

		email, err := jwtSvc.ValidateToken(parts[1])
		if err != nil {
			respondAuthError(c, err)
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}

func respondAuthError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.StatusCode, gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
	c.Abort()
}
