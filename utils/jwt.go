// file: utils/jwt.go
package utils

import (
	"log"
	"os"
	"time"

	"GOTCTF/models"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJWT 从环境变量加载签名密钥，不提供编译期默认值
func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

type Claims struct {
	TeamID   uint32          `json:"team_id"`
	TeamName string          `json:"team_name"`
	Role     models.TeamRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(team models.Team) (string, error) {
	claims := Claims{
		TeamID:   team.ID,
		TeamName: team.TeamName,
		Role:     team.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
