package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// Token已被撤銷（登出）或從未發出
var ErrTokenRevoked = errors.New("token revoked")

// 已發出Token的伺服端紀錄，登出時刪除
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func tokenKey(token string) string {
	return "login_token:" + token
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(token), "1", ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, tokenKey(token)).Err()
}

// 以RSA金鑰簽發與驗證JWT
type Issuer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	store      TokenStore
	ttl        time.Duration
}

func NewIssuer(privateKeyPath, publicKeyPath string, store TokenStore, ttl time.Duration) (*Issuer, error) {
	privateBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, err
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateBytes)
	if err != nil {
		return nil, err
	}

	publicBytes, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, err
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicBytes)
	if err != nil {
		return nil, err
	}

	return &Issuer{
		privateKey: privateKey,
		publicKey:  publicKey,
		store:      store,
		ttl:        ttl,
	}, nil
}

// 簽發時限型Token，subject為使用者名稱，並記錄至TokenStore
func (i *Issuer) Issue(ctx context.Context, username string, role string) (string, error) {
	token := jwt.New(jwt.SigningMethodRS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = username
	claims["role"] = role
	claims["exp"] = time.Now().Add(i.ttl).Unix()

	signed, err := token.SignedString(i.privateKey)
	if err != nil {
		return "", err
	}

	if err := i.store.Save(ctx, signed, i.ttl); err != nil {
		return "", err
	}
	return signed, nil
}

// 驗證Token簽章與存續狀態，回傳使用者名稱與角色
func (i *Issuer) Verify(ctx context.Context, tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return i.publicKey, nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", jwt.ErrTokenSignatureInvalid
	}

	ok, err := i.store.Exists(ctx, tokenString)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", ErrTokenRevoked
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	username, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)

	return username, role, nil
}

// 撤銷Token（登出）
func (i *Issuer) Revoke(ctx context.Context, token string) error {
	return i.store.Delete(ctx, token)
}
