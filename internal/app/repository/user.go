package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/utils"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrTokenStoreDisabled = errors.New("token store is not configured")
)

// GetUserByLogin returns user by login
func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.Where("login = ?", login).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser checks uniqueness and creates user; the password is hashed by ds.User.BeforeCreate
func (r *Repository) RegisterUser(user ds.User) (ds.User, error) {
	if user.Login == "" || user.Password == "" {
		return ds.User{}, errors.New("login and password are required")
	}
	_, err := r.GetUserByLogin(user.Login)
	if err == nil {
		return ds.User{}, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.User{}, err
	}
	if user.Role == "" {
		user.Role = ds.RoleCreator
	}
	if err := r.db.Create(&user).Error; err != nil {
		return ds.User{}, err
	}
	// не отдаём пароль наружу
	user.Password = ""
	return user, nil
}

// LoginUser проверяет пароль, выпускает JWT и сохраняет его в Redis
func (r *Repository) LoginUser(ctx context.Context, login, password string) (string, error) {
	if r.redis == nil {
		return "", ErrTokenStoreDisabled
	}
	user, err := r.GetUserByLogin(login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT([]byte(r.jwtKey), user.UserID, user.Role, r.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("jwt sign error: %w", err)
	}
	if err := r.redis.Set(ctx, tokenKey(user.UserID), token, r.tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("save jwt token error: %w", err)
	}
	return token, nil
}

// LogoutUser удаляет активный токен пользователя
func (r *Repository) LogoutUser(ctx context.Context, userID int) error {
	if r.redis == nil {
		return ErrTokenStoreDisabled
	}
	return r.redis.Del(ctx, tokenKey(userID)).Err()
}

// TokenActive сверяет токен с последним выданным для пользователя
func (r *Repository) TokenActive(ctx context.Context, userID int, token string) (bool, error) {
	if r.redis == nil {
		return false, ErrTokenStoreDisabled
	}
	stored, err := r.redis.Get(ctx, tokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func tokenKey(userID int) string {
	return "jwt:" + strconv.Itoa(userID)
}
