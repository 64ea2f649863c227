package services

import (
	"context"
	"errors"

	"ecom/models"
	"ecom/repository"

	"golang.org/x/crypto/bcrypt"
)

// 大頭照上限5MiB
const maxPhotoSize = 5 * 1024 * 1024

// Token簽發介面，由jwt套件實作
type TokenIssuer interface {
	Issue(ctx context.Context, username string, role string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type UserService struct {
	users     repository.UserRepository
	addresses repository.AddressRepository
	payments  repository.PaymentMethodRepository
	tokens    TokenIssuer
}

func NewUserService(
	users repository.UserRepository,
	addresses repository.AddressRepository,
	payments repository.PaymentMethodRepository,
	tokens TokenIssuer,
) *UserService {
	return &UserService{
		users:     users,
		addresses: addresses,
		payments:  payments,
		tokens:    tokens,
	}
}

// 註冊新使用者，使用者名稱、信箱與（非空的）電話都不得重複
func (s *UserService) Register(username, email, phone, password string) error {
	exists, err := s.users.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if exists {
		return &ConflictError{Message: "Username already exists"}
	}

	exists, err = s.users.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if exists {
		return &ConflictError{Message: "Email already registered"}
	}

	if phone != "" {
		exists, err = s.users.ExistsByPhone(phone)
		if err != nil {
			return err
		}
		if exists {
			return &ConflictError{Message: "Phone number already registered"}
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Phone:    phone,
		Password: string(hashed),
		Role:     "ROLE_USER",
		FullName: username,
	}
	return s.users.Create(&user)
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserID   uint   `json:"id"`
}

// 依序以使用者名稱、信箱、電話解析登入帳號，取第一個命中者
func (s *UserService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(identifier)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.users.FindByEmail(identifier)
	}
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.users.FindByPhone(identifier)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "User not found"}
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &InvalidCredentialsError{Message: "Invalid password"}
	}

	token, err := s.tokens.Issue(ctx, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		UserID:   user.ID,
	}, nil
}

// 登出即撤銷Token
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "User not found"}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateProfileInput struct {
	Username    string
	FullName    string
	Phone       string
	DateOfBirth string
}

// 變更使用者資料，若要改用的使用者名稱已被其他人使用則衝突
func (s *UserService) UpdateProfile(userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if user.Username != in.Username {
		exists, err := s.users.ExistsByUsername(in.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &ConflictError{Message: "Username already exists"}
		}
	}

	user.Username = in.Username
	user.FullName = in.FullName
	user.Phone = in.Phone
	user.DateOfBirth = in.DateOfBirth

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// 儲存大頭照原始位元組，不做內容驗證也不重新編碼
func (s *UserService) UploadPhoto(userID uint, data []byte) (*models.User, error) {
	if len(data) == 0 {
		return nil, &ValidationError{Message: "File is empty"}
	}
	if len(data) > maxPhotoSize {
		return nil, &ValidationError{Message: "File size exceeds 5MB limit"}
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.ProfilePhoto = data
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetPhoto(userID uint) ([]byte, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if len(user.ProfilePhoto) == 0 {
		return nil, &NotFoundError{Message: "Photo not found"}
	}
	return user.ProfilePhoto, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.FindAll()
}
