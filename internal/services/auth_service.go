package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/infra/mailer"
	"storefront-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidCredentials = errors.New("invalid credentials or unverified email")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrEmailNotFound      = errors.New("email not found")
)

var phoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)

const tokenTTL = time.Hour

type AuthService struct {
	users       repository.UserRepository
	mailer      mailer.Mailer
	jwtSecret   []byte
	frontendURL string
	log         *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, m mailer.Mailer, jwtSecret []byte, frontendURL string, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		users:       users,
		mailer:      m,
		jwtSecret:   jwtSecret,
		frontendURL: frontendURL,
		log:         log,
	}
}

func (s *AuthService) Signup(ctx context.Context, name, email, phone, password string) error {
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	code := strconv.Itoa(1000 + rand.Intn(9000))
	expiry := time.Now().Add(tokenTTL)
	user := &domain.User{
		Name:                   name,
		Email:                  email,
		Phone:                  phone,
		Password:               string(hash),
		VerificationCode:       code,
		VerificationCodeExpiry: &expiry,
		Role:                   domain.RoleUser,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	body := fmt.Sprintf("<p>Your verification code is: <strong>%s</strong></p>", code)
	if err := s.mailer.Send(email, "Verify Your Email", body); err != nil {
		s.log.Errorw("failed to send verification mail", "email", email, "error", err)
		return err
	}
	return nil
}

func (s *AuthService) Verify(ctx context.Context, code string) error {
	user, err := s.users.FindByVerificationCode(ctx, code)
	if err != nil {
		return err
	}
	if user == nil || user.VerificationCodeExpiry == nil || user.VerificationCodeExpiry.Before(time.Now()) {
		return ErrInvalidToken
	}

	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationCodeExpiry = nil
	return s.users.Update(ctx, user)
}

// SignIn accepts the account email or display name as username.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmailOrName(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.IsVerified {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrEmailNotFound
	}

	token := uuid.NewString()
	expiry := time.Now().Add(tokenTTL)
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/createnewpassword?token=%s", s.frontendURL, token)
	body := fmt.Sprintf("<p>Click the link to reset your password: <a href=%q>%s</a></p>", link, link)
	if err := s.mailer.Send(email, "Password Reset Request", body); err != nil {
		s.log.Errorw("failed to send reset mail", "email", email, "error", err)
		return err
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	return s.users.Update(ctx, user)
}

func (s *AuthService) Profile(ctx context.Context, id uint64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, id uint64, name, phone string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		if !phoneRe.MatchString(phone) {
			return nil, ErrInvalidPhone
		}
		user.Phone = phone
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, id uint64, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.users.Update(ctx, user)
}
