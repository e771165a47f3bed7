package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, email, username, role string) (string, error)
}

// AvatarStorer defines an interface for storing avatar images.
type AvatarStorer interface {
	Upload(ctx context.Context, data []byte, contentType string) (url string, key string, err error)
	Delete(ctx context.Context, key string) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	avatars AvatarStorer
	jwt     TokenIssuer
	kafka   KafkaWriter
}

// NewAuthService creates a new AuthService instance. The avatar store and the
// Kafka writer may be nil when the corresponding backends are not configured.
func NewAuthService(reader UserReader, writer UserWriter, avatars AvatarStorer, jwt TokenIssuer, kafka KafkaWriter) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		avatars: avatars,
		jwt:     jwt,
		kafka:   kafka,
	}
}

// Register creates a new user, hashes the password, optionally stores an
// avatar image, and returns the stored user with a freshly issued session
// token. The unique indexes on username and email are the enforcement
// mechanism for uniqueness; the pre-checks only produce friendlier errors.
func (svc *AuthService) Register(ctx context.Context, username, email, role, password string, image []byte) (*models.UserDB, string, error) {
	if role == "" {
		role = models.RoleUser
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := models.UserDB{
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}

	if len(image) > 0 && svc.avatars != nil {
		url, key, err := svc.avatars.Upload(ctx, image, http.DetectContentType(image))
		if err != nil {
			logger.Log.Errorw("failed to upload avatar", "err", err)
			return nil, "", err
		}
		user.AvatarURL = &url
		user.AvatarKey = &key
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		if user.AvatarKey != nil && svc.avatars != nil {
			if delErr := svc.avatars.Delete(ctx, *user.AvatarKey); delErr != nil {
				logger.Log.Errorw("failed to release avatar after failed insert", "err", delErr)
			}
		}
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, saved.UserID, saved.Email, saved.Username, saved.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	publishEvent(ctx, svc.kafka, models.EventUserRegistered, saved.UserID.String(), saved.UserID.String())

	return saved, token, nil
}

// Login authenticates a user by email and password and returns the user with
// a freshly issued session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}
