package services

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// emailPattern is a light well-formedness check, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ProfileUpdate carries the optional profile fields a user may change.
// Email is deliberately absent: the credential key and the embedded email
// must stay in sync, so email is immutable after registration.
type ProfileUpdate struct {
	Name               *string          `json:"name,omitempty"`
	BusinessName       *string          `json:"businessName,omitempty"`
	Industry           *string          `json:"industry,omitempty"`
	LanguagePreference *models.Language `json:"languagePreference,omitempty"`
	AvatarURL          *string          `json:"avatarUrl,omitempty"`
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	Register(name, email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	UpdateProfile(id string, update ProfileUpdate) (models.User, error)
}

// UserService provides business logic for accounts and credentials.
type UserService struct {
	db            *sql.DB
	notifications NotificationServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, notifications NotificationServiceProvider) *UserService {
	return &UserService{db: db, notifications: notifications}
}

const userColumns = "id, email, name, business_name, industry, language_preference, avatar_url, password_hash, created_at"

// scanUser is a helper to scan a user from a row or rows object.
func scanUser(scanner interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	var businessName, industry, avatarURL sql.NullString

	err := scanner.Scan(
		&user.ID, &user.Email, &user.Name, &businessName, &industry,
		&user.LanguagePreference, &avatarURL, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return user, err
	}

	user.BusinessName = businessName.String
	user.Industry = industry.String
	user.AvatarURL = avatarURL.String
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperror.NotFound("user", id)
		}
		return models.User{}, apperror.Storage("select user", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// getUserByEmail retrieves a user by normalized email, including the password hash.
func (s *UserService) getUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", strings.ToLower(email))
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperror.NotFound("account", email)
		}
		return models.User{}, apperror.Storage("select user", err)
	}
	return user, nil
}

// Register creates a new account. Emails are lowercased before every lookup
// and write, so two registrations differing only in case collide.
func (s *UserService) Register(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(name) < 2 {
		return models.User{}, apperror.ValidationFailed("name", "name must be at least 2 characters")
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, apperror.ValidationFailed("email", "email address is not valid")
	}
	if len(password) < 6 {
		return models.User{}, apperror.ValidationFailed("password", "password must be at least 6 characters")
	}

	var existingID string
	err := s.db.QueryRow("SELECT id FROM users WHERE email = ?", email).Scan(&existingID)
	if err == nil {
		return models.User{}, apperror.Conflict("an account with this email already exists")
	}
	if err != sql.ErrNoRows {
		return models.User{}, apperror.Storage("select user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:                 uuid.New().String(),
		Email:              email,
		Name:               name,
		LanguagePreference: models.LanguageEnglish,
		PasswordHash:       string(hashedPassword),
		CreatedAt:          time.Now().UTC(),
	}

	_, err = s.db.Exec(
		"INSERT INTO users (id, email, name, language_preference, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Name, user.LanguagePreference, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return models.User{}, apperror.Storage("insert user", err)
	}

	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	s.notifications.Notify("success", "Account created successfully! Welcome aboard!", &user.ID)

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. An unknown email and a wrong
// password are distinct failures so the caller can report them separately.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.getUserByEmail(email)
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, apperror.InvalidCredentials()
	}

	s.notifications.Notify("success", fmt.Sprintf("Welcome back, %s!", user.Name), &user.ID)

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile shallow-merges the provided fields into the user's profile.
// The email key and password hash are never touched here.
func (s *UserService) UpdateProfile(id string, update ProfileUpdate) (models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return models.User{}, err
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if len(trimmed) < 2 {
			return models.User{}, apperror.ValidationFailed("name", "name must be at least 2 characters")
		}
		user.Name = trimmed
	}
	if update.BusinessName != nil {
		user.BusinessName = *update.BusinessName
	}
	if update.Industry != nil {
		user.Industry = *update.Industry
	}
	if update.LanguagePreference != nil {
		if !update.LanguagePreference.Valid() {
			return models.User{}, apperror.ValidationFailed("languagePreference", "unsupported language code")
		}
		user.LanguagePreference = *update.LanguagePreference
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}

	_, err = s.db.Exec(
		"UPDATE users SET name = ?, business_name = ?, industry = ?, language_preference = ?, avatar_url = ? WHERE id = ?",
		user.Name, user.BusinessName, user.Industry, user.LanguagePreference, user.AvatarURL, id,
	)
	if err != nil {
		return models.User{}, apperror.Storage("update user", err)
	}

	s.notifications.Notify("success", "Profile updated successfully", &user.ID)
	return user, nil
}
