package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/config"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyAuthCode = errors.New("authorization code is required")
	ErrOAuthExchange = errors.New("failed to exchange authorization code")
	ErrOAuthUserInfo = errors.New("failed to fetch google user info")
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type Session struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{repo: repo, oauthConfig: oauthConfig}
}

func NewGoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (s *userService) LoginWithGoogle(ctx context.Context, code string) (*Session, error) {
	log := config.WithContext(ctx)

	if code == "" {
		return nil, ErrEmptyAuthCode
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, ErrOAuthExchange
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, ErrOAuthUserInfo
	}

	u, err := s.upsertUser(ctx, info, token)
	if err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), "user", auth.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), "refresh", auth.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in with Google")
	return &Session{User: u, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, ErrOAuthUserInfo
	}
	return &info, nil
}

func (s *userService) upsertUser(ctx context.Context, info *googleUserInfo, token *oauth2.Token) (*User, error) {
	log := config.WithContext(ctx)

	encryptedAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt Google access token")
		return nil, err
	}
	encryptedRefresh := ""
	if token.RefreshToken != "" {
		if encryptedRefresh, err = config.Encrypt(token.RefreshToken); err != nil {
			log.WithError(err).Error("Failed to encrypt Google refresh token")
			return nil, err
		}
	}

	u, err := s.repo.GetByGoogleID(info.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by Google ID")
		return nil, err
	}

	if u == nil {
		u = &User{
			GoogleID:                    info.ID,
			Email:                       info.Email,
			Name:                        info.Name,
			Picture:                     info.Picture,
			EncryptedGoogleAccessToken:  encryptedAccess,
			EncryptedGoogleRefreshToken: encryptedRefresh,
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		return u, nil
	}

	u.Email = info.Email
	u.Name = info.Name
	u.Picture = info.Picture
	u.EncryptedGoogleAccessToken = encryptedAccess
	if encryptedRefresh != "" {
		u.EncryptedGoogleRefreshToken = encryptedRefresh
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user")
		return nil, err
	}
	return u, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Rejected invalid refresh token")
		return "", auth.ErrNotAuthenticated
	}
	if claims.Role != "refresh" {
		return "", auth.ErrNotAuthenticated
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return auth.GenerateJWT(u.ID.String(), "user", auth.AccessTokenTTL)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
