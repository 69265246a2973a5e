package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/storyhub/blog-api/internal/models"
	"github.com/storyhub/blog-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	tests := []struct {
		name         string
		username     string
		password     string
		image        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		tokenErr     error
		sessionErr   error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			image:    "avatars/alice.png",
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 7, Username: "bob"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:     "token generation error",
			username: "dan",
			password: "pass123",
			tokenErr: errors.New("entropy error"),
			wantErr:  errors.New("entropy error"),
		},
		{
			name:       "session save error",
			username:   "fred",
			password:   "pass123",
			sessionErr: errors.New("session error"),
			wantErr:    errors.New("session error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				created := &models.UserDB{ID: 1, Username: tt.username, Image: tt.image, PasswordHash: "irrelevant"}
				if tt.writerErr != nil {
					created = nil
				}
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.image, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// The stored hash must verify against the plaintext
						// and never equal it.
						assert.NotEqual(t, tt.password, hash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						created.PasswordHash = hash
						return created, nil
					})

				if tt.writerErr == nil {
					mockTokens.EXPECT().
						GenerateToken(gomock.Any()).
						Return("session-token", tt.tokenErr)

					if tt.tokenErr == nil {
						mockSessions.EXPECT().
							Save(gomock.Any(), "session-token", created.ID).
							DoAndReturn(func(_ context.Context, token string, userID int64) (*models.SessionDB, error) {
								if tt.sessionErr != nil {
									return nil, tt.sessionErr
								}
								return &models.SessionDB{ID: 1, Token: token, UserID: userID}, nil
							})
					}
				}
			}

			user, token, err := svc.Register(context.Background(), tt.username, tt.password, tt.image)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, "session-token", token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		tokenErr  error
		wantErr   error
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)},
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{ID: 2, Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "token generation error",
			username:  "dan",
			user:      &models.UserDB{ID: 3, Username: "dan", PasswordHash: string(hashed)},
			tokenErr:  errors.New("entropy error"),
			wantErr:   errors.New("entropy error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockTokens.EXPECT().
					GenerateToken(gomock.Any()).
					Return("fresh-token", tt.tokenErr)

				if tt.tokenErr == nil {
					mockSessions.EXPECT().
						Save(gomock.Any(), "fresh-token", tt.user.ID).
						Return(&models.SessionDB{ID: 1, Token: "fresh-token", UserID: tt.user.ID}, nil)
				}
			}

			user, token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, "fresh-token", token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	t.Run("existing session", func(t *testing.T) {
		mockSessions.EXPECT().
			DeleteByToken(gomock.Any(), "token-1").
			Return(&models.SessionDB{ID: 1, Token: "token-1"}, nil)

		err := svc.Logout(context.Background(), "token-1")
		assert.NoError(t, err)
	})

	t.Run("unknown token is not an error", func(t *testing.T) {
		mockSessions.EXPECT().
			DeleteByToken(gomock.Any(), "unknown").
			Return(nil, nil)

		err := svc.Logout(context.Background(), "unknown")
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockSessions.EXPECT().
			DeleteByToken(gomock.Any(), "token-2").
			Return(nil, errors.New("db error"))

		err := svc.Logout(context.Background(), "token-2")
		assert.EqualError(t, err, "db error")
	})
}

func TestAuthService_UserFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessionWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	t.Run("valid token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByValidSessionToken(gomock.Any(), "good-token").
			Return(&models.UserDB{ID: 1, Username: "alice", PasswordHash: "hash"}, nil)

		user, err := svc.UserFromToken(context.Background(), "good-token")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("expired or unknown token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByValidSessionToken(gomock.Any(), "stale-token").
			Return(nil, nil)

		user, err := svc.UserFromToken(context.Background(), "stale-token")
		assert.ErrorIs(t, err, services.ErrNoSession)
		assert.Nil(t, user)
	})

	t.Run("repository error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByValidSessionToken(gomock.Any(), "any-token").
			Return(nil, errors.New("db error"))

		user, err := svc.UserFromToken(context.Background(), "any-token")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, user)
	})
}
