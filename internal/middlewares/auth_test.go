package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/storyhub/blog-api/internal/models"
	"github.com/storyhub/blog-api/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, res *MockUserResolver)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoCookie",
			mockSetup: func(tok *MockTokener, res *MockUserResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no cookie"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "UnknownOrExpiredToken",
			mockSetup: func(tok *MockTokener, res *MockUserResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				res.EXPECT().UserFromToken(gomock.Any(), "sometoken").
					Return(nil, services.ErrNoSession)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, res *MockUserResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				res.EXPECT().UserFromToken(gomock.Any(), "validtoken").
					Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockResolver := NewMockUserResolver(ctrl)
			tt.mockSetup(mockTokener, mockResolver)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user := UserFromContext(r.Context())
				assert.NotNil(t, user)
				assert.Equal(t, "alice", user.Username)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockResolver)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, UserFromContext(req.Context()))
}
