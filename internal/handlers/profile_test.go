package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &models.Account{ID: 1}

	tests := []struct {
		name           string
		mockSetup      func(m *MockProfileGetter)
		expectedStatus int
	}{
		{
			name: "found",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.Profile{ID: 3, AccountID: 1, Name: strPtr("Alice")}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, services.ErrProfileNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "failure",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockProfileGetter(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req = req.WithContext(middlewares.WithAccount(req.Context(), account))
			w := httptest.NewRecorder()

			NewGetProfileHandler(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, float64(1), resp["user_id"])
				assert.Equal(t, "Alice", resp["name"])
				assert.Nil(t, resp["skills"])
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &models.Account{ID: 1}

	t.Run("partial update", func(t *testing.T) {
		svc := NewMockProfileUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), account, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.Account, upd models.ProfileUpdate) (*models.Profile, error) {
				assert.False(t, upd.Name.Set)
				require.True(t, upd.Skills.Set)
				require.NotNil(t, upd.Skills.Value)
				assert.Equal(t, "Go", *upd.Skills.Value)
				return &models.Profile{ID: 3, AccountID: 1, Skills: upd.Skills.Value}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"skills":"Go"}`))
		req = req.WithContext(middlewares.WithAccount(req.Context(), account))
		w := httptest.NewRecorder()

		NewUpdateProfileHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"skills":"Go"`)
	})

	t.Run("null clears a field", func(t *testing.T) {
		svc := NewMockProfileUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), account, models.ProfileUpdate{Education: models.ClearString()}).
			Return(&models.Profile{ID: 3, AccountID: 1}, nil)

		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"education":null}`))
		req = req.WithContext(middlewares.WithAccount(req.Context(), account))
		w := httptest.NewRecorder()

		NewUpdateProfileHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"education":null`)
	})

	t.Run("missing profile", func(t *testing.T) {
		svc := NewMockProfileUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), account, gomock.Any()).Return(nil, services.ErrProfileNotFound)

		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"name":"A"}`))
		req = req.WithContext(middlewares.WithAccount(req.Context(), account))
		w := httptest.NewRecorder()

		NewUpdateProfileHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Profile not found"}`, w.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		svc := NewMockProfileUpdater(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(`{"name":5}`))
		req = req.WithContext(middlewares.WithAccount(req.Context(), account))
		w := httptest.NewRecorder()

		NewUpdateProfileHandler(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
