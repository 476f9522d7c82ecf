package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tapearn/internal/handlers/earning"
	"github.com/GlebRadaev/tapearn/internal/handlers/energy"
	"github.com/GlebRadaev/tapearn/internal/handlers/syncstatus"
	"github.com/GlebRadaev/tapearn/internal/handlers/user"
	"github.com/GlebRadaev/tapearn/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		EarningService: earning.NewMockService(ctrl),
		EnergyService:  energy.NewMockService(ctrl),
		SyncService:    syncstatus.NewMockService(ctrl),
		UserService:    user.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.EarningHandler)
	assert.NotNil(t, h.EnergyHandler)
	assert.NotNil(t, h.SyncHandler)
	assert.NotNil(t, h.UserHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockEarningHandler := NewMockEarningHandler(ctrl)
	mockEnergyHandler := NewMockEnergyHandler(ctrl)
	mockSyncHandler := NewMockSyncHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)

	mockEarningHandler.EXPECT().Click(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningHandler.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningHandler.EXPECT().ResetPartition(gomock.Any(), gomock.Any()).AnyTimes()
	mockEnergyHandler.EXPECT().SyncBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockEnergyHandler.EXPECT().GetCurrentEnergy(gomock.Any(), gomock.Any()).AnyTimes()
	mockEnergyHandler.EXPECT().GetParameters(gomock.Any(), gomock.Any()).AnyTimes()
	mockSyncHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	mockSyncHandler.EXPECT().Force(gomock.Any(), gomock.Any()).AnyTimes()
	mockSyncHandler.EXPECT().Schedule(gomock.Any(), gomock.Any()).AnyTimes()
	mockSyncHandler.EXPECT().Health(gomock.Any(), gomock.Any()).AnyTimes()
	mockSyncHandler.EXPECT().Statistics(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		EarningHandler: mockEarningHandler,
		EnergyHandler:  mockEnergyHandler,
		SyncHandler:    mockSyncHandler,
		UserHandler:    mockUserHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/users", http.StatusOK},
		{"GET", "/api/users/1", http.StatusOK},
		{"POST", "/api/users/1/clicks", http.StatusOK},
		{"GET", "/api/users/1/earnings/status", http.StatusOK},
		{"GET", "/api/users/1/earnings/summary?date=2024-05-01", http.StatusOK},
		{"POST", "/api/admin/users/1/partitions/2/reset", http.StatusOK},
		{"POST", "/api/users/1/energy", http.StatusOK},
		{"GET", "/api/users/1/energy", http.StatusOK},
		{"GET", "/api/energy/parameters", http.StatusOK},
		{"GET", "/api/sync/status", http.StatusOK},
		{"POST", "/api/sync/force", http.StatusOK},
		{"GET", "/api/sync/schedule", http.StatusOK},
		{"GET", "/api/sync/health", http.StatusOK},
		{"GET", "/api/sync/statistics", http.StatusOK},
		{"GET", "/api/users/1/clicks", http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
