package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/handlers"
	"github.com/GlebRadaev/tapearn/internal/handlers/earning"
	"github.com/GlebRadaev/tapearn/internal/handlers/energy"
	"github.com/GlebRadaev/tapearn/internal/handlers/syncstatus"
	"github.com/GlebRadaev/tapearn/internal/handlers/user"
	"github.com/GlebRadaev/tapearn/internal/service"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestRouterAppliesCORS() {
	ctrl := gomock.NewController(s.T())
	energyService := energy.NewMockService(ctrl)

	s.app.cfg = &config.Config{CORSOrigins: []string{"https://app.example"}}
	s.app.api = handlers.New(&service.Services{
		EarningService: earning.NewMockService(ctrl),
		EnergyService:  energyService,
		SyncService:    syncstatus.NewMockService(ctrl),
		UserService:    user.NewMockService(ctrl),
	})
	router := s.app.router()

	req := httptest.NewRequest(http.MethodOptions, "/api/energy/parameters", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Equal("https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/energy/parameters", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
}
