// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/shoplist/backend/config"
	"github.com/shoplist/backend/internal/infra/dependency"
	"github.com/shoplist/backend/internal/integration/email"
	"github.com/shoplist/backend/internal/integration/persistence/model"
	"github.com/shoplist/backend/test/integration/mock"
)

// Shared server state. The server is started once and reused across
// scenarios; the database and redis are wiped between scenarios instead.
var (
	serverOnce  sync.Once
	testServer  *httptest.Server
	testDB      *mock.Db
	emailSender *email.MockEmailSender
)

// registeredUser holds the credentials of a user created through the API.
type registeredUser struct {
	id           string
	email        string
	accessToken  string
	refreshToken string
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string
	users        map[string]*registeredUser
	currentUser  *registeredUser

	// Values captured from responses, referenced as {name} in later steps
	vars map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// startServer boots the full application once, wired against the shared
// in-memory database, miniredis and a mock email sender.
func startServer() {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")

		cfg := config.Load()

		testDB = mock.NewDb(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CatalogItemModel{},
			&model.ShoppingListModel{},
			&model.ProductEntryModel{},
			&model.ShareGrantModel{},
		)
		emailSender = email.NewMockEmailSender()

		injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis(), emailSender)
		engine := injector.Router.Setup("test")
		testServer = httptest.NewServer(engine)
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startServer()
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		startServer()
		if err := testDB.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		emailSender.Reset()

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			users:          make(map[string]*registeredUser),
			vars:           make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerAuthSteps(ctx)
	registerResponseSteps(ctx)
}
