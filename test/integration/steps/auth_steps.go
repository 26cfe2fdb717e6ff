package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/shoplist/backend/internal/integration/persistence/model"
)

const defaultTestPassword = "Str0ngPass1"

// registerAuthSteps registers user setup and authentication steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user "([^"]*)" exists$`, aUserExists)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I am a catalog administrator$`, iAmACatalogAdministrator)
	ctx.Step(`^a share notification should have been sent to "([^"]*)"$`, aShareNotificationShouldHaveBeenSentTo)
}

// ensureUser registers the named user through the API, once per scenario.
// The username doubles as the local part of the email address.
func (t *TestContext) ensureUser(username string) (*registeredUser, error) {
	if user, ok := t.users[username]; ok {
		return user, nil
	}

	email := username + "@example.com"
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": defaultTestPassword,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(testServer.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to register user %q: %w", username, err)
	}
	defer resp.Body.Close()

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode register response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("registering user %q returned status %d", username, resp.StatusCode)
	}

	user := &registeredUser{
		id:           result.User.ID,
		email:        email,
		accessToken:  result.AccessToken,
		refreshToken: result.RefreshToken,
	}
	t.users[username] = user
	t.vars[username+"ID"] = user.id
	return user, nil
}

func aUserExists(ctx context.Context, username string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.ensureUser(username)
	return err
}

func iAmAuthenticatedAs(ctx context.Context, username string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	user, err := tc.ensureUser(username)
	if err != nil {
		return err
	}
	tc.currentUser = user
	tc.accessToken = user.accessToken
	tc.refreshToken = user.refreshToken
	tc.vars["refreshToken"] = user.refreshToken
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.currentUser = nil
	tc.accessToken = ""
	tc.refreshToken = ""
	return nil
}

// iAmACatalogAdministrator promotes the authenticated user directly in the
// database, since there is no API surface for role changes.
func iAmACatalogAdministrator(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.currentUser == nil {
		return fmt.Errorf("no authenticated user to promote")
	}
	return testDB.DbConn.
		Model(&model.UserModel{}).
		Where("id = ?", tc.currentUser.id).
		Update("role", "admin").Error
}

func aShareNotificationShouldHaveBeenSentTo(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	for _, sent := range emailSender.SentEmails {
		if sent.To == email {
			return nil
		}
	}
	return fmt.Errorf("no notification sent to %q (%d emails sent)", email, len(emailSender.SentEmails))
}
