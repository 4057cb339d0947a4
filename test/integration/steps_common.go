package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/pressroom/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	tokens       map[string]string // session tokens keyed by email
	passwords    map[string]string // seeded/registered passwords keyed by email
	licenseKeys  map[string]string // issued license keys keyed by email
	articleIDs   map[string]int64  // article ids keyed by title
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:          tc,
		tokens:      make(map[string]string),
		passwords:   make(map[string]string),
		licenseKeys: make(map[string]string),
		articleIDs:  make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a Pressroom server is running$`, s.aPressroomServerIsRunning)
	sc.Step(`^an administrator "([^"]*)" with password "([^"]*)" exists$`, s.anAdministratorExists)

	// Registration and approval steps
	sc.Step(`^"([^"]*)" registers as a reporter named "([^"]*)" with password "([^"]*)"$`, s.registersAsReporter)
	sc.Step(`^"([^"]*)" approves the reporter "([^"]*)"$`, s.approvesReporter)
	sc.Step(`^"([^"]*)" revokes the reporter "([^"]*)"$`, s.revokesReporter)
	sc.Step(`^"([^"]*)" should have been issued a license key$`, s.shouldHaveLicenseKey)

	// Login steps
	sc.Step(`^"([^"]*)" logs in with their password$`, s.logsInWithPassword)
	sc.Step(`^"([^"]*)" logs in with their password and issued license key$`, s.logsInWithLicenseKey)
	sc.Step(`^"([^"]*)" logs in with their password and license key "([^"]*)"$`, s.logsInWithGivenLicenseKey)
	sc.Step(`^"([^"]*)" should receive a session token$`, s.shouldReceiveSessionToken)

	// Article steps
	sc.Step(`^"([^"]*)" posts an article titled "([^"]*)" with content "([^"]*)"$`, s.postsArticle)
	sc.Step(`^"([^"]*)" deletes the article titled "([^"]*)"$`, s.deletesArticle)
	sc.Step(`^the article titled "([^"]*)" should be listed$`, s.articleShouldBeListed)
	sc.Step(`^the article titled "([^"]*)" should not be listed$`, s.articleShouldNotBeListed)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response message should be "([^"]*)"$`, s.theResponseMessageShouldBe)
}

// Background steps

func (s *StepsContext) aPressroomServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) anAdministratorExists(email, password string) error {
	s.passwords[email] = password

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	admin := model.Account{
		Name:         "admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsApproved:   true,
	}
	return s.tc.DB.Where(model.Account{Email: email}).FirstOrCreate(&admin).Error
}

// Registration and approval steps

func (s *StepsContext) registersAsReporter(email, name, password string) error {
	s.passwords[email] = password

	return s.postJSON("/api/register", "", map[string]interface{}{
		"name":                 name,
		"email":                email,
		"password":             password,
		"phone_number":         "555-0100",
		"citizenship_number":   "CZ-1001",
		"profile_photo_url":    "https://example.com/photo.jpg",
		"reporter_id_card_url": "https://example.com/id.jpg",
	})
}

func (s *StepsContext) approvesReporter(adminEmail, reporterEmail string) error {
	reporterID, err := s.accountID(reporterEmail)
	if err != nil {
		return err
	}

	if err := s.postJSON("/api/admin/approve", s.tokens[adminEmail], map[string]interface{}{
		"user_id": reporterID,
	}); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var payload struct {
			LicenseKey string `json:"license_key"`
		}
		if err := json.Unmarshal(s.responseBody, &payload); err != nil {
			return fmt.Errorf("failed to parse approve response: %w", err)
		}
		s.licenseKeys[reporterEmail] = payload.LicenseKey
	}
	return nil
}

func (s *StepsContext) revokesReporter(adminEmail, reporterEmail string) error {
	reporterID, err := s.accountID(reporterEmail)
	if err != nil {
		return err
	}

	return s.postJSON("/api/admin/revoke", s.tokens[adminEmail], map[string]interface{}{
		"user_id": reporterID,
	})
}

func (s *StepsContext) shouldHaveLicenseKey(email string) error {
	if s.licenseKeys[email] == "" {
		return fmt.Errorf("no license key issued for %s", email)
	}
	return nil
}

// Login steps

func (s *StepsContext) logsInWithPassword(email string) error {
	return s.login(email, map[string]interface{}{
		"email":    email,
		"password": s.passwords[email],
	})
}

func (s *StepsContext) logsInWithLicenseKey(email string) error {
	return s.login(email, map[string]interface{}{
		"email":       email,
		"password":    s.passwords[email],
		"license_key": s.licenseKeys[email],
	})
}

func (s *StepsContext) logsInWithGivenLicenseKey(email, licenseKey string) error {
	return s.login(email, map[string]interface{}{
		"email":       email,
		"password":    s.passwords[email],
		"license_key": licenseKey,
	})
}

func (s *StepsContext) login(email string, body map[string]interface{}) error {
	if err := s.postJSON("/api/login", "", body); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var payload struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(s.responseBody, &payload); err != nil {
			return fmt.Errorf("failed to parse login response: %w", err)
		}
		s.tokens[email] = payload.AccessToken
	}
	return nil
}

func (s *StepsContext) shouldReceiveSessionToken(email string) error {
	if s.tokens[email] == "" {
		return fmt.Errorf("no session token for %s", email)
	}
	return nil
}

// Article steps

func (s *StepsContext) postsArticle(email, title, content string) error {
	if err := s.postJSON("/api/news", s.tokens[email], map[string]interface{}{
		"title":   title,
		"content": content,
	}); err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusOK {
		var article model.Article
		if err := s.tc.DB.Where("title = ?", title).First(&article).Error; err != nil {
			return fmt.Errorf("posted article not found in database: %w", err)
		}
		s.articleIDs[title] = article.ID
	}
	return nil
}

func (s *StepsContext) deletesArticle(email, title string) error {
	articleID, ok := s.articleIDs[title]
	if !ok {
		return fmt.Errorf("no known article titled %q", title)
	}

	req, err := http.NewRequest("DELETE", fmt.Sprintf("%s/api/news/%d", s.tc.ServerURL, articleID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.tokens[email])

	return s.do(req)
}

func (s *StepsContext) articleShouldBeListed(title string) error {
	titles, err := s.listedTitles()
	if err != nil {
		return err
	}
	for _, t := range titles {
		if t == title {
			return nil
		}
	}
	return fmt.Errorf("article %q not found in news list", title)
}

func (s *StepsContext) articleShouldNotBeListed(title string) error {
	titles, err := s.listedTitles()
	if err != nil {
		return err
	}
	for _, t := range titles {
		if t == title {
			return fmt.Errorf("article %q still listed", title)
		}
	}
	return nil
}

func (s *StepsContext) listedTitles() ([]string, error) {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/api/news")
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	var articles []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse news list: %w", err)
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title)
	}
	return titles, nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseMessageShouldBe(expected string) error {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(s.responseBody, &payload); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if payload.Msg != expected {
		return fmt.Errorf("expected message %q, got %q", expected, payload.Msg)
	}
	return nil
}

// Helpers

func (s *StepsContext) accountID(email string) (int64, error) {
	var account model.Account
	if err := s.tc.DB.Where("email = ?", email).First(&account).Error; err != nil {
		return 0, fmt.Errorf("account %s not found: %w", email, err)
	}
	return account.ID, nil
}

func (s *StepsContext) postJSON(path, authToken string, body map[string]interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", s.tc.ServerURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	return s.do(req)
}

func (s *StepsContext) do(req *http.Request) error {
	var err error
	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}
