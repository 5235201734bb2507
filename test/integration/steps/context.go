// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/config"
	"github.com/school-office/backend/internal/infra/dependency"
	"github.com/school-office/backend/internal/integration/persistence/model"
	"github.com/school-office/backend/test/integration/mock"
)

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response
	db       *mock.Db

	currentStudentID      uuid.UUID
	currentTeacherID      uuid.UUID
	currentGroupID        uuid.UUID
	currentRegistrationID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("school_office", map[string]any{
			"students":            &model.StudentModel{},
			"teachers":            &model.TeacherModel{},
			"groups":              &model.GroupModel{},
			"group_schedules":     &model.GroupScheduleModel{},
			"group_sessions":      &model.GroupSessionModel{},
			"registrations":       &model.RegistrationModel{},
			"payments":            &model.PaymentModel{},
			"wallet_transactions": &model.WalletTransactionModel{},
			"costs":               &model.CostModel{},
			"cost_templates":      &model.CostTemplateModel{},
			"teacher_payments":    &model.TeacherPaymentModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a student exists named "([^"]*)"$`, test.aStudentExistsNamed)
	ctx.Given(`^a teacher exists named "([^"]*)" with hourly rate "([^"]*)"$`, test.aTeacherExistsNamedWithHourlyRate)
	ctx.Given(`^a group exists named "([^"]*)" with price "([^"]*)"$`, test.aGroupExistsNamedWithPrice)
	ctx.Given(`^the student is registered in the group with agreed price "([^"]*)"$`, test.theStudentIsRegisteredInTheGroup)
	ctx.Given(`^the student has a wallet deposit of "([^"]*)"$`, test.theStudentHasAWalletDepositOf)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentStudentID = uuid.Nil
	t.currentTeacherID = uuid.Nil
	t.currentGroupID = uuid.Nil
	t.currentRegistrationID = uuid.Nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}

	injector := dependency.NewInjector(config.Load(), t.db.DbConn)
	engine := injector.Router.Setup("test")
	t.server = httptest.NewServer(engine)
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) aStudentExistsNamed(name string) error {
	first, last := splitName(name)
	studentID := uuid.New()
	t.currentStudentID = studentID

	now := time.Now().UTC()
	student := &model.StudentModel{
		ID:        studentID,
		FirstName: first,
		LastName:  last,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(student).Error
}

func (t *testContext) aTeacherExistsNamedWithHourlyRate(name, rate string) error {
	first, last := splitName(name)
	hourlyRate, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid hourly rate %q: %w", rate, err)
	}

	teacherID := uuid.New()
	t.currentTeacherID = teacherID

	now := time.Now().UTC()
	teacher := &model.TeacherModel{
		ID:         teacherID,
		FirstName:  first,
		LastName:   last,
		HourlyRate: hourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(teacher).Error
}

func (t *testContext) aGroupExistsNamedWithPrice(name, price string) error {
	groupPrice, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	groupID := uuid.New()
	t.currentGroupID = groupID

	now := time.Now().UTC()
	group := &model.GroupModel{
		ID:          groupID,
		Name:        name,
		Level:       "B2",
		WeeklyHours: decimal.NewFromInt(4),
		TotalHours:  decimal.NewFromInt(40),
		Price:       groupPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(group).Error
}

func (t *testContext) theStudentIsRegisteredInTheGroup(agreedPrice string) error {
	price, err := decimal.NewFromString(agreedPrice)
	if err != nil {
		return fmt.Errorf("invalid agreed price %q: %w", agreedPrice, err)
	}

	registrationID := uuid.New()
	t.currentRegistrationID = registrationID

	now := time.Now().UTC()
	registration := &model.RegistrationModel{
		ID:             registrationID,
		StudentID:      t.currentStudentID,
		GroupID:        t.currentGroupID,
		AgreedPrice:    price,
		DiscountAmount: decimal.Zero,
		DepositPct:     decimal.Zero,
		Status:         "DUE",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return t.db.DbConn.Create(registration).Error
}

func (t *testContext) theStudentHasAWalletDepositOf(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid deposit amount %q: %w", amount, err)
	}

	txn := &model.WalletTransactionModel{
		ID:        uuid.New(),
		StudentID: t.currentStudentID,
		Kind:      "DEPOSIT",
		Amount:    value,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(txn).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{student_id}}", t.currentStudentID.String())
	content = strings.ReplaceAll(content, "{{teacher_id}}", t.currentTeacherID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.currentGroupID.String())
	content = strings.ReplaceAll(content, "{{registration_id}}", t.currentRegistrationID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.server.URL + path

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created registration ids so follow-up steps can reference them
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, hasAgreedPrice := responseBody["agreed_price"]; hasAgreedPrice {
				t.currentRegistrationID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entity, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	count, err := t.countRows(entity, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) countRows(entity any, criteria map[string]any) (int, error) {
	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, result.Error
	}

	return entitySlicePtr.Elem().Len(), nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}

func splitName(name string) (first, last string) {
	parts := strings.SplitN(name, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
