package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/access-monitor/alerts"
	alertmocks "github.com/blogem/access-monitor/alerts/mocks"
	"github.com/blogem/access-monitor/logger"
	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/repositories/mocks"
)

var testNow = time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// AccessLogServiceTestSuite covers RecordAccess, ListAccessLogs and ClearAccessLogs
type AccessLogServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    clockwork.FakeClock
	mockRepo *mocks.MockAccessLogRepository
	mockSink *alertmocks.MockSink
	service  AccessLogService
}

// SetupTest sets up the test suite before each test
func (suite *AccessLogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.clock = clockwork.NewFakeClockAt(testNow)
	suite.mockRepo = mocks.NewMockAccessLogRepository(suite.T())
	suite.mockSink = alertmocks.NewMockSink(suite.T())
	suite.service = NewAccessLogService(suite.mockRepo, suite.mockSink, suite.clock, logger.Discard())
}

// expectCreate makes the repository behave like a store assigning id 42
func (suite *AccessLogServiceTestSuite) expectCreate() *mocks.MockAccessLogRepository_Create_Call {
	return suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AccessLogEntry")).
		Run(func(ctx context.Context, entry *models.AccessLogEntry) {
			entry.ID = 42
			entry.Timestamp = testNow
		}).
		Return(nil)
}

// TestRecordAccess_InvalidType tests that a bad type never reaches the store
func (suite *AccessLogServiceTestSuite) TestRecordAccess_InvalidType() {
	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "zoom", Type: "speaker"})

	assert.Nil(suite.T(), entry)
	var verrs models.ValidationErrors
	if assert.ErrorAs(suite.T(), err, &verrs) {
		assert.Equal(suite.T(), "type", verrs[0].Field)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.mockSink.AssertNotCalled(suite.T(), "PushAlert", mock.Anything, mock.Anything)
}

// TestRecordAccess_MissingApp tests that an empty app is rejected
func (suite *AccessLogServiceTestSuite) TestRecordAccess_MissingApp() {
	_, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "", Type: models.SensorCamera})

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestRecordAccess_SinkIDStored tests that a pushed alert id is kept on the entry
func (suite *AccessLogServiceTestSuite) TestRecordAccess_SinkIDStored() {
	suite.mockSink.EXPECT().
		PushAlert(mock.Anything, alerts.Alert{App: "whatsapp", Type: models.SensorMicrophone, Timestamp: testNow}).
		Return("alert_1_abc", nil)
	suite.expectCreate()

	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "whatsapp", Type: models.SensorMicrophone})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), entry.ID)
	assert.Equal(suite.T(), testNow, entry.Timestamp)
	if assert.NotNil(suite.T(), entry.ExternalAlertID) {
		assert.Equal(suite.T(), "alert_1_abc", *entry.ExternalAlertID)
	}
}

// TestRecordAccess_AlertAndEntryShareTimestamp tests that the alert carries the stored instant
func (suite *AccessLogServiceTestSuite) TestRecordAccess_AlertAndEntryShareTimestamp() {
	var alerted time.Time
	suite.mockSink.EXPECT().PushAlert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, alert alerts.Alert) {
			alerted = alert.Timestamp
			suite.clock.Advance(time.Second)
		}).
		Return("alert_2_def", nil)
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *models.AccessLogEntry) {
			assert.Equal(suite.T(), alerted, entry.Timestamp)
		}).
		Return(nil)

	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "zoom", Type: models.SensorCamera})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testNow, alerted)
	assert.Equal(suite.T(), testNow, entry.Timestamp)
}

// TestRecordAccess_SinkFailureDoesNotBlock tests that sink errors leave the id empty
func (suite *AccessLogServiceTestSuite) TestRecordAccess_SinkFailureDoesNotBlock() {
	suite.mockSink.EXPECT().PushAlert(mock.Anything, mock.Anything).Return("", alerts.ErrNotInitialized)
	suite.expectCreate()

	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "tiktok", Type: models.SensorCamera})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), entry.ExternalAlertID)
	assert.Equal(suite.T(), "tiktok", entry.App)
}

// TestRecordAccess_ClientSuppliedIDSkipsSink tests that a client-side push is not repeated
func (suite *AccessLogServiceTestSuite) TestRecordAccess_ClientSuppliedIDSkipsSink() {
	suite.expectCreate()

	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{
		App:             "zoom",
		Type:            models.SensorCamera,
		ExternalAlertID: strPtr("client_alert"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "client_alert", *entry.ExternalAlertID)
	suite.mockSink.AssertNotCalled(suite.T(), "PushAlert", mock.Anything, mock.Anything)
}

// TestRecordAccess_RepositoryError tests that store failures are wrapped
func (suite *AccessLogServiceTestSuite) TestRecordAccess_RepositoryError() {
	expectedError := errors.New("disk full")
	suite.mockSink.EXPECT().PushAlert(mock.Anything, mock.Anything).Return("", alerts.ErrNotInitialized)
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(expectedError)

	entry, err := suite.service.RecordAccess(suite.ctx, &models.AccessLogForm{App: "zoom", Type: models.SensorCamera})

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, expectedError)
	var verrs models.ValidationErrors
	assert.False(suite.T(), errors.As(err, &verrs))
}

// TestListAccessLogs tests that the repository order is passed through
func (suite *AccessLogServiceTestSuite) TestListAccessLogs() {
	stored := []models.AccessLogEntry{
		{ID: 2, App: "tiktok", Type: models.SensorCamera},
		{ID: 1, App: "whatsapp", Type: models.SensorMicrophone},
	}
	suite.mockRepo.EXPECT().List(mock.Anything).Return(stored, nil)

	entries, err := suite.service.ListAccessLogs(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, entries)
}

// TestClearAccessLogs tests clear success and failure
func (suite *AccessLogServiceTestSuite) TestClearAccessLogs() {
	suite.mockRepo.EXPECT().Clear(mock.Anything).Return(nil).Once()
	assert.NoError(suite.T(), suite.service.ClearAccessLogs(suite.ctx))

	suite.mockRepo.EXPECT().Clear(mock.Anything).Return(errors.New("locked")).Once()
	assert.ErrorContains(suite.T(), suite.service.ClearAccessLogs(suite.ctx), "failed to clear access logs")
}

// TestCountAccessLogs tests the count passthrough
func (suite *AccessLogServiceTestSuite) TestCountAccessLogs() {
	suite.mockRepo.EXPECT().Count(mock.Anything).Return(3, nil)

	count, err := suite.service.CountAccessLogs(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}

func TestAccessLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessLogServiceTestSuite))
}

func TestRecordAccess_NilSink(t *testing.T) {
	repo := mocks.NewMockAccessLogRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	service := NewAccessLogService(repo, nil, clockwork.NewFakeClock(), logger.Discard())
	entry, err := service.RecordAccess(context.Background(), &models.AccessLogForm{App: "zoom", Type: models.SensorMicrophone})

	assert.NoError(t, err)
	assert.Nil(t, entry.ExternalAlertID)
}
