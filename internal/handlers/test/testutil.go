package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/access"
	"github.com/diegoclair/slack-shift-bot/internal/handlers"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret   = "test-signing-secret"
	AdminUserID     = "UADMIN"
	ModeratorUserID = "UMOD"
	OutsiderUserID  = "UOUTSIDER"
)

type ServiceMocks struct {
	ScheduleServiceMock *mocks.MockScheduleService
	ShiftLedgerMock     *mocks.MockShiftLedger
	SlackClientMock     *mocks.MockSlackClient
}

// DefaultSettings accepts commands in any channel and allows 10 claims per minute.
func DefaultSettings() handlers.Settings {
	return handlers.Settings{
		SigningSecret:      SigningSecret,
		DefaultTimezone:    "UTC",
		ClaimRatePerMinute: 10,
	}
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()
	return GetHandlerTestWithSettings(t, DefaultSettings())
}

func GetHandlerTestWithSettings(t *testing.T, settings handlers.Settings) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ScheduleServiceMock: mocks.NewMockScheduleService(ctrl),
		ShiftLedgerMock:     mocks.NewMockShiftLedger(ctrl),
		SlackClientMock:     mocks.NewMockSlackClient(ctrl),
	}

	roles := access.New([]string{AdminUserID}, []string{ModeratorUserID})
	handler = handlers.New(m.SlackClientMock, m.ScheduleServiceMock, m.ShiftLedgerMock, roles, settings, zerolog.Nop())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode(), signingSecret)
}

// CreateClaimRequest creates a signed block_actions interaction for a button click.
func CreateClaimRequest(t *testing.T, actionID, value, channelID, messageTS, userID, signingSecret string) *http.Request {
	t.Helper()

	payload := map[string]any{
		"type":    "block_actions",
		"user":    map[string]any{"id": userID, "name": "test-user"},
		"team":    map[string]any{"id": "T123456789"},
		"channel": map[string]any{"id": channelID, "name": "test-channel"},
		"container": map[string]any{
			"type":       "message",
			"channel_id": channelID,
			"message_ts": messageTS,
		},
		"actions": []map[string]any{{
			"type":      "button",
			"block_id":  "shift_actions",
			"action_id": actionID,
			"value":     value,
			"action_ts": messageTS,
		}},
	}
	return CreateInteractionRequest(t, payload, signingSecret)
}

func CreateInteractionRequest(t *testing.T, payload any, signingSecret string) *http.Request {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	form := url.Values{"payload": {string(raw)}}
	return signedRequest(t, "/slack/interactions", form.Encode(), signingSecret)
}

func signedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// MessageValues applies message options the way the Slack client would and
// returns the resulting form values ("text", "blocks", ...).
func MessageValues(t *testing.T, options ...slack.MsgOption) url.Values {
	t.Helper()

	_, values, err := slack.UnsafeApplyMsgOptions("test-token", "C000", "https://slack.com/api/", options...)
	require.NoError(t, err)
	return values
}
