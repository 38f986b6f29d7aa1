package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// Authorizer resolves the capabilities of a Slack user.
type Authorizer interface {
	IsAdmin(userID string) bool
	IsModerator(userID string) bool
}

type Settings struct {
	SigningSecret      string
	AllowedChannelID   string
	DefaultTimezone    string
	ClaimRatePerMinute int
}

type SlackHandler struct {
	slackClient contract.SlackClient
	schedule    contract.ScheduleService
	ledger      contract.ShiftLedger
	roles       Authorizer
	settings    Settings
	limiter     *claimLimiter
	log         zerolog.Logger
	now         func() time.Time
}

func New(slackClient contract.SlackClient, schedule contract.ScheduleService, ledger contract.ShiftLedger,
	roles Authorizer, settings Settings, log zerolog.Logger) *SlackHandler {
	if settings.DefaultTimezone == "" {
		settings.DefaultTimezone = domain.DefaultTimezone
	}
	return &SlackHandler{
		slackClient: slackClient,
		schedule:    schedule,
		ledger:      ledger,
		roles:       roles,
		settings:    settings,
		limiter:     newClaimLimiter(settings.ClaimRatePerMinute),
		log:         log.With().Str("component", "slack_handler").Logger(),
		now:         time.Now,
	}
}

// verifyRequest reads the body and checks the Slack signature, writing the
// failure status itself when it returns false.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.settings.SigningSecret)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejected request without a valid signature header")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejected request with a bad signature")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verifyRequest(w, r); !ok {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	reqLog := h.log.With().
		Str("request_id", uuid.NewString()).
		Str("user_id", s.UserID).
		Str("command", string(cmd.Type)).
		Logger()
	ctx := reqLog.WithContext(r.Context())

	response := h.handleCommand(ctx, cmd, &s)
	h.writeJSON(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	if h.settings.AllowedChannelID != "" && slashCmd.ChannelID != h.settings.AllowedChannelID {
		return h.createErrorResponse(fmt.Sprintf("This bot only accepts commands in <#%s>.", h.settings.AllowedChannelID))
	}
	if !h.roles.IsModerator(slashCmd.UserID) {
		return h.createErrorResponse("Only moderators can use this command.")
	}

	switch cmd.Type {
	case slackcmd.CmdScheduleAdd:
		return h.handleScheduleAdd(ctx, cmd, slashCmd)
	case slackcmd.CmdScheduleAddFor:
		return h.handleScheduleAddFor(ctx, cmd, slashCmd)
	case slackcmd.CmdScheduleRemove:
		return h.handleScheduleRemove(ctx, cmd, slashCmd)
	case slackcmd.CmdScheduleList:
		return h.handleScheduleList(ctx, cmd, slashCmd)
	case slackcmd.CmdScheduleClear:
		return h.handleScheduleClear(ctx, cmd, slashCmd)
	case slackcmd.CmdDrop:
		return h.handleDrop(ctx, cmd, slashCmd)
	case slackcmd.CmdDropSlot:
		return h.handleDropSlot(ctx, cmd, slashCmd)
	case slackcmd.CmdEdit:
		return h.handleEdit(ctx, cmd, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(ctx, cmd, slashCmd)
	case slackcmd.CmdMine:
		return h.handleMine(ctx, cmd, slashCmd)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd, slashCmd)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// targetUser returns the mentioned user in args[0], or the caller when there is none.
func targetUser(args []string, caller string) (string, error) {
	if len(args) == 0 {
		return caller, nil
	}
	userID, ok := slackcmd.ParseUserMention(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %q is not a user mention", domain.ErrInvalidInput, args[0])
	}
	return userID, nil
}

// errorResponse turns a domain outcome into a user message and logs storage faults.
func (h *SlackHandler) errorResponse(ctx context.Context, action string, err error) *slack.Msg {
	if !domain.IsExpected(err) {
		zerolog.Ctx(ctx).Error().Err(err).Msgf("failed to %s", action)
		return h.createErrorResponse(fmt.Sprintf("Failed to %s, please try again.", action))
	}
	return h.createErrorResponse(userMessage(err))
}

func userMessage(err error) string {
	var blocked *domain.FairnessBlockedError
	var conflict *domain.ClaimConflictError
	var duration *domain.DurationError

	switch {
	case errors.As(err, &blocked):
		return fmt.Sprintf("You have claimed %s in the last 7 days. Until that drops you can only claim shifts starting within %s.",
			slackcmd.FormatHours(blocked.TotalHours), formatWindow(blocked.LockWindow))
	case errors.As(err, &conflict):
		return fmt.Sprintf("This shift was already claimed by <@%s>.", conflict.ClaimedBy)
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return "This shift was cancelled."
	case errors.Is(err, domain.ErrOwnShift):
		return "You can't claim a shift you posted."
	case errors.Is(err, domain.ErrForbidden):
		return "You are not allowed to change this shift."
	case errors.Is(err, domain.ErrNotEditable):
		return "Only open shifts can be edited."
	case errors.Is(err, domain.ErrNoChanges):
		return "Nothing to change: use desc=, start= or hours=."
	case errors.Is(err, domain.ErrStartInPast):
		return "The shift must start in the future."
	case errors.Is(err, domain.ErrDuplicateReference):
		return "This shift was already posted."
	case errors.As(err, &duration):
		return fmt.Sprintf("Duration must be between %s and %s, got %s.",
			slackcmd.FormatHours(duration.MinHours), slackcmd.FormatHours(duration.MaxHours), slackcmd.FormatHours(duration.Hours))
	case errors.Is(err, domain.ErrInvalidDuration):
		return "That duration is not allowed."
	case errors.Is(err, domain.ErrInvalidTimezone):
		return "Unknown timezone. Use an IANA name such as America/New_York."
	case errors.Is(err, domain.ErrNotFound):
		return "No matching shift or slot was found."
	default:
		return err.Error()
	}
}

func formatWindow(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}

func (h *SlackHandler) createSuccessResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ " + message,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.writeJSON(w, h.createErrorResponse(message))
}

func (h *SlackHandler) writeJSON(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error().Err(err).Msg("failed to write response")
	}
}
