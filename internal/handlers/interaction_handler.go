package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// claimDeadline keeps a click inside Slack's three second acknowledgement window.
const claimDeadline = 2500 * time.Millisecond

func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(form.Get("payload")), &callback); err != nil {
		h.log.Warn().Err(err).Msg("failed to parse interaction payload")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type == slack.InteractionTypeBlockActions {
		reqLog := h.log.With().
			Str("request_id", uuid.NewString()).
			Str("user_id", callback.User.ID).
			Logger()
		ctx, cancel := context.WithTimeout(reqLog.WithContext(r.Context()), claimDeadline)
		defer cancel()

		for _, action := range callback.ActionCallback.BlockActions {
			if action.ActionID == slackcmd.ActionClaimShift {
				h.handleClaim(ctx, &callback, action.Value)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleClaim(ctx context.Context, callback *slack.InteractionCallback, reference string) {
	log := zerolog.Ctx(ctx).With().Str("reference", reference).Logger()
	userID := callback.User.ID

	channelID := callback.Channel.ID
	if channelID == "" {
		channelID = callback.Container.ChannelID
	}

	if !h.roles.IsModerator(userID) {
		h.notify(ctx, channelID, userID, "❌ Only moderators can claim shifts.")
		return
	}
	if !h.limiter.Allow(userID) {
		log.Debug().Msg("claim throttled")
		h.notify(ctx, channelID, userID, "⏳ Too many claim attempts, please wait a moment.")
		return
	}

	shift, err := h.ledger.ClaimShift(ctx, reference, userID, h.now())
	if err != nil {
		if !domain.IsExpected(err) {
			log.Error().Err(err).Msg("failed to claim shift")
			h.notify(ctx, channelID, userID, "❌ Failed to claim the shift, please try again.")
			return
		}
		if errors.Is(err, domain.ErrAlreadyClaimed) || errors.Is(err, domain.ErrAlreadyCancelled) {
			h.refreshMessage(log.WithContext(ctx), reference)
		}
		h.notify(ctx, channelID, userID, "❌ "+userMessage(err))
		return
	}

	h.renderShift(log.WithContext(ctx), shift)
	h.notify(ctx, channelID, userID, fmt.Sprintf("✅ You claimed *%s* starting %s for %s.",
		shift.Description, slackcmd.FormatInstant(shift.StartAt), slackcmd.FormatHours(shift.DurationHours)))
}

// refreshMessage re-renders a message whose button no longer matches the stored state.
func (h *SlackHandler) refreshMessage(ctx context.Context, reference string) {
	shift, err := h.ledger.GetShift(ctx, reference)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to load shift for refresh")
		return
	}
	h.renderShift(ctx, shift)
}

func (h *SlackHandler) notify(ctx context.Context, channelID, userID, text string) {
	if _, err := h.slackClient.PostEphemeral(channelID, userID, slack.MsgOptionText(text, false)); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send ephemeral message")
	}
}
