package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleDrop(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	drop, err := slackcmd.ParseDropArgs(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error() + "\nUse: `/shift drop <YYYY-MM-DD> <HH:MM> <hours> [description]`")
	}

	start, err := timeslot.OnDate(drop.Date, drop.Hour, drop.Minute, h.settings.DefaultTimezone)
	if err != nil {
		return h.errorResponse(ctx, "resolve the start time", err)
	}

	return h.postShift(ctx, slashCmd.ChannelID, func(reference, channelID string) (*entity.Shift, error) {
		return h.ledger.PostShift(ctx, contract.PostShiftInput{
			Reference:     reference,
			ChannelID:     channelID,
			Description:   drop.Description,
			CreatedBy:     slashCmd.UserID,
			StartAt:       start,
			DurationHours: drop.Hours,
		})
	})
}

func (h *SlackHandler) handleDropSlot(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	drop, err := slackcmd.ParseDropSlotArgs(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error() + "\nUse: `/shift drop-slot @user <day> <HH:MM> [hours] [YYYY-MM-DD]`")
	}
	if drop.OwnerID != slashCmd.UserID && !h.roles.IsAdmin(slashCmd.UserID) {
		return h.createErrorResponse("Only admins can drop someone else's slot.")
	}

	hasSlots, err := h.schedule.HasAnySlot(ctx, drop.OwnerID)
	if err != nil {
		return h.errorResponse(ctx, "check the schedule", err)
	}
	if !hasSlots {
		return h.createErrorResponse(fmt.Sprintf("<@%s> has no weekly slots. Add one with `/shift schedule add`.", drop.OwnerID))
	}

	return h.postShift(ctx, slashCmd.ChannelID, func(reference, channelID string) (*entity.Shift, error) {
		return h.ledger.PostFromSlot(ctx, contract.PostFromSlotInput{
			Reference:     reference,
			ChannelID:     channelID,
			CreatedBy:     slashCmd.UserID,
			OwnerID:       drop.OwnerID,
			Weekday:       drop.Slot.Weekday,
			Hour:          drop.Slot.Hour,
			Minute:        drop.Slot.Minute,
			DurationHours: drop.Hours,
			Date:          drop.Date,
		})
	})
}

// postShift posts a placeholder message, records the shift under the message
// reference and renders the claim button. The placeholder is deleted when the
// shift is rejected.
func (h *SlackHandler) postShift(ctx context.Context, channelID string,
	create func(reference, channelID string) (*entity.Shift, error)) *slack.Msg {
	log := zerolog.Ctx(ctx)

	postedChannel, timestamp, err := h.slackClient.PostMessage(channelID, slackcmd.PlaceholderOptions()...)
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to post shift message")
		return h.createErrorResponse("Failed to post the shift message. Is the bot in this channel?")
	}

	shift, err := create(slackcmd.MakeReference(postedChannel, timestamp), postedChannel)
	if err != nil {
		if _, _, delErr := h.slackClient.DeleteMessage(postedChannel, timestamp); delErr != nil {
			log.Warn().Err(delErr).Msg("failed to delete placeholder message")
		}
		return h.errorResponse(ctx, "post the shift", err)
	}

	h.renderShift(ctx, shift)
	return h.createSuccessResponse(fmt.Sprintf("Shift posted. Reference: `%s`", shift.Reference))
}

// renderShift re-renders the channel message that carries the shift.
func (h *SlackHandler) renderShift(ctx context.Context, shift *entity.Shift) {
	channelID, timestamp, ok := slackcmd.SplitReference(shift.Reference)
	if !ok {
		zerolog.Ctx(ctx).Warn().Str("reference", shift.Reference).Msg("shift reference does not point to a message")
		return
	}
	if _, _, _, err := h.slackClient.UpdateMessage(channelID, timestamp, slackcmd.ShiftMessageOptions(shift)...); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("reference", shift.Reference).Msg("failed to update shift message")
	}
}

func (h *SlackHandler) handleEdit(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	isAdmin := h.roles.IsAdmin(slashCmd.UserID)
	if len(cmd.Args) == 0 {
		shifts, err := h.ledger.ListEditable(ctx, slashCmd.UserID, isAdmin)
		if err != nil {
			return h.errorResponse(ctx, "list shifts", err)
		}
		return shiftList("Open shifts you can edit", shifts,
			"Use: `/shift edit <reference> [desc=...] [start=YYYY-MM-DDTHH:MM] [hours=N]`")
	}

	edit, err := slackcmd.ParseEditArgs(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	input := contract.UpdateShiftInput{
		Reference:     edit.Reference,
		Actor:         slashCmd.UserID,
		IsAdmin:       isAdmin,
		Description:   edit.Description,
		DurationHours: edit.Hours,
	}
	if edit.Start != nil {
		start, err := slackcmd.ParseLocalStart(*edit.Start, h.settings.DefaultTimezone)
		if err != nil {
			return h.createErrorResponse(err.Error())
		}
		input.StartAt = &start
	}

	shift, err := h.ledger.UpdateShift(ctx, input)
	if err != nil {
		return h.errorResponse(ctx, "edit the shift", err)
	}

	h.renderShift(ctx, shift)
	return h.createSuccessResponse(fmt.Sprintf("Shift `%s` updated.", shift.Reference))
}

func (h *SlackHandler) handleCancel(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	isAdmin := h.roles.IsAdmin(slashCmd.UserID)
	if len(cmd.Args) == 0 {
		shifts, err := h.ledger.ListCancellable(ctx, slashCmd.UserID, isAdmin)
		if err != nil {
			return h.errorResponse(ctx, "list shifts", err)
		}
		return shiftList("Shifts you can cancel", shifts, "Use: `/shift cancel <reference>`")
	}

	result, err := h.ledger.CancelShift(ctx, cmd.Args[0], slashCmd.UserID, isAdmin)
	if err != nil {
		return h.errorResponse(ctx, "cancel the shift", err)
	}
	if result.AlreadyCancelled {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Shift `%s` was already cancelled.", result.Shift.Reference),
		}
	}

	h.renderShift(ctx, result.Shift)

	text := fmt.Sprintf("Shift `%s` cancelled.", result.Shift.Reference)
	if result.WasClaimed && result.PreviousClaimer != slashCmd.UserID {
		text += fmt.Sprintf(" It had been claimed by <@%s>.", result.PreviousClaimer)
	}
	return h.createSuccessResponse(text)
}

func (h *SlackHandler) handleMine(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	shifts, err := h.ledger.ListCancellable(ctx, slashCmd.UserID, false)
	if err != nil {
		return h.errorResponse(ctx, "list shifts", err)
	}
	return shiftList("Your active shifts", shifts, "")
}

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID, err := targetUser(cmd.Args, slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	stats, err := h.ledger.ShiftStats(ctx, userID)
	if err != nil {
		return h.errorResponse(ctx, "load stats", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("📊 <@%s> has claimed %d shift(s), %s in total and %s in the last 7 days.",
			userID, stats.ClaimedCount, slackcmd.FormatHours(stats.TotalHours), slackcmd.FormatHours(stats.WindowHours)),
	}
}

func shiftList(title string, shifts []*entity.Shift, usage string) *slack.Msg {
	if len(shifts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No shifts found.",
		}
	}

	lines := []string{fmt.Sprintf("*%s:*", title)}
	for _, shift := range shifts {
		lines = append(lines, slackcmd.FormatShiftLine(shift))
	}
	if usage != "" {
		lines = append(lines, "", usage)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(lines, "\n"),
	}
}
