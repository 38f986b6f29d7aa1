package handlers

import (
	"context"
	"fmt"
	"strings"

	slackcmd "github.com/diegoclair/slack-shift-bot/internal/domain/slack"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
	"github.com/slack-go/slack"
)

func (h *SlackHandler) handleScheduleAdd(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/shift schedule add <day> <HH:MM> [timezone]`")
	}
	return h.addSlot(ctx, slashCmd.UserID, cmd.Args)
}

func (h *SlackHandler) handleScheduleAddFor(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.roles.IsAdmin(slashCmd.UserID) {
		return h.createErrorResponse("Only admins can add slots for someone else.")
	}
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/shift schedule add-for @user <day> <HH:MM> [timezone]`")
	}

	ownerID, ok := slackcmd.ParseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/shift schedule add-for @user <day> <HH:MM>`")
	}
	return h.addSlot(ctx, ownerID, cmd.Args[1:])
}

func (h *SlackHandler) addSlot(ctx context.Context, ownerID string, args []string) *slack.Msg {
	parsed, err := slackcmd.ParseSlotArgs(args, true)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	slot, err := h.schedule.AddSlot(ctx, ownerID, parsed.Weekday, parsed.Hour, parsed.Minute, parsed.Timezone)
	if err != nil {
		return h.errorResponse(ctx, "add the slot", err)
	}

	text := fmt.Sprintf("Added %s for <@%s>.", timeslot.FormatSlot(slot.Weekday, slot.Hour, slot.Minute, slot.Timezone), ownerID)
	next, err := timeslot.NextOccurrence(slot.Weekday, slot.Hour, slot.Minute, slot.Timezone, h.now())
	if err == nil {
		offset, _ := timeslot.FormatOffset(slot.Timezone, next)
		text += fmt.Sprintf(" Next occurrence: %s (%s).", slackcmd.FormatInstant(next), offset)
	}
	return h.createSuccessResponse(text)
}

func (h *SlackHandler) handleScheduleRemove(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	parsed, err := slackcmd.ParseSlotArgs(cmd.Args, false)
	if err != nil {
		return h.createErrorResponse("Use: `/shift schedule remove <day> <HH:MM>`")
	}

	removed, err := h.schedule.RemoveSlot(ctx, slashCmd.UserID, parsed.Weekday, parsed.Hour, parsed.Minute)
	if err != nil {
		return h.errorResponse(ctx, "remove the slot", err)
	}
	if removed == 0 {
		return h.createErrorResponse(fmt.Sprintf("You have no slot on %s at %02d:%02d.",
			timeslot.WeekdayName(parsed.Weekday), parsed.Hour, parsed.Minute))
	}
	return h.createSuccessResponse(fmt.Sprintf("Removed your slot on %s at %02d:%02d.",
		timeslot.WeekdayName(parsed.Weekday), parsed.Hour, parsed.Minute))
}

func (h *SlackHandler) handleScheduleList(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	ownerID, err := targetUser(cmd.Args, slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	slots, err := h.schedule.ListSlots(ctx, ownerID)
	if err != nil {
		return h.errorResponse(ctx, "list slots", err)
	}

	if len(slots) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("<@%s> has no weekly slots.", ownerID),
		}
	}

	lines := make([]string, 0, len(slots)+1)
	lines = append(lines, fmt.Sprintf("*Weekly slots of <@%s>:*", ownerID))
	for _, slot := range slots {
		lines = append(lines, "• "+timeslot.FormatSlot(slot.Weekday, slot.Hour, slot.Minute, slot.Timezone))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(lines, "\n"),
	}
}

func (h *SlackHandler) handleScheduleClear(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	ownerID, err := targetUser(cmd.Args, slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	if ownerID != slashCmd.UserID && !h.roles.IsAdmin(slashCmd.UserID) {
		return h.createErrorResponse("Only admins can clear someone else's slots.")
	}

	removed, err := h.schedule.ClearSlots(ctx, ownerID)
	if err != nil {
		return h.errorResponse(ctx, "clear slots", err)
	}
	return h.createSuccessResponse(fmt.Sprintf("Removed %d slot(s) for <@%s>.", removed, ownerID))
}
