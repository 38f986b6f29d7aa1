package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	goslack "github.com/slack-go/slack"
)

// ActionClaimShift is the action id of the persistent claim button.
const ActionClaimShift = "claim_shift"

// MakeReference builds a shift reference from the message that carries it.
func MakeReference(channelID, timestamp string) string {
	return channelID + ":" + timestamp
}

// SplitReference returns the channel and timestamp of a message reference.
func SplitReference(reference string) (channelID, timestamp string, ok bool) {
	channelID, timestamp, ok = strings.Cut(reference, ":")
	if !ok || channelID == "" || timestamp == "" {
		return "", "", false
	}
	return channelID, timestamp, true
}

// FormatHours renders a duration in hours without trailing zeros, e.g. "1.5h".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// FormatInstant renders an instant with Slack's viewer-local date formatting.
func FormatInstant(at time.Time) string {
	return fmt.Sprintf("<!date^%d^{date_short_pretty} {time}|%s>", at.Unix(), at.UTC().Format("2006-01-02 15:04 UTC"))
}

// PlaceholderOptions is posted first to obtain the message timestamp used as the reference.
func PlaceholderOptions() []goslack.MsgOption {
	return []goslack.MsgOption{goslack.MsgOptionText("⏳ Posting shift...", false)}
}

// ShiftMessageOptions renders the channel message for a shift in its current state.
func ShiftMessageOptions(shift *entity.Shift) []goslack.MsgOption {
	title := goslack.NewTextBlockObject(goslack.MarkdownType, "*"+shift.Description+"*", false, false)
	fields := []*goslack.TextBlockObject{
		goslack.NewTextBlockObject(goslack.MarkdownType, "*Start:*\n"+FormatInstant(shift.StartAt), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, "*Duration:*\n"+FormatHours(shift.DurationHours), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Posted by:*\n<@%s>", shift.CreatedBy), false, false),
	}
	if shift.OriginOwnerID != "" {
		fields = append(fields, goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Slot of:*\n<@%s>", shift.OriginOwnerID), false, false))
	}

	blocks := []goslack.Block{goslack.NewSectionBlock(title, fields, nil)}

	var status string
	switch shift.State() {
	case entity.ShiftStateOpen:
		button := goslack.NewButtonBlockElement(
			ActionClaimShift,
			shift.Reference,
			goslack.NewTextBlockObject(goslack.PlainTextType, "Claim shift", true, false),
		).WithStyle(goslack.StylePrimary)
		blocks = append(blocks, goslack.NewActionBlock("shift_actions", button))
		status = "🟢 Open"
	case entity.ShiftStateClaimed:
		status = fmt.Sprintf("✅ Claimed by <@%s>", shift.ClaimedBy)
	case entity.ShiftStateCancelled:
		status = "🚫 Cancelled"
	}
	blocks = append(blocks, goslack.NewContextBlock("shift_status",
		goslack.NewTextBlockObject(goslack.MarkdownType, status, false, false)))

	fallback := fmt.Sprintf("%s: %s for %s (%s)", shift.Description, shift.StartAt.UTC().Format(time.RFC3339), FormatHours(shift.DurationHours), shift.State())
	return []goslack.MsgOption{
		goslack.MsgOptionText(fallback, false),
		goslack.MsgOptionBlocks(blocks...),
	}
}

// FormatShiftLine renders a shift as a single list entry.
func FormatShiftLine(shift *entity.Shift) string {
	line := fmt.Sprintf("• `%s` %s, %s for %s", shift.Reference, shift.Description, FormatInstant(shift.StartAt), FormatHours(shift.DurationHours))
	switch shift.State() {
	case entity.ShiftStateClaimed:
		line += fmt.Sprintf(" (claimed by <@%s>)", shift.ClaimedBy)
	case entity.ShiftStateOpen:
		line += " (open)"
	}
	return line
}
