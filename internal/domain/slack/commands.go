package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
)

type CommandType string

const (
	CmdScheduleAdd    CommandType = "schedule add"
	CmdScheduleAddFor CommandType = "schedule add-for"
	CmdScheduleRemove CommandType = "schedule remove"
	CmdScheduleList   CommandType = "schedule list"
	CmdScheduleClear  CommandType = "schedule clear"
	CmdDrop           CommandType = "drop"
	CmdDropSlot       CommandType = "drop-slot"
	CmdEdit           CommandType = "edit"
	CmdCancel         CommandType = "cancel"
	CmdMine           CommandType = "mine"
	CmdStats          CommandType = "stats"
	CmdHelp           CommandType = "help"
)

const dateLayout = "2006-01-02"

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "schedule", "sched":
		if len(parts) < 2 {
			return nil, fmt.Errorf("missing schedule action: use add, add-for, remove, list or clear")
		}
		cmd.Args = parts[2:]
		switch strings.ToLower(parts[1]) {
		case "add":
			cmd.Type = CmdScheduleAdd
		case "add-for":
			cmd.Type = CmdScheduleAddFor
		case "remove", "rm":
			cmd.Type = CmdScheduleRemove
		case "list", "ls":
			cmd.Type = CmdScheduleList
		case "clear":
			cmd.Type = CmdScheduleClear
		default:
			return nil, fmt.Errorf("unknown schedule action: %s", parts[1])
		}
	case "drop":
		cmd.Type = CmdDrop
	case "drop-slot":
		cmd.Type = CmdDropSlot
	case "edit":
		cmd.Type = CmdEdit
	case "cancel":
		cmd.Type = CmdCancel
	case "mine":
		cmd.Type = CmdMine
	case "stats":
		cmd.Type = CmdStats
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseUserMention extracts the user id from "<@U123>" or "<@U123|name>".
func ParseUserMention(mention string) (string, bool) {
	value := strings.TrimSpace(mention)
	if !strings.HasPrefix(value, "<@") || !strings.HasSuffix(value, ">") {
		return "", false
	}
	value = strings.TrimSuffix(strings.TrimPrefix(value, "<@"), ">")
	if id, _, found := strings.Cut(value, "|"); found {
		value = id
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// SlotArgs is a weekday and time of day with an optional timezone.
type SlotArgs struct {
	Weekday  int
	Hour     int
	Minute   int
	Timezone string
}

// ParseSlotArgs reads "<day> <HH:MM> [timezone]".
func ParseSlotArgs(args []string, allowTimezone bool) (SlotArgs, error) {
	maxArgs := 2
	if allowTimezone {
		maxArgs = 3
	}
	if len(args) < 2 || len(args) > maxArgs {
		return SlotArgs{}, fmt.Errorf("%w: expected <day> <HH:MM>", domain.ErrInvalidInput)
	}

	weekday, err := timeslot.ParseWeekday(args[0])
	if err != nil {
		return SlotArgs{}, err
	}
	hour, minute, err := timeslot.ParseClock(args[1])
	if err != nil {
		return SlotArgs{}, err
	}

	slot := SlotArgs{Weekday: weekday, Hour: hour, Minute: minute}
	if len(args) == 3 {
		slot.Timezone = args[2]
	}
	return slot, nil
}

// DropArgs describes an ad-hoc shift: "<YYYY-MM-DD> <HH:MM> <hours> [description...]".
type DropArgs struct {
	Date        time.Time
	Hour        int
	Minute      int
	Hours       float64
	Description string
}

func ParseDropArgs(args []string) (DropArgs, error) {
	if len(args) < 3 {
		return DropArgs{}, fmt.Errorf("%w: expected <YYYY-MM-DD> <HH:MM> <hours> [description]", domain.ErrInvalidInput)
	}

	date, err := parseDate(args[0])
	if err != nil {
		return DropArgs{}, err
	}
	hour, minute, err := timeslot.ParseClock(args[1])
	if err != nil {
		return DropArgs{}, err
	}
	hours, err := parseHours(args[2])
	if err != nil {
		return DropArgs{}, err
	}

	return DropArgs{
		Date:        date,
		Hour:        hour,
		Minute:      minute,
		Hours:       hours,
		Description: strings.Join(args[3:], " "),
	}, nil
}

// DropSlotArgs describes "@user <day> <HH:MM> [hours] [YYYY-MM-DD]".
type DropSlotArgs struct {
	OwnerID string
	Slot    SlotArgs
	Hours   *float64 // nil means the default duration
	Date    time.Time
}

func ParseDropSlotArgs(args []string) (DropSlotArgs, error) {
	if len(args) < 3 || len(args) > 5 {
		return DropSlotArgs{}, fmt.Errorf("%w: expected @user <day> <HH:MM> [hours] [YYYY-MM-DD]", domain.ErrInvalidInput)
	}

	owner, ok := ParseUserMention(args[0])
	if !ok {
		return DropSlotArgs{}, fmt.Errorf("%w: %q is not a user mention", domain.ErrInvalidInput, args[0])
	}
	slot, err := ParseSlotArgs(args[1:3], false)
	if err != nil {
		return DropSlotArgs{}, err
	}

	result := DropSlotArgs{OwnerID: owner, Slot: slot}
	for _, arg := range args[3:] {
		if strings.Contains(arg, "-") {
			if result.Date, err = parseDate(arg); err != nil {
				return DropSlotArgs{}, err
			}
			continue
		}
		if result.Hours != nil {
			return DropSlotArgs{}, fmt.Errorf("%w: duration given twice", domain.ErrInvalidInput)
		}
		hours, err := parseHours(arg)
		if err != nil {
			return DropSlotArgs{}, err
		}
		result.Hours = &hours
	}
	return result, nil
}

// EditArgs holds the raw values of an edit; nil means not supplied.
type EditArgs struct {
	Reference   string
	Description *string
	Start       *string
	Hours       *float64
}

// ParseEditArgs reads "<reference> [desc=...] [start=YYYY-MM-DDTHH:MM] [hours=N]".
// A desc value runs until the next key.
func ParseEditArgs(args []string) (EditArgs, error) {
	if len(args) == 0 {
		return EditArgs{}, fmt.Errorf("%w: expected <reference> [desc=...] [start=YYYY-MM-DDTHH:MM] [hours=N]", domain.ErrInvalidInput)
	}

	result := EditArgs{Reference: args[0]}
	values := map[string][]string{}
	current := ""
	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, "=")
		switch strings.ToLower(key) {
		case "desc", "description", "start", "hours":
			if found {
				current = strings.ToLower(key)
				if current == "description" {
					current = "desc"
				}
				if _, dup := values[current]; dup {
					return EditArgs{}, fmt.Errorf("%w: %s given twice", domain.ErrInvalidInput, current)
				}
				values[current] = []string{value}
				continue
			}
		}
		if current != "desc" {
			return EditArgs{}, fmt.Errorf("%w: unexpected %q", domain.ErrInvalidInput, arg)
		}
		values[current] = append(values[current], arg)
	}

	if desc, ok := values["desc"]; ok {
		text := strings.Join(desc, " ")
		result.Description = &text
	}
	if start, ok := values["start"]; ok {
		text := start[0]
		result.Start = &text
	}
	if hours, ok := values["hours"]; ok {
		parsed, err := parseHours(hours[0])
		if err != nil {
			return EditArgs{}, err
		}
		result.Hours = &parsed
	}
	return result, nil
}

// ParseLocalStart resolves "YYYY-MM-DDTHH:MM" (or "YYYY-MM-DD HH:MM") in timezone.
func ParseLocalStart(value, timezone string) (time.Time, error) {
	datePart, clockPart, found := strings.Cut(strings.TrimSpace(value), "T")
	if !found {
		datePart, clockPart, found = strings.Cut(strings.TrimSpace(value), " ")
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: start must be YYYY-MM-DDTHH:MM, got %q", domain.ErrInvalidInput, value)
	}

	date, err := parseDate(datePart)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := timeslot.ParseClock(clockPart)
	if err != nil {
		return time.Time{}, err
	}
	return timeslot.OnDate(date, hour, minute, timezone)
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", domain.ErrInvalidInput, value)
	}
	return date, nil
}

func parseHours(value string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(value), "h"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: hours must be a number, got %q", domain.ErrInvalidInput, value)
	}
	return hours, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Schedule:*
• ` + "`/shift schedule add <day> <HH:MM> [timezone]`" + ` - Add a weekly slot (ex: monday 14:00 America/New_York)
• ` + "`/shift schedule add-for @user <day> <HH:MM> [timezone]`" + ` - Add a slot for someone else (admin)
• ` + "`/shift schedule remove <day> <HH:MM>`" + ` - Remove one of your slots
• ` + "`/shift schedule list [@user]`" + ` - Show weekly slots
• ` + "`/shift schedule clear [@user]`" + ` - Remove all slots

*Shifts:*
• ` + "`/shift drop <YYYY-MM-DD> <HH:MM> <hours> [description]`" + ` - Post an open shift
• ` + "`/shift drop-slot @user <day> <HH:MM> [hours] [YYYY-MM-DD]`" + ` - Post a shift from a weekly slot
• ` + "`/shift edit <reference> [desc=...] [start=YYYY-MM-DDTHH:MM] [hours=N]`" + ` - Edit an open shift you posted
• ` + "`/shift cancel <reference>`" + ` - Cancel a shift you posted or claimed
• ` + "`/shift mine`" + ` - Show your active shifts
• ` + "`/shift stats [@user]`" + ` - Show claimed shift totals

Click *Claim shift* on a posted shift to take it.`
}
