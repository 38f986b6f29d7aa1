package timeslot

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	type args struct {
		weekday  int
		hour     int
		minute   int
		timezone string
		ref      time.Time
	}
	tests := []struct {
		name    string
		args    args
		want    time.Time
		wantErr error
	}{
		{
			name: "Should resolve Monday 14:00 New York in winter to 19:00 UTC",
			args: args{weekday: domain.Monday, hour: 14, timezone: "America/New_York", ref: utc(2025, 1, 8, 12, 0)},
			want: utc(2025, 1, 13, 19, 0),
		},
		{
			name: "Should resolve Monday 14:00 New York after spring change to 18:00 UTC",
			args: args{weekday: domain.Monday, hour: 14, timezone: "America/New_York", ref: utc(2025, 3, 12, 12, 0)},
			want: utc(2025, 3, 17, 18, 0),
		},
		{
			name: "Should return later today when the slot has not passed",
			args: args{weekday: domain.Monday, hour: 14, timezone: "America/New_York", ref: utc(2025, 1, 13, 18, 59)},
			want: utc(2025, 1, 13, 19, 0),
		},
		{
			name: "Should advance a week when ref equals the occurrence",
			args: args{weekday: domain.Monday, hour: 14, timezone: "America/New_York", ref: utc(2025, 1, 13, 19, 0)},
			want: utc(2025, 1, 20, 19, 0),
		},
		{
			name: "Should use the local calendar day of the zone, not UTC",
			// 2025-01-14 03:00 UTC is still Monday evening in New York
			args: args{weekday: domain.Tuesday, hour: 9, timezone: "America/New_York", ref: utc(2025, 1, 14, 3, 0)},
			want: utc(2025, 1, 14, 14, 0),
		},
		{
			name: "Should handle half-hour offsets",
			args: args{weekday: domain.Monday, hour: 9, timezone: "Asia/Kolkata", ref: utc(2025, 1, 8, 0, 0)},
			want: utc(2025, 1, 13, 3, 30),
		},
		{
			name: "Should round a New York spring gap forward to the transition",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "America/New_York", ref: utc(2025, 3, 8, 12, 0)},
			want: utc(2025, 3, 9, 7, 0),
		},
		{
			name: "Should pick the earlier instant for an ambiguous New York time",
			args: args{weekday: domain.Sunday, hour: 1, minute: 30, timezone: "America/New_York", ref: utc(2025, 11, 1, 12, 0)},
			want: utc(2025, 11, 2, 5, 30),
		},
		{
			name: "Should round a Berlin spring gap forward to the transition",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "Europe/Berlin", ref: utc(2025, 3, 29, 12, 0)},
			want: utc(2025, 3, 30, 1, 0),
		},
		{
			name: "Should pick the earlier instant for an ambiguous Berlin time",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "Europe/Berlin", ref: utc(2025, 10, 25, 12, 0)},
			want: utc(2025, 10, 26, 0, 30),
		},
		{
			name: "Should pick the earlier instant for an ambiguous Sydney time",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "Australia/Sydney", ref: utc(2025, 4, 5, 0, 0)},
			want: utc(2025, 4, 5, 15, 30),
		},
		{
			name: "Should round a Sydney spring gap forward to the transition",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "Australia/Sydney", ref: utc(2025, 10, 4, 0, 0)},
			want: utc(2025, 10, 4, 16, 0),
		},
		{
			name: "Should skip to next week when the gap transition already passed",
			args: args{weekday: domain.Sunday, hour: 2, minute: 30, timezone: "America/New_York", ref: utc(2025, 3, 9, 7, 10)},
			want: utc(2025, 3, 16, 6, 30),
		},
		{
			name:    "Should reject an unknown timezone",
			args:    args{weekday: domain.Monday, hour: 14, timezone: "Mars/Olympus_Mons", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "Should reject an empty timezone",
			args:    args{weekday: domain.Monday, hour: 14, timezone: "", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "Should reject the Local pseudo zone",
			args:    args{weekday: domain.Monday, hour: 14, timezone: "Local", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "Should reject weekday out of range",
			args:    args{weekday: 7, hour: 14, timezone: "UTC", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "Should reject hour out of range",
			args:    args{weekday: domain.Monday, hour: 24, timezone: "UTC", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "Should reject minute out of range",
			args:    args{weekday: domain.Monday, hour: 10, minute: 60, timezone: "UTC", ref: utc(2025, 1, 8, 12, 0)},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(tt.args.weekday, tt.args.hour, tt.args.minute, tt.args.timezone, tt.args.ref)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNextOccurrence_MatchesLocalWallClock(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "America/Los_Angeles", "Europe/London",
		"Europe/Berlin", "Asia/Tokyo", "Asia/Kolkata", "Asia/Kathmandu", "Australia/Sydney", "Pacific/Auckland"}
	// mid January: no zone in the list changes offset within the following week
	ref := utc(2025, 1, 15, 10, 17)

	for _, zone := range zones {
		loc, err := LoadLocation(zone)
		require.NoError(t, err)

		for weekday := domain.Monday; weekday <= domain.Sunday; weekday++ {
			for hour := 0; hour < 24; hour++ {
				for _, minute := range []int{0, 15, 45} {
					got, err := NextOccurrence(weekday, hour, minute, zone, ref)
					require.NoError(t, err)

					require.True(t, got.After(ref), "%s %d %02d:%02d not after ref", zone, weekday, hour, minute)
					require.LessOrEqual(t, got.Sub(ref), 7*24*time.Hour)

					local := got.In(loc)
					require.Equal(t, weekday, WeekdayOf(got, loc))
					require.Equal(t, hour, local.Hour())
					require.Equal(t, minute, local.Minute())
				}
			}
		}
	}
}

func TestNextOccurrence_FollowsUSDaylightSavingAcrossYear(t *testing.T) {
	loc, err := LoadLocation("America/New_York")
	require.NoError(t, err)

	dstStart := utc(2025, 3, 9, 7, 0)
	dstEnd := utc(2025, 11, 2, 6, 0)

	ref := utc(2025, 1, 1, 0, 0)
	var previous time.Time
	irregularWeeks := 0

	for i := 0; i < 52; i++ {
		got, err := NextOccurrence(domain.Monday, 14, 0, "America/New_York", ref)
		require.NoError(t, err)

		local := got.In(loc)
		assert.Equal(t, time.Monday, local.Weekday())
		assert.Equal(t, 14, local.Hour())

		_, offset := local.Zone()
		if got.Before(dstStart) || !got.Before(dstEnd) {
			assert.Equal(t, -5*3600, offset, "expected EST on %s", got)
			assert.Equal(t, 19, got.Hour())
		} else {
			assert.Equal(t, -4*3600, offset, "expected EDT on %s", got)
			assert.Equal(t, 18, got.Hour())
		}

		if !previous.IsZero() && got.Sub(previous) != 7*24*time.Hour {
			irregularWeeks++
		}
		previous = got
		ref = got
	}

	assert.Equal(t, 2, irregularWeeks, "offset should change exactly at the two US transitions")
}

func TestOnDate(t *testing.T) {
	got, err := OnDate(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), 14, 0, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, utc(2025, 7, 14, 18, 0), got)

	got, err = OnDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), 2, 15, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, utc(2025, 3, 9, 7, 0), got)

	_, err = OnDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), 25, 0, "UTC")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = OnDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), 10, 0, "Nowhere/City")
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		at       time.Time
		want     string
		wantErr  bool
	}{
		{name: "Should format EST", timezone: "America/New_York", at: utc(2025, 1, 10, 0, 0), want: "UTC-5"},
		{name: "Should format EDT", timezone: "America/New_York", at: utc(2025, 7, 10, 0, 0), want: "UTC-4"},
		{name: "Should format UTC", timezone: "UTC", at: utc(2025, 7, 10, 0, 0), want: "UTC+0"},
		{name: "Should format half hour offsets", timezone: "Asia/Kolkata", at: utc(2025, 7, 10, 0, 0), want: "UTC+5:30"},
		{name: "Should format quarter hour offsets", timezone: "Asia/Kathmandu", at: utc(2025, 7, 10, 0, 0), want: "UTC+5:45"},
		{name: "Should reject unknown zones", timezone: "Not/AZone", at: utc(2025, 7, 10, 0, 0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOffset(tt.timezone, tt.at)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidTimezone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
