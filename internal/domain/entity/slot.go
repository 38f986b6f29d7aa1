package entity

import "time"

// RecurringSlot is a moderator's standing weekly availability.
type RecurringSlot struct {
	ID        int64
	OwnerID   string
	Weekday   int // 0 = Monday ... 6 = Sunday
	Hour      int
	Minute    int
	Timezone  string
	CreatedAt time.Time
}
