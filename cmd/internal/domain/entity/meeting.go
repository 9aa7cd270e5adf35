package entity

// Meeting keeps an autoincrement Seq alongside its public uuid so schedule
// lookups can preserve booking insertion order.
type Meeting struct {
	Seq       int64  `gorm:"primaryKey"`
	ID        string `gorm:"uniqueIndex;not null"`
	StartsAt  int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`

	// Relations
	Slots []ScheduleSlot `gorm:"foreignKey:MeetingSeq;references:Seq"`
}

// ScheduleSlot is both the participant list of a meeting and the schedule
// index: one row per participant per occupied hour. The composite unique
// index is the hard backstop against double-booking.
type ScheduleSlot struct {
	ID         int64  `gorm:"primaryKey"`
	MeetingSeq int64  `gorm:"not null;index"`
	PersonID   string `gorm:"not null;uniqueIndex:idx_person_slot"` // References: persons(id)
	Slot       int64  `gorm:"not null;uniqueIndex:idx_person_slot"`
	Ordinal    int    `gorm:"not null"`
}
