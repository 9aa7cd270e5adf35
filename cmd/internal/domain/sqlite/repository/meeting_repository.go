package repository

import (
	"scheduler/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultMeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *DefaultMeetingRepository {
	return &DefaultMeetingRepository{db: db}
}

// HasConflict reports whether the person already occupies the given slot.
func (m *DefaultMeetingRepository) HasConflict(personID string, slot int64) (bool, error) {
	var count int64
	err := m.db.Model(&entity.ScheduleSlot{}).
		Where("person_id = ?", personID).
		Where("slot = ?", slot).
		Count(&count).Error
	return count > 0, err
}

// Save commits the meeting together with one slot reservation per
// participant in a single transaction. A participant id repeated in the
// list reserves its slot only once.
func (m *DefaultMeetingRepository) Save(meeting *entity.Meeting, participants []string) error {
	reserved := make(map[string]bool, len(participants))
	for i, pid := range participants {
		if reserved[pid] {
			continue
		}
		reserved[pid] = true
		meeting.Slots = append(meeting.Slots, entity.ScheduleSlot{
			PersonID: pid,
			Slot:     meeting.StartsAt,
			Ordinal:  i,
		})
	}
	return m.db.Create(meeting).Error
}

// FindUpcomingByPersonID returns every meeting the person participates in
// that starts strictly after asOf, in booking insertion order.
func (m *DefaultMeetingRepository) FindUpcomingByPersonID(personID string, asOf int64) ([]*entity.Meeting, error) {
	var meetings []*entity.Meeting
	err := m.db.Model(&entity.Meeting{}).
		Select("meetings.*").
		Joins("JOIN schedule_slots ON schedule_slots.meeting_seq = meetings.seq").
		Where("schedule_slots.person_id = ?", personID).
		Where("meetings.starts_at > ?", asOf).
		Order("meetings.seq asc").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal asc")
		}).
		Find(&meetings).Error

	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// OccupiedSlots returns the distinct candidate slots occupied by any of the
// given persons.
func (m *DefaultMeetingRepository) OccupiedSlots(personIDs []string, candidates []int64) ([]int64, error) {
	var slots []int64
	err := m.db.Model(&entity.ScheduleSlot{}).
		Where("person_id IN ?", personIDs).
		Where("slot IN ?", candidates).
		Distinct().
		Pluck("slot", &slots).Error
	return slots, err
}
