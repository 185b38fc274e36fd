package models

import "github.com/google/uuid"

// MatchPlan kimin kime ev sahipliği yaptığının versiyonlanmış bir ataması.
// Eşleştirme algoritması her çalıştığında yeni bir plan üretir; motor sadece
// etkinliğin aktif planını okur.
type MatchPlan struct {
	BaseModel
	EventID  uint      `gorm:"index;not null"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	IsActive bool      `gorm:"default:false;index"`

	Envelopes       []Envelope       `gorm:"foreignKey:MatchPlanID"`
	ClueAssignments []ClueAssignment `gorm:"foreignKey:MatchPlanID"`
}
