package models

import "time"

// Event bir vandrande middag etkinliği.
type Event struct {
	BaseModel
	Name      string      `gorm:"type:varchar(255);not null"`
	IsEnabled bool        `gorm:"default:true;index"`
	Detail    EventDetail `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Pairs      []Pair      `gorm:"foreignKey:EventID"`
	MatchPlans []MatchPlan `gorm:"foreignKey:EventID"`
}

// EventDetail etkinliğin detayları ve efterfest yapılandırması.
type EventDetail struct {
	BaseModel
	EventID   uint      `gorm:"uniqueIndex;not null"`
	City      string    `gorm:"type:varchar(100)"`
	EventDate time.Time `gorm:"index;type:timestamptz"`
	Timezone  string    `gorm:"type:varchar(50);default:'Europe/Stockholm'"`

	// Efterfest (afterparty) yapılandırması. Hepsi opsiyonel; etkinlik
	// efterfest olmadan da yayınlanabilir.
	AfterpartyTime      *time.Time `gorm:"type:timestamptz"`
	AfterpartyBYOB      bool       `gorm:"type:boolean;default:false"`
	AfterpartyNotes     string     `gorm:"type:text"`
	AfterpartyLat       *float64   `gorm:"type:double precision"`
	AfterpartyLng       *float64   `gorm:"type:double precision"`
	AfterpartyDoorCode  string     `gorm:"type:varchar(20)"`
	AfterpartyHostNames StringList `gorm:"type:jsonb"`

	// Manuel zamanlama override'ları. Boşsa TEASING = AfterpartyTime - 30dk,
	// OPEN = AfterpartyTime olarak türetilir. Zon aşamaları sadece organizatör
	// açıkça zamanlarsa görünür.
	AfterpartyTeasingAt  *time.Time `gorm:"type:timestamptz"`
	AfterpartyZoneAt     *time.Time `gorm:"type:timestamptz"`
	AfterpartyClosingAt  *time.Time `gorm:"type:timestamptz"`
	AfterpartyRevealedAt *time.Time `gorm:"type:timestamptz"`

	// Organizatör önizleme anahtarının bcrypt hash'i. Önizleme çağrılarında
	// "now" override'ı sadece bu anahtar doğrulanırsa kabul edilir.
	PreviewKeyHash string `gorm:"type:varchar(255)"`

	// Etkinlik bazlı dolgu mesajı override'ları (katalog adı -> mesajlar).
	// Boş bırakılan kataloglar için global varsayılanlar kullanılır.
	FillerOverrides MessageCatalog `gorm:"type:jsonb"`
}
