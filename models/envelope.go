package models

import "time"

// Course sabit yemek turları + sentetik efterfest turu.
type Course string

const (
	CourseAppetizer  Course = "appetizer"
	CourseMain       Course = "main"
	CourseDessert    Course = "dessert"
	CourseAfterparty Course = "afterparty"
)

// MealCourses sıralı yemek turları (efterfest hariç).
var MealCourses = []Course{CourseAppetizer, CourseMain, CourseDessert}

// IsMeal turun gerçek bir yemek turu olup olmadığı.
func (c Course) IsMeal() bool {
	return c == CourseAppetizer || c == CourseMain || c == CourseDessert
}

// Envelope (çift, tur, aktif plan) başına bir kayıt: katılımcının o tur
// hakkında ne zaman ne bilebileceğini süren zamanlama satırı.
//
// Altı opsiyonel timestamp sabit sırada artan olmalı:
// teasing <= clue1 <= clue2 <= street <= number <= opened.
// Sıra dışı veri üst katmanın (eşleştirme servisi) hatasıdır; motor
// geriye doğru taramayla en ileri eşleşen durumu üretir.
type Envelope struct {
	BaseModel
	MatchPlanID uint   `gorm:"index:idx_env_plan_pair_course,unique;not null"`
	PairID      uint   `gorm:"index:idx_env_plan_pair_course,unique;not null"`
	Course      Course `gorm:"type:varchar(20);index:idx_env_plan_pair_course,unique;not null"`

	// Henüz atama yoksa null; bu durumda tur LOCKED kalır.
	HostPairID *uint `gorm:"index"`

	TeasingAt *time.Time `gorm:"type:timestamptz"`
	Clue1At   *time.Time `gorm:"type:timestamptz"`
	Clue2At   *time.Time `gorm:"type:timestamptz"`
	StreetAt  *time.Time `gorm:"type:timestamptz"`
	NumberAt  *time.Time `gorm:"type:timestamptz"`
	OpenedAt  *time.Time `gorm:"type:timestamptz"`

	// Ev sahibi çekildi veya misafir bıraktı: satır kalıcı olarak devre dışı
	// ve açığa çıkarmadan tamamen hariç tutulur.
	Cancelled bool `gorm:"default:false;index"`

	// Eşleştirme sırasında önceden hesaplanmış bisiklet mesafesi (km).
	CyclingKm *float64 `gorm:"type:double precision"`

	Pair     Pair  `gorm:"foreignKey:PairID"`
	HostPair *Pair `gorm:"foreignKey:HostPairID"`
}

// ClueAssignment (ev sahibi, tur) başına: ev sahibinin birleşik fun fact
// listesine işaret eden sıralı küçük indeksler. Eşleştirme anında sabitlenir.
type ClueAssignment struct {
	BaseModel
	MatchPlanID uint    `gorm:"index:idx_clue_plan_host_course,unique;not null"`
	HostPairID  uint    `gorm:"index:idx_clue_plan_host_course,unique;not null"`
	Course      Course  `gorm:"type:varchar(20);index:idx_clue_plan_host_course,unique;not null"`
	ClueIndexes IntList `gorm:"type:jsonb"`
}
