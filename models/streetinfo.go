package models

// StreetInfo ev sahibi çift başına adres bilgisi. Tam numara ve kapı kodu
// terminal durumdan (OPEN) önce asla dışarı sızmamalı.
type StreetInfo struct {
	BaseModel
	PairID uint `gorm:"uniqueIndex;not null"`

	StreetName string `gorm:"type:varchar(150);not null"`
	// Düşük çözünürlüklü public aralık, örn "12-40". STREET durumunda görünür.
	NumberRange  string  `gorm:"type:varchar(20)"`
	StreetNumber int     `gorm:"type:integer;not null"`
	Apartment    *string `gorm:"type:varchar(20)"`
	DoorCode     *string `gorm:"type:varchar(20)"`
	City         string  `gorm:"type:varchar(100)"`
	Lat          float64 `gorm:"type:double precision"`
	Lng          float64 `gorm:"type:double precision"`
}
