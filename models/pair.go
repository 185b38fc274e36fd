package models

// Pair bir katılımcı çifti (veya tek kişi). Profil verisi motor açısından
// salt okunurdur; kayıt formları bu repo'nun dışında.
type Pair struct {
	BaseModel
	EventID     uint    `gorm:"index;not null"`
	Name        string  `gorm:"type:varchar(150);not null"`
	PartnerName *string `gorm:"type:varchar(150)"`
	Email       string  `gorm:"type:varchar(150);index"`

	// Çiftin birleşik fun fact listesi. ClueAssignment indeksleri bu listeye
	// işaret eder; liste atama sonrası düzenlenebilir, indeksler taşabilir.
	FunFacts StringList `gorm:"type:jsonb"`

	// Kişi bazlı alerji listeleri. Partner ayrı sayılır.
	Allergies        StringList `gorm:"type:jsonb"`
	PartnerAllergies StringList `gorm:"type:jsonb"`
	AllergyNotes     string     `gorm:"type:text"`

	StreetInfo *StreetInfo `gorm:"foreignKey:PairID"`
}

// DisplayNames çiftin görünen isimleri.
func (p *Pair) DisplayNames() []string {
	names := []string{p.Name}
	if p.PartnerName != nil && *p.PartnerName != "" {
		names = append(names, *p.PartnerName)
	}
	return names
}
