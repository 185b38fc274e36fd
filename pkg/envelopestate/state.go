// Package envelopestate kuvert yaşam döngüsünün saf durum hesabı.
//
// Durum hiçbir yerde saklanmaz: her istekte timestamp seti + "now"dan
// yeniden türetilir. Bu, gösterilen durumun otoritatif zamanlamadan
// sapmasını imkansız kılar.
package envelopestate

import "time"

// State sıralı kuvert durumu. Büyük değer daha fazla açığa çıkmış demektir.
type State int

const (
	StateLocked State = iota
	StateTeasing
	StateClue1
	StateClue2
	StateStreet
	StateNumber
	StateOpen
)

var stateNames = map[State]string{
	StateLocked:  "LOCKED",
	StateTeasing: "TEASING",
	StateClue1:   "CLUE_1",
	StateClue2:   "CLUE_2",
	StateStreet:  "STREET",
	StateNumber:  "NUMBER",
	StateOpen:    "OPEN",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "LOCKED"
}

// Timestamps bir kuvertin altı opsiyonel açığa çıkma zamanı.
// Mevcut olanlar teasing <= clue1 <= clue2 <= street <= number <= opened
// sırasında artan olmalı; motor bunu varsaymaz, sadece uyarır.
type Timestamps struct {
	TeasingAt *time.Time
	Clue1At   *time.Time
	Clue2At   *time.Time
	StreetAt  *time.Time
	NumberAt  *time.Time
	OpenedAt  *time.Time
}

// ForState verilen durumun ilişkili timestamp'ini döndürür (LOCKED için nil).
func (ts Timestamps) ForState(s State) *time.Time {
	switch s {
	case StateTeasing:
		return ts.TeasingAt
	case StateClue1:
		return ts.Clue1At
	case StateClue2:
		return ts.Clue2At
	case StateStreet:
		return ts.StreetAt
	case StateNumber:
		return ts.NumberAt
	case StateOpen:
		return ts.OpenedAt
	}
	return nil
}

// Compute en ileriden en geriye tarar ve timestamp'i mevcut ve <= now olan
// ilk durumu döndürür; hiçbiri eşleşmezse LOCKED.
//
// Tarama yönü kasıtlı: ara timestamp'ler üst yapılandırma eksikleri yüzünden
// null kalabilirken daha ileri olanlar dolu olabilir. Geriye doğru tarama,
// eksik bir ara adımın katılımcıyı daha az açılmış bir duruma geriletmesini
// engeller.
func Compute(ts Timestamps, now time.Time) State {
	for s := StateOpen; s > StateLocked; s-- {
		at := ts.ForState(s)
		if at != nil && !at.After(now) {
			return s
		}
	}
	return StateLocked
}

// NonMonotonic ardışık iki mevcut timestamp'in sıra dışı olduğu ilk çifti
// raporlar. Veri giriş hatası tespiti için; Compute davranışını etkilemez.
func NonMonotonic(ts Timestamps) bool {
	var prev *time.Time
	for s := StateTeasing; s <= StateOpen; s++ {
		at := ts.ForState(s)
		if at == nil {
			continue
		}
		if prev != nil && at.Before(*prev) {
			return true
		}
		prev = at
	}
	return false
}

// Prediction bir sonraki açığa çıkma tahmini.
type Prediction struct {
	State     State
	At        time.Time
	InSeconds int64
}

// NextReveal mevcut durumdan bir sonraki durumun timestamp'ine bakar.
// Terminal durumda veya sonraki timestamp yoksa nil döner. InSeconds tam
// saniye, 0'a kırpılmış; geçiş anında tam 0 olur.
func NextReveal(ts Timestamps, current State, now time.Time) *Prediction {
	if current >= StateOpen {
		return nil
	}
	next := current + 1
	at := ts.ForState(next)
	if at == nil {
		return nil
	}
	secs := int64(at.Sub(now) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return &Prediction{State: next, At: *at, InSeconds: secs}
}
