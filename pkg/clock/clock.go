// Package clock istek başına tek "now" kaynağı.
//
// Organizatör önizlemesi "now"u override edebilir; override tüm alt
// hesaplamalara (durum, geri sayım, efterfest anlatısı) aynı şekilde
// uygulanmalı. Bir cevap içinde gerçek ve simüle zaman asla karışmaz.
package clock

import "time"

// Clock "now" sağlayıcısı.
type Clock interface {
	Now() time.Time
}

// Real sistem saati (UTC).
type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed sabitlenmiş bir an; önizleme ve testler için.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
