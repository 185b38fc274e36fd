// Package pairtoken katılımcı çiftini tanımlayan imzalı erişim token'ı.
//
// Token opak bir string olarak linkte taşınır (teacher'daki link key gibi)
// ve çift + etkinlik id'sine çözülür. Geçiş dönemi için ham sayısal pair ID
// fallback'i vardır; yapılandırmayla kapatılır.
package pairtoken

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("geçersiz erişim token'ı")
)

// Claims imzalı token'ın içeriği.
type Claims struct {
	PairID  uint `json:"pid"`
	EventID uint `json:"eid"`
	jwt.RegisteredClaims
}

// Codec token imzalama/çözme.
type Codec struct {
	secret             []byte
	allowLegacyPairIDs bool
}

// NewCodec yeni bir Codec oluşturur.
func NewCodec(secret string, allowLegacyPairIDs bool) *Codec {
	return &Codec{secret: []byte(secret), allowLegacyPairIDs: allowLegacyPairIDs}
}

// Sign çift için süresiz bir erişim token'ı üretir. Linkler e-postayla bir
// kez gönderilir ve etkinlik boyunca geçerli kalır.
func (c *Codec) Sign(pairID, eventID uint) (string, error) {
	claims := Claims{
		PairID:  pairID,
		EventID: eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now().UTC()),
			Issuer:   "kuvert.link",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Resolve token'ı çift id'sine çözer. İmzalı token parse edilemezse ve
// legacy mod açıksa, tamamen sayısal değerler ham pair ID kabul edilir
// (eventID 0 döner, çağıran çiftin etkinliğini DB'den bulur).
func (c *Codec) Resolve(raw string) (pairID uint, eventID uint, err error) {
	if raw == "" {
		return 0, 0, ErrInvalidToken
	}

	claims := &Claims{}
	token, parseErr := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if parseErr == nil && token.Valid && claims.PairID != 0 {
		return claims.PairID, claims.EventID, nil
	}

	if c.allowLegacyPairIDs {
		if id, convErr := strconv.ParseUint(raw, 10, 32); convErr == nil && id != 0 {
			return uint(id), 0, nil
		}
	}

	return 0, 0, ErrInvalidToken
}
