package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü hata.
var ErrNotFound = errors.New("kayıt bulunamadı")
