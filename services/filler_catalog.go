package services

import "kuvert.link/models"

// Katalog adları. Response'ta ve etkinlik override'larında anahtar olarak
// kullanılır.
const (
	CatalogHostSelf        = "host_self"
	CatalogMysteryHost     = "mystery_host"
	CatalogLipsSealedClue1 = "lips_sealed_clue1"
	CatalogLipsSealedClue2 = "lips_sealed_clue2"
)

// Global varsayılan dolgu mesajları. Katılımcıya dönük kopya İsveççe.
// Etkinlik bazında override edilebilir; global mutable state yok, her
// istekte merge edilip response'a gömülür.
var defaultFillerCatalogs = map[string][]string{
	CatalogHostSelf: {
		"Du vet redan vem som lagar maten – det är ju du!",
		"Ingen ledtråd behövs, det doftar redan från ditt kök.",
		"Kvällens värdpar är... trumvirvel... du själv!",
		"Spana in spegeln så ser du kvällens värd.",
	},
	CatalogMysteryHost: {
		"Kvällens värdpar är ett mysterium – inte ens kuvertet vet något om dem.",
	},
	CatalogLipsSealedClue1: {
		"Värdparet håller tätt – ingen ledtråd den här gången.",
	},
	CatalogLipsSealedClue2: {
		"Fortfarande knäpptyst från värdparet – men håll utkik efter gatunamnet.",
	},
}

// MergedFillerCatalogs varsayılanların üzerine etkinlik override'larını
// yazar. Override boş liste içeriyorsa yok sayılır.
func MergedFillerCatalogs(overrides models.MessageCatalog) map[string][]string {
	merged := make(map[string][]string, len(defaultFillerCatalogs))
	for name, msgs := range defaultFillerCatalogs {
		merged[name] = msgs
	}
	for name, msgs := range overrides {
		if len(msgs) > 0 {
			merged[name] = msgs
		}
	}
	return merged
}

// pickFiller katalogdan index'e göre mesaj seçer (katalog boyutuna göre mod).
func pickFiller(catalogs map[string][]string, name string, index int) *string {
	msgs := catalogs[name]
	if len(msgs) == 0 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	msg := msgs[index%len(msgs)]
	return &msg
}
