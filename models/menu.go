package models

// Language codes used by the storefront copy.
const (
	LangEnglish = "en"
	LangAmharic = "am"
	LangArabic  = "ar"
)

// LocalizedText maps a language code to display copy.
type LocalizedText map[string]string

// Get returns the copy for lang, falling back to English.
func (lt LocalizedText) Get(lang string) string {
	if text, ok := lt[lang]; ok && text != "" {
		return text
	}
	return lt[LangEnglish]
}

// MenuCategories is the fixed category set the storefront filters on.
var MenuCategories = []string{"cakes", "pastries", "catering", "icecream"}

// MenuItem is one purchasable catalog entry. Seeded at startup, read-only
// afterwards.
type MenuItem struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	Name        LocalizedText `json:"name" gorm:"serializer:json"`
	Description LocalizedText `json:"description" gorm:"serializer:json"`
	Price       float64       `json:"price"`
	Category    string        `json:"category" gorm:"index"`
	Image       string        `json:"image"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
