package database

import (
	"gorm.io/gorm"

	"github.com/muniras-delights/bakery-app/models"
	"github.com/muniras-delights/bakery-app/utils"
)

// CatalogItems is the static menu. Edited at build time only; prices are in
// US dollars.
var CatalogItems = []models.MenuItem{
	{
		ID:          "honey-cake",
		Name:        models.LocalizedText{"en": "Honey Cake", "am": "የማር ኬክ", "ar": "كيكة العسل"},
		Description: models.LocalizedText{"en": "Layered honey cake with cream filling", "am": "በክሬም የተሞላ የማር ኬክ", "ar": "كيكة عسل بطبقات الكريمة"},
		Price:       25,
		Category:    "cakes",
		Image:       "/images/honey-cake.jpg",
	},
	{
		ID:          "chocolate-fudge-cake",
		Name:        models.LocalizedText{"en": "Chocolate Fudge Cake", "am": "የቸኮሌት ኬክ", "ar": "كيكة الشوكولاتة"},
		Description: models.LocalizedText{"en": "Rich chocolate cake with fudge frosting", "am": "በቸኮሌት ክሬም የተለበጠ ኬክ", "ar": "كيكة شوكولاتة غنية بكريمة الفدج"},
		Price:       30,
		Category:    "cakes",
		Image:       "/images/chocolate-fudge-cake.jpg",
	},
	{
		ID:          "vanilla-birthday-cake",
		Name:        models.LocalizedText{"en": "Vanilla Birthday Cake", "am": "የቫኒላ የልደት ኬክ", "ar": "كيكة عيد ميلاد بالفانيليا"},
		Description: models.LocalizedText{"en": "Classic vanilla sponge, decorated to order", "am": "እንደ ትእዛዝዎ የሚዘጋጅ የቫኒላ ኬክ", "ar": "إسفنجية فانيليا كلاسيكية تزين حسب الطلب"},
		Price:       28,
		Category:    "cakes",
		Image:       "/images/vanilla-birthday-cake.jpg",
	},
	{
		ID:          "baklava-tray",
		Name:        models.LocalizedText{"en": "Baklava Tray", "am": "ባቅላዋ", "ar": "صينية بقلاوة"},
		Description: models.LocalizedText{"en": "Pistachio baklava, two dozen pieces", "am": "በፒስታሽዮ የተሰራ ባቅላዋ", "ar": "بقلاوة بالفستق، أربع وعشرون قطعة"},
		Price:       18,
		Category:    "pastries",
		Image:       "/images/baklava-tray.jpg",
	},
	{
		ID:          "butter-croissants",
		Name:        models.LocalizedText{"en": "Butter Croissants (6)", "am": "የቅቤ ክሯሳን (6)", "ar": "كرواسون بالزبدة (6)"},
		Description: models.LocalizedText{"en": "Half a dozen flaky butter croissants", "am": "ስድስት የቅቤ ክሯሳን", "ar": "ستة كرواسون هش بالزبدة"},
		Price:       9,
		Category:    "pastries",
		Image:       "/images/butter-croissants.jpg",
	},
	{
		ID:          "date-cookies",
		Name:        models.LocalizedText{"en": "Date Cookies Box", "am": "የተምር ብስኩት", "ar": "علبة معمول التمر"},
		Description: models.LocalizedText{"en": "Traditional date-filled cookies", "am": "በተምር የተሞሉ ብስኩቶች", "ar": "معمول تقليدي محشو بالتمر"},
		Price:       12,
		Category:    "pastries",
		Image:       "/images/date-cookies.jpg",
	},
	{
		ID:          "party-pastry-box",
		Name:        models.LocalizedText{"en": "Party Pastry Box", "am": "የድግስ መጋገሪያ ሳጥን", "ar": "علبة حلويات للحفلات"},
		Description: models.LocalizedText{"en": "Assorted pastries for gatherings of ten", "am": "ለአስር ሰው የሚሆን የተለያየ መጋገሪያ", "ar": "تشكيلة حلويات تكفي عشرة أشخاص"},
		Price:       45,
		Category:    "catering",
		Image:       "/images/party-pastry-box.jpg",
	},
	{
		ID:          "wedding-dessert-table",
		Name:        models.LocalizedText{"en": "Wedding Dessert Table", "am": "የሰርግ ጣፋጭ ጠረጴዛ", "ar": "طاولة حلويات الزفاف"},
		Description: models.LocalizedText{"en": "Full dessert spread, serves fifty", "am": "ለሃምሳ ሰው የሚበቃ ጣፋጭ", "ar": "بوفيه حلويات كامل يكفي خمسين شخصاً"},
		Price:       220,
		Category:    "catering",
		Image:       "/images/wedding-dessert-table.jpg",
	},
	{
		ID:          "vanilla-icecream-tub",
		Name:        models.LocalizedText{"en": "Vanilla Ice Cream Tub", "am": "የቫኒላ አይስ ክሬም", "ar": "علبة آيس كريم فانيليا"},
		Description: models.LocalizedText{"en": "One liter of homemade vanilla ice cream", "am": "አንድ ሊትር የቤት ቫኒላ አይስ ክሬም", "ar": "لتر واحد من آيس كريم الفانيليا المنزلي"},
		Price:       10,
		Category:    "icecream",
		Image:       "/images/vanilla-icecream-tub.jpg",
	},
	{
		ID:          "mango-icecream-tub",
		Name:        models.LocalizedText{"en": "Mango Ice Cream Tub", "am": "የማንጎ አይስ ክሬም", "ar": "علبة آيس كريم مانجو"},
		Description: models.LocalizedText{"en": "One liter of fresh mango ice cream", "am": "አንድ ሊትር የማንጎ አይስ ክሬም", "ar": "لتر واحد من آيس كريم المانجو الطازج"},
		Price:       10,
		Category:    "icecream",
		Image:       "/images/mango-icecream-tub.jpg",
	},
}

// SeedCatalog loads the static menu into the catalog table. Safe to call
// more than once.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&CatalogItems).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded catalog with %d menu items", len(CatalogItems))
	return nil
}
