package seeders

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/pkg/viewer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultCardContent editör açıldığında gösterilen örnek içerik.
var defaultCardContent = viewer.CardContent{
	Layout:        viewer.LayoutDefault,
	Theme:         viewer.ThemeRose,
	Title:         "Happy Birthday!",
	RecipientName: "Saloni",
	SenderName:    "Abhinay",
	Message:       "Wishing you a day filled with happiness and a year filled with joy. Happy Birthday!",
	Shayari:       "May your day be filled with the same joy you bring to others.",
	Images: []string{
		"https://picsum.photos/id/1011/800/600",
		"https://picsum.photos/id/1015/800/600",
		"https://picsum.photos/id/1019/800/600",
	},
}

func categoriesToSeed() []models.Category {
	return []models.Category{
		{Name: "Birthday", Slug: "birthday", Icon: "🎂", SortOrder: 1, IsEnabled: true},
		{Name: "Love", Slug: "love", Icon: "❤️", SortOrder: 2, IsEnabled: true},
		{Name: "Wedding", Slug: "wedding", Icon: "💍", SortOrder: 3, IsEnabled: true},
		{Name: "Friendship", Slug: "friendship", Icon: "👯", SortOrder: 4, IsEnabled: true},
		{Name: "Thank You", Slug: "thank-you", Icon: "🙏", SortOrder: 5, IsEnabled: true},
		{Name: "Congratulations", Slug: "congrats", Icon: "🎉", SortOrder: 6, IsEnabled: true},
	}
}

type templateSeed struct {
	categorySlug string
	template     models.Template
}

func templatesToSeed() []templateSeed {
	contentFor := func(layout viewer.Layout, theme viewer.Theme) viewer.CardContent {
		content := defaultCardContent
		content.Layout = layout
		content.Theme = theme
		return content
	}

	return []templateSeed{
		{
			categorySlug: "love",
			template: models.Template{
				Name: "Valentine Proposal", Slug: "valentine-proposal",
				Layout: viewer.LayoutValentine, Theme: viewer.ThemeRose,
				PreviewImageURL: "https://images.unsplash.com/photo-1518199266791-5375a83190b7?auto=format&fit=crop&w=800&q=80",
				PriceINR:        299, IsPremium: true, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutValentine, viewer.ThemeRose),
			},
		},
		{
			categorySlug: "friendship",
			template: models.Template{
				Name: "Friendship Journey", Slug: "friendship-journey",
				Layout: viewer.LayoutTimeline, Theme: viewer.ThemeFriendship,
				PreviewImageURL: "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?auto=format&fit=crop&w=800&q=80",
				PriceINR:        199, IsPremium: true, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutTimeline, viewer.ThemeFriendship),
			},
		},
		{
			categorySlug: "birthday",
			template: models.Template{
				Name: "Floral Birthday", Slug: "floral-birthday",
				Layout: viewer.LayoutDefault, Theme: viewer.ThemeRose,
				PreviewImageURL: "https://picsum.photos/id/40/400/600",
				PriceINR:        0, IsPremium: false, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutDefault, viewer.ThemeRose),
			},
		},
		{
			categorySlug: "birthday",
			template: models.Template{
				Name: "Neon Party", Slug: "neon-party",
				Layout: viewer.LayoutDefault, Theme: viewer.ThemeOcean,
				PreviewImageURL: "https://picsum.photos/id/103/400/600",
				PriceINR:        99, IsPremium: true, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutDefault, viewer.ThemeOcean),
			},
		},
		{
			categorySlug: "birthday",
			template: models.Template{
				Name: "Cake Surprise", Slug: "cake-surprise",
				Layout: viewer.LayoutBirthdayCake, Theme: viewer.ThemeSunset,
				PreviewImageURL: "https://picsum.photos/id/292/400/600",
				PriceINR:        0, IsPremium: false, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutBirthdayCake, viewer.ThemeSunset),
			},
		},
		{
			categorySlug: "wedding",
			template: models.Template{
				Name: "Royal Wedding Invite", Slug: "royal-wedding-invite",
				Layout: viewer.LayoutWedding, Theme: viewer.ThemeGold,
				PreviewImageURL: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?auto=format&fit=crop&w=800&q=80",
				PriceINR:        499, IsPremium: true, IsEnabled: true,
				DefaultContent: contentFor(viewer.LayoutWedding, viewer.ThemeGold),
			},
		},
	}
}

// SeedCatalog kategori ve şablon kataloğunu idempotent şekilde oluşturur.
// Mevcut kayıtlara dokunulmaz; yalnızca eksik slug'lar eklenir.
func SeedCatalog(db *gorm.DB) error {
	var errorOccurred bool

	configslog.SLog.Info("Katalog seed işlemi başlıyor...")

	categoryIDs := make(map[string]uint)
	for _, categoryToSeed := range categoriesToSeed() {
		var existing models.Category
		result := db.Where("slug = ?", categoryToSeed.Slug).First(&existing)
		if result.Error == nil {
			categoryIDs[existing.Slug] = existing.ID
			configslog.SLog.Debugf("Kategori '%s' zaten mevcut, oluşturma atlanıyor.", categoryToSeed.Slug)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kategori kontrol edilirken veritabanı hatası",
				zap.String("slug", categoryToSeed.Slug), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Kategori '%s' oluşturuluyor...", categoryToSeed.Slug)
		if err := db.Create(&categoryToSeed).Error; err != nil {
			configslog.Log.Error("Kategori oluşturulamadı",
				zap.String("slug", categoryToSeed.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		categoryIDs[categoryToSeed.Slug] = categoryToSeed.ID
	}

	for _, seed := range templatesToSeed() {
		categoryID, ok := categoryIDs[seed.categorySlug]
		if !ok {
			configslog.SLog.Warnf("Şablon '%s' için kategori '%s' bulunamadı, atlanıyor.",
				seed.template.Slug, seed.categorySlug)
			errorOccurred = true
			continue
		}

		var existing models.Template
		result := db.Where("slug = ?", seed.template.Slug).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Şablon '%s' zaten mevcut, oluşturma atlanıyor.", seed.template.Slug)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Şablon kontrol edilirken veritabanı hatası",
				zap.String("slug", seed.template.Slug), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		template := seed.template
		template.CategoryID = categoryID
		configslog.SLog.Infof("Şablon '%s' oluşturuluyor...", template.Slug)
		if err := db.Create(&template).Error; err != nil {
			configslog.Log.Error("Şablon oluşturulamadı",
				zap.String("slug", template.Slug), zap.Error(err))
			errorOccurred = true
		}
	}

	if errorOccurred {
		return errors.New("katalog seed edilirken en az bir hata oluştu")
	}
	configslog.SLog.Info("Katalog seed işlemi başarıyla tamamlandı.")
	return nil
}
