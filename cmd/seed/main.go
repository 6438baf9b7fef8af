// Command seed populates the catalog with a starter set of categories and
// books. Run it once against an empty database.
package main

import (
	"context"

	"perpus/internal/config"
	"perpus/internal/db"
	"perpus/internal/logger"
	"perpus/internal/model"
)

type seedBook struct {
	title   string
	summary string
	year    string
	pages   int
	stock   int
}

var catalog = map[string][]seedBook{
	"Fiksi": {
		{"Laskar Pelangi", "Sepuluh anak Belitung mengejar pendidikan.", "2005", 529, 5},
		{"Bumi Manusia", "Minke dan Annelies di Hindia Belanda.", "1980", 535, 3},
		{"Cantik Itu Luka", "Sejarah keluarga Dewi Ayu di Halimunda.", "2002", 505, 2},
	},
	"Teknologi": {
		{"Clean Code", "A handbook of agile software craftsmanship.", "2008", 464, 4},
		{"The Pragmatic Programmer", "From journeyman to master.", "1999", 352, 4},
	},
	"Sejarah": {
		{"Sapiens", "A brief history of humankind.", "2011", 443, 3},
		{"Guns, Germs, and Steel", "The fates of human societies.", "1997", 480, 2},
	},
	"Sains": {
		{"A Brief History of Time", "From the big bang to black holes.", "1988", 212, 3},
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.Category{}, &model.Book{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	seeded := 0
	for name, books := range catalog {
		category := model.Category{Name: name}
		if err := gormDB.WithContext(ctx).
			Where(model.Category{Name: name}).
			FirstOrCreate(&category).Error; err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("seed category")
		}

		for _, b := range books {
			book := model.Book{
				Title:      b.title,
				Summary:    b.summary,
				Year:       b.year,
				Pages:      b.pages,
				Stock:      b.stock,
				CategoryID: category.ID,
			}
			res := gormDB.WithContext(ctx).
				Where(model.Book{Title: b.title, CategoryID: category.ID}).
				FirstOrCreate(&book)
			if res.Error != nil {
				log.Fatal().Err(res.Error).Str("book", b.title).Msg("seed book")
			}
			seeded += int(res.RowsAffected)
		}
	}

	log.Info().Int("books_created", seeded).Msg("seed complete")
}
