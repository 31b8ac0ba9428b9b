// cartareport exports the menu and its like counters to a spreadsheet so the
// restaurant can review which dishes get traction: one sheet per category
// plus a sheet for the current popular ranking.
//
// Usage:
//
//	cartareport --out report.xlsx
//	CARTA_LIKES_BACKEND=firestore CARTA_FIRESTORE_PROJECT=my-proj cartareport --lang en --out report.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/identity"
	"github.com/cartasycatalogos/cartamuestraBR/internal/menu"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/config"
	pfirestore "github.com/cartasycatalogos/cartamuestraBR/internal/platform/firestore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories"
	firestoreRepo "github.com/cartasycatalogos/cartamuestraBR/internal/repositories/firestore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories/jsonstore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/services"
)

const popularSheet = "Popular"

func main() {
	lang := flag.String("lang", "", "document language (defaults to the configured primary)")
	out := flag.String("out", "carta-report.xlsx", "output .xlsx path")
	flag.Parse()

	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	ctx = observability.WithLogger(ctx, logger.Named("cartareport"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if *lang == "" {
		*lang = cfg.Locale.Primary
	}

	var loader menu.Loader
	if cfg.Menu.DataURL != "" {
		loader = menu.NewHTTPLoader(cfg.Menu.DataURL, nil)
	} else {
		loader = menu.NewDirLoader(cfg.Menu.DataDir)
	}

	doc, err := loader.Load(ctx, *lang)
	if err != nil {
		logger.Fatal("failed to load menu document", zap.String("lang", *lang), zap.Error(err))
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		logger.Fatal("failed to open counter backend", zap.Error(err))
	}
	defer cleanup()

	counts := readCounts(ctx, doc, repo)
	if err := writeReport(*out, doc, counts, cfg.Menu.PopularSize); err != nil {
		logger.Fatal("failed to write report", zap.Error(err))
	}
	fmt.Printf("OK: %d items -> %s\n", len(doc.Items), *out)
}

func openRepository(cfg config.Config) (repositories.LikeRepository, func(), error) {
	if cfg.Likes.Backend == config.BackendFirestore {
		provider := pfirestore.NewProvider(cfg.Firestore)
		repo, err := firestoreRepo.NewLikeRepository(provider, cfg.Firestore.Collection)
		if err != nil {
			return nil, func() {}, err
		}
		return repo, func() { _ = provider.Close() }, nil
	}
	store, err := jsonstore.Open(cfg.Likes.LocalPath)
	if err != nil {
		return nil, func() {}, err
	}
	return store, func() {}, nil
}

func readCounts(ctx context.Context, doc domain.Document, repo repositories.LikeRepository) map[string]int64 {
	counts := make(map[string]int64, len(doc.Items))
	for _, item := range doc.Items {
		id := identity.Resolve(item.Title)
		if id == "" {
			continue
		}
		if _, done := counts[id]; done {
			continue
		}
		count, err := repo.Count(ctx, id)
		if err != nil {
			observability.FromContext(ctx).Warn("count read failed",
				zap.String("item_id", id),
				zap.Error(err),
			)
			count = 0
		}
		counts[id] = count
	}
	return counts
}

func writeReport(path string, doc domain.Document, counts map[string]int64, popularSize int) error {
	f := excelize.NewFile()

	header := []interface{}{"title", "item_id", "price", "likes"}
	for _, cat := range doc.Categories {
		sheet := sheetName(cat.Label, cat.ID)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		for i, item := range doc.ItemsFor(cat.ID) {
			id := identity.Resolve(item.Title)
			row := []interface{}{item.Title, id, item.Price, counts[id]}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet(popularSheet); err != nil {
		return err
	}
	popularHeader := []interface{}{"rank", "title", "item_id", "likes"}
	if err := f.SetSheetRow(popularSheet, "A1", &popularHeader); err != nil {
		return err
	}
	for i, p := range services.PopularItems(doc, counts, popularSize) {
		row := []interface{}{i + 1, p.Item.Title, identity.Resolve(p.Item.Title), p.Count}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(popularSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// sheetName keeps Excel's 31-char limit; category ids are short and unique,
// labels are friendlier when they fit.
func sheetName(label, id string) string {
	name := label
	if name == "" || len(name) > 31 {
		name = id
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
