package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/levelup/internal/client/models"
)

// Products prints the whole local catalog.
func (a *App) Products(ctx context.Context) error {
	items, err := a.catalog.ListAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printProducts(items)
	return nil
}

// Filter prints the local catalog restricted to one category. The match is
// case-insensitive but exact, so "consolas" finds "Consolas" and nothing
// else.
func (a *App) Filter(ctx context.Context, category string) error {
	items, err := a.catalog.ListByCategory(ctx, category)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(items) == 0 {
		fmt.Printf("No products in category %q\n", category)
		return nil
	}
	printProducts(items)
	return nil
}

// Remote prints the remote catalog without touching the local store.
// When the remote is unreachable the listing is simply empty.
func (a *App) Remote(ctx context.Context) error {
	items := a.catalog.FetchRemoteCatalog(ctx)
	if len(items) == 0 {
		fmt.Println("Remote catalog is empty or unavailable")
		return nil
	}
	printProducts(items)
	return nil
}

// Categories prints the remote category names.
func (a *App) Categories(ctx context.Context) error {
	cats := a.catalog.RemoteCategories(ctx)
	if len(cats) == 0 {
		fmt.Println("No categories available")
		return nil
	}
	for _, c := range cats {
		fmt.Println(c)
	}
	return nil
}

// Sync pulls the remote catalog into the local store. The service decides
// what is imported and logs any degradation itself.
func (a *App) Sync(ctx context.Context) error {
	a.catalog.SyncProducts(ctx)
	fmt.Println("Sync finished")
	return nil
}

func printProducts(items []models.Product) {
	for _, p := range items {
		fmt.Printf("%4d  %-40s  $%.0f  [%s]  stock:%d\n", p.ID, p.Name, p.Price, p.Category, p.Stock)
	}
}
