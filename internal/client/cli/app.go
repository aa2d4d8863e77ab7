package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/levelup/internal/client/api"
	"github.com/dmitrijs2005/levelup/internal/client/config"
	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/dmitrijs2005/levelup/internal/client/services"
	"github.com/dmitrijs2005/levelup/internal/client/store"
	"github.com/dmitrijs2005/levelup/internal/logging"

	_ "modernc.org/sqlite"
)

// accountService is the slice of services.AccountService the CLI needs.
// Tests substitute a lightweight fake.
type accountService interface {
	CurrentUser() *models.User
	Restore(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password, country string) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, name, email, country, newPassword string) (*models.User, error)
	UpdateProfileImage(ctx context.Context, path string) (*models.User, error)
}

// catalogService mirrors the catalog operations used by the CLI.
type catalogService interface {
	EnsureSeeded(ctx context.Context) error
	SyncProducts(ctx context.Context)
	FetchRemoteCatalog(ctx context.Context) []models.Product
	RemoteCategories(ctx context.Context) []string
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
}

type App struct {
	config  *config.Config
	account accountService
	catalog catalogService
	cart    *services.Cart
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewText(os.Stderr)

	apiClient := api.NewRESTClient(
		c.BackendEndpointAddr,
		c.CatalogEndpointAddr,
		&http.Client{Timeout: c.RequestTimeout},
	)

	as := services.NewAccountService(repos.Users, repos.Session, apiClient, logger)
	cs := services.NewCatalogService(repos.Products, apiClient, logger)

	return &App{
		config:  c,
		account: as,
		catalog: cs,
		cart:    services.NewCart(),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.account.CurrentUser() != nil
}

func (a *App) getStatus() string {
	u := a.account.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if n := a.cart.TotalItems(); n > 0 {
		s = fmt.Sprintf("%s, cart:%d", s, n)
	}
	return fmt.Sprintf("(%s)", s)
}

// Run seeds the catalog, restores a persisted session, and enters the REPL.
// It blocks until the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	if err := a.catalog.EnsureSeeded(ctx); err != nil {
		log.Printf("error seeding catalog: %s", err.Error())
	}

	if u, err := a.account.Restore(ctx); err != nil {
		log.Printf("error restoring session: %s", err.Error())
	} else if u != nil {
		log.Printf("Welcome back, %s", u.Name)
	}

	log.Println("Welcome to LevelUp CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
