package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/aimcal/birthdaykeeper/internal/config"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/services"
	"github.com/aimcal/birthdaykeeper/internal/storage"
	"github.com/aimcal/birthdaykeeper/internal/views"
	"github.com/spf13/afero"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	store     *storage.Store
	auth      services.AuthService
	birthdays services.BirthdayService

	fs     afero.Fs
	rng    *rand.Rand
	now    func() time.Time
	reader *bufio.Reader
	out    io.Writer

	user     *models.User
	listOpts views.ListOptions
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, parseLogLevel(c.LogLevel))

	store, err := storage.Open(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	as := services.NewAuthService(store, log)
	bs := services.NewBirthdayService(store, log)

	return &App{
		config:    c,
		log:       log,
		store:     store,
		auth:      as,
		birthdays: bs,
		fs:        afero.NewOsFs(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		listOpts:  views.ListOptions{Sort: views.SortByMonth},
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// requireLogin reports whether a user is logged in, telling the user to
// authenticate when not.
func (a *App) requireLogin() bool {
	if a.user == nil {
		fmt.Fprintln(a.out, "Please login first (or 'register' to create an account)")
		return false
	}
	return true
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
