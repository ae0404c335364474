package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	activityinadapter "studyrank/internal/modules/activity/adapter/in"
	activityoutadapter "studyrank/internal/modules/activity/adapter/out"
	activityin "studyrank/internal/modules/activity/port/in"
	activityservice "studyrank/internal/modules/activity/service"
	activityusecase "studyrank/internal/modules/activity/usecase"
	groupsinadapter "studyrank/internal/modules/groups/adapter/in"
	groupsoutadapter "studyrank/internal/modules/groups/adapter/out"
	groupsin "studyrank/internal/modules/groups/port/in"
	groupsservice "studyrank/internal/modules/groups/service"
	groupsusecase "studyrank/internal/modules/groups/usecase"
	sessioninadapter "studyrank/internal/modules/session/adapter/in"
	sessionoutadapter "studyrank/internal/modules/session/adapter/out"
	sessionin "studyrank/internal/modules/session/port/in"
	sessionservice "studyrank/internal/modules/session/service"
	sessionusecase "studyrank/internal/modules/session/usecase"
	"studyrank/internal/platform/clock"
	"studyrank/internal/platform/config"
	"studyrank/internal/platform/rest"
	uiapp "studyrank/internal/ui/app"
)

// App wires the modules once per process; both the CLI commands and the TUI
// run against the same graph.
type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	GroupsCLI   groupsinadapter.CLIHandler
	ActivityCLI activityinadapter.CLIHandler

	// REST backs the doctor command's health probes.
	REST *rest.Client

	session  sessionin.Usecase
	groups   groupsin.Usecase
	activity activityin.Usecase
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	// The TUI owns the terminal, so request logs go to a file.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(logFile, nil))

	restClient := rest.New(cfg.ServerURL, nil, logger)
	clk := clock.SystemClock{}

	store, err := sessionoutadapter.NewSQLiteSessionStore(cfg.DBPath, clk)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(sessionoutadapter.NewAPIClient(restClient)),
		store,
	)
	groupsUC := groupsusecase.NewInteractor(
		groupsservice.NewGroupService(groupsoutadapter.NewAPIClient(restClient)),
		sessionUC,
	)
	activityUC := activityusecase.NewInteractor(
		activityservice.NewActivityService(activityoutadapter.NewAPIClient(restClient)),
		groupsUC,
		sessionUC,
	)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		GroupsCLI:   groupsinadapter.NewCLIHandler(groupsUC),
		ActivityCLI: activityinadapter.NewCLIHandler(activityUC),
		REST:        restClient,
		session:     sessionUC,
		groups:      groupsUC,
		activity:    activityUC,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.session, app.groups, app.activity)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
