package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/llehouerou/weddingstory/internal/app"
	"github.com/llehouerou/weddingstory/internal/audio"
	"github.com/llehouerou/weddingstory/internal/config"
	"github.com/llehouerou/weddingstory/internal/errmsg"
	"github.com/llehouerou/weddingstory/internal/gesture"
	"github.com/llehouerou/weddingstory/internal/logging"
	"github.com/llehouerou/weddingstory/internal/notify"
	"github.com/llehouerou/weddingstory/internal/rsvp"
	"github.com/llehouerou/weddingstory/internal/scenes"
)

var errNoTerminal = errors.New("weddingstory needs an interactive terminal; use `weddingstory links` or `weddingstory ics` instead")

func runStory(cmd *cobra.Command, ctx *commandContext) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errNoTerminal
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	inv, err := ctx.ensureContent()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpContentLoad, err))
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closer.Close()

	model := newModel(cfg, scenes.All(inv, newSceneDeps(cfg, inv.RSVP.Recipient, logger)), logger)

	logger.Info("story started", "title", inv.Title, "scenes", len(model.Scenes))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func newSceneDeps(cfg *config.Config, recipient string, logger *slog.Logger) scenes.Deps {
	rc := cfg.GetRSVPConfig()

	var sender rsvp.Sender = rsvp.SimulatedSender{Delay: rc.SimulateDelay}
	if cfg.HasRSVPEndpoint() {
		sender = rsvp.NewHTTPSender(rc.Endpoint, rc.Token, recipient, rc.Timeout)
	} else {
		logger.Info("no rsvp endpoint configured, submissions are simulated")
	}

	var notifier notify.Notifier
	if cfg.NotifyOnRSVP() {
		notifier = notify.New()
	}

	return scenes.Deps{
		Sender:        sender,
		SubmitTimeout: rc.Timeout,
		Notifier:      notifier,
		ExportDir:     cfg.ExportDir(),
		Logger:        logger,
	}
}

func newModel(cfg *config.Config, sc []scenes.Scene, logger *slog.Logger) app.Model {
	sts := cfg.GetStoryConfig()
	gc := cfg.GetGestureConfig()

	var onComplete func() tea.Cmd
	if sts.QuitOnComplete {
		onComplete = func() tea.Cmd { return tea.Quit }
	}

	return app.New(sc, app.Options{
		SceneDuration:    sts.SceneDuration,
		ProgressInterval: sts.ProgressInterval,
		StartMuted:       sts.StartMuted,
		Gestures: gesture.Config{
			TapThreshold:  gc.TapThreshold,
			SwipeDistance: gc.SwipeDistance,
		},
		OnComplete: onComplete,
		Audio:      audio.NewSilent(),
		Logger:     logger,
	})
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
