package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/talentscout/hiring-assistant/internal/ai"
	"github.com/talentscout/hiring-assistant/internal/ai/gemini"
	"github.com/talentscout/hiring-assistant/internal/engine"
	"github.com/talentscout/hiring-assistant/internal/logger"
	"github.com/talentscout/hiring-assistant/internal/questions"
	"github.com/talentscout/hiring-assistant/internal/secrets"
	"github.com/talentscout/hiring-assistant/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSaveSnapshot = "Save profile snapshot"
	PromptDiscard      = "Discard"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive intake session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-ai", false, "skip the remote model even when configured")
	runCmd.Flags().String("snapshot-dir", "", "directory for saved profile snapshots. Default is 'data'.")

	viper.BindPFlag("snapshot-dir", runCmd.Flags().Lookup("snapshot-dir"))
}

// run drives one interactive intake session to completion.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting talentscout", zap.String("version", version))

	remote := prepareRemoteSource(ctx, cmd, config, logger)

	eng := engine.New(remote, questions.NewBank(), logger)
	state := engine.NewState()

	fmt.Println(engine.Greeting)

	input := promptui.Prompt{Label: "you"}

	for !state.Ended {
		text, err := input.Run()
		if err != nil {
			// Ctrl-C or closed stdin ends the session like an exit keyword.
			logger.Info("input closed", zap.Error(err))
			text = "exit"
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		reply := eng.HandleTurn(ctx, state, text)
		fmt.Println(reply)
	}

	logger.Info("session ended",
		zap.String("reason", string(state.Reason)),
		zap.Int("turns", len(state.Turns)),
		zap.Int("questions", len(state.Questions)),
	)

	if err := offerSnapshot(state, config, logger); err != nil {
		logger.Warn("saving snapshot", zap.Error(err))
	}
}

// prepareRemoteSource builds the Gemini question source, or returns nil so
// the engine uses the deterministic bank.
func prepareRemoteSource(ctx context.Context, cmd *cobra.Command, config *Config, log *zap.Logger) ai.QuestionSource {
	if flag := cmd.Flag("no-ai"); flag != nil && strings.EqualFold(flag.Value.String(), "true") {
		log.Info("remote model disabled by flag")
		return nil
	}

	source, err := newQuestionSource(ctx, config.AI, log)
	if err != nil {
		log.Warn("remote model unavailable, using the question bank", zap.Error(err))
		return nil
	}

	return source
}

func newQuestionSource(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.QuestionSource, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, ai.ErrUnavailable
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model)

	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, timeout, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAsker(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

// offerSnapshot asks whether to persist the finished profile and writes it
// when confirmed.
func offerSnapshot(state *engine.State, config *Config, log *zap.Logger) error {
	snapshot, err := session.FromProfile(state.Candidate.Snapshot(), string(state.Reason))
	if err != nil {
		return err
	}

	choice := promptui.Select{
		Label: "Session finished",
		Items: []string{PromptSaveSnapshot, PromptDiscard},
	}

	_, action, err := choice.Run()
	if err != nil || action != PromptSaveSnapshot {
		log.Info("snapshot discarded")
		return nil
	}

	dir := config.SnapshotDir
	if dir == "" {
		dir = viper.GetString("snapshot-dir")
	}

	path, err := snapshot.WriteFile(dir)
	if err != nil {
		return err
	}

	log.Info("snapshot saved", zap.String("path", path))
	fmt.Printf("Profile snapshot saved to %s\n", path)
	return nil
}
