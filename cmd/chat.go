package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/chat"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/logger"
	"github.com/akhila-3010/job-tracker/internal/match"
)

const exitCommand = "exit"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the job assistant from the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		runChat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("resume-file", "r", "", "a plain-text resume used for match scoring")
}

func runChat(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumeText := ""
	if path := cmd.Flag("resume-file").Value.String(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Fatal("reading resume file", zap.Error(err))
		}
		resumeText = string(data)
	}

	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("AI scoring disabled", zap.Error(err))
	}

	maxLogLen := 0
	if config.AI != nil && config.AI.Gemini != nil {
		maxLogLen = config.AI.Gemini.MaxLogLength
	}

	matcher := match.NewMatcher(generator, logger, maxLogLen)
	router := chat.NewRouter(generator, matcher, logger, maxLogLen)
	source := jobs.NewSource(newUpstream(config, logger), nil, logger)

	list, err := source.Fetch(ctx, jobs.Filters{})
	if err != nil {
		logger.Fatal("fetching jobs", zap.Error(err))
	}

	fmt.Printf("Loaded %d jobs. Type %q to quit.\n", list.Len(), exitCommand)

	prompt := promptui.Prompt{Label: "you"}
	for {
		message, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			logger.Fatal("reading input", zap.Error(err))
		}

		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if strings.EqualFold(message, exitCommand) {
			return
		}

		response := router.Process(ctx, message, list, resumeText)
		printResponse(response)
	}
}

func printResponse(response chat.Response) {
	fmt.Println(response.Message)
	for _, job := range response.Jobs {
		line := fmt.Sprintf("  - %s at %s (%s, %s)", job.Title, job.Company, job.Location, job.WorkMode)
		if job.MatchScore > 0 {
			line += fmt.Sprintf(" [score %d]", job.MatchScore)
		}
		fmt.Println(line)
	}
}
