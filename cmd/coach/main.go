// Package main is the entry point for the coach CLI, a personalized AI
// productivity coach. It generates a coaching profile once during
// onboarding, then uses it on every daily plan, weekly review, quick
// question, and motivational boost.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/internal/coach"
	"github.com/brain-time/coach/internal/config"
	"github.com/brain-time/coach/internal/data"
	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/internal/logging"
	"github.com/brain-time/coach/pkg/types"
)

var (
	version = "0.1.0"
	cfgPath string
	dataDir string
	verbose bool
	cfg     *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coach",
		Short: "Coach - AI productivity coaching, personalized once and used everywhere",
		Long: `Coach is an AI productivity assistant built around a personalized profile:
answer the onboarding questionnaire once and every feature speaks to your
role, goals, language, and schedule.

Get started:        coach onboard --answers answers.json
Plan your day:      coach plan --hours 3
Review your week:   coach review
Quick help:         coach quick "how do I start my tax return?"`,
		PersistentPreRunE: initApp,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.coach/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.coach)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Coach v%s\n", version)
		},
	})

	rootCmd.AddCommand(onboardCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(quickCmd())
	rootCmd.AddCommand(motivateCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(resetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════

func initApp(cmd *cobra.Command, args []string) error {
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFromPath(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	return logging.Setup(cfg.Logging)
}

// initializeStore opens the SQLite store. The returned cleanup must be
// deferred by the caller.
func initializeStore() (*data.Store, func(), error) {
	store, err := data.New(cfg.Data.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, func() { store.Close() }, nil
}

// initializeService wires the store and provider into the coaching service.
func initializeService() (*coach.Service, *data.Store, func(), error) {
	store, cleanup, err := initializeStore()
	if err != nil {
		return nil, nil, nil, err
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	return coach.New(store, provider), store, cleanup, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// ONBOARD COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func onboardCmd() *cobra.Command {
	var (
		answersFile string
		language    string
		role        string
		goals       []string
		timePerDay  string
		challenge   string
		practice    string
		motivation  string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your personalized coaching profile",
		Long: `Create a personalized coaching profile from your onboarding answers.

Answers come either from a JSON file or from flags:

  coach onboard --answers answers.json
  coach onboard --language Deutsch --role "Parent with young children" \
      --goal "Quran memorization/study" --goal "Career development" \
      --time "1-2 hours"

Run 'coach onboard questions' to see the questionnaire. If the AI cannot
be reached, a sensible default profile is created instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var answers types.OnboardingAnswers
			if answersFile != "" {
				raw, err := os.ReadFile(answersFile)
				if err != nil {
					return fmt.Errorf("read answers file: %w", err)
				}
				if err := json.Unmarshal(raw, &answers); err != nil {
					return fmt.Errorf("parse answers file: %w", err)
				}
			} else {
				answers = types.OnboardingAnswers{
					Language:        language,
					Role:            role,
					Goals:           goals,
					AvailableTime:   timePerDay,
					Challenges:      challenge,
					IslamicPractice: practice,
					MotivationStyle: motivation,
				}
			}

			if answers.IsZero() {
				return fmt.Errorf("no answers given, use --answers or the question flags")
			}

			svc, _, cleanup, err := initializeService()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			profile, err := svc.Onboard(ctx, answers)
			if err != nil {
				return err
			}

			fmt.Println("✅ Profile created")
			printProfile(profile)
			if profile.IsDefault {
				fmt.Println("\nNote: AI generation was unavailable, a default profile was created.")
				fmt.Println("Run 'coach onboard' again later to regenerate.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "JSON file with onboarding answers")
	cmd.Flags().StringVar(&language, "language", "English", "preferred language (English, Deutsch, العربية (Arabic), Français)")
	cmd.Flags().StringVar(&role, "role", "", "what best describes you")
	cmd.Flags().StringArrayVar(&goals, "goal", nil, "a main goal (repeatable)")
	cmd.Flags().StringVar(&timePerDay, "time", "", "focused time per day")
	cmd.Flags().StringVar(&challenge, "challenge", "", "biggest productivity challenge")
	cmd.Flags().StringVar(&practice, "practice", "", "Islamic practice level")
	cmd.Flags().StringVar(&motivation, "motivation", "", "what motivates you most")

	cmd.AddCommand(&cobra.Command{
		Use:   "questions",
		Short: "Show the onboarding questionnaire",
		Run: func(cmd *cobra.Command, args []string) {
			for i, q := range aiconfig.OnboardingQuestions {
				required := ""
				if q.Required {
					required = " (required)"
				}
				fmt.Printf("%d. %s%s\n", i+1, q.Text["en"], required)
				for _, opt := range q.Options {
					fmt.Printf("   - %s\n", opt)
				}
				fmt.Println()
			}
		},
	})

	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// PLAN COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func planCmd() *cobra.Command {
	var (
		date    string
		hours   float64
		extra   string
		showRaw bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a time-blocked plan for a day",
		Long: `Generate a realistic, time-blocked schedule for one day.

  coach plan --hours 3
  coach plan --date 2026-09-01 --hours 4.5 --context "Doctor at 2pm"

Regenerating for the same date records a fresh plan; the previous one is
kept as history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}

			svc, _, cleanup, err := initializeService()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			if showRaw {
				plan, err := svc.PlanFor(ctx, date)
				if err != nil {
					return err
				}
				if plan == nil {
					fmt.Printf("No plan for %s yet. Run 'coach plan --date %s' to create one.\n", date, date)
					return nil
				}
				fmt.Println(plan.Content)
				return nil
			}

			fmt.Printf("Generating plan for %s (%.1f hours available)...\n\n", date, hours)
			plan, err := svc.GenerateDailyPlan(ctx, date, hours, extra)
			if err != nil {
				return err
			}

			fmt.Println(plan.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "plan date, YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&hours, "hours", 3.0, "available hours for the day")
	cmd.Flags().StringVar(&extra, "context", "", "extra priorities or constraints for the day")
	cmd.Flags().BoolVar(&showRaw, "show", false, "show the stored plan instead of generating")

	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// REVIEW COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func reviewCmd() *cobra.Command {
	var reflections string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Generate a weekly review from your recent plans",
		Long: `Generate an AI retrospective over your recent daily plans.

  coach review
  coach review --reflections "Mornings worked, evenings did not"

The review covers the current week (Monday through Sunday) and needs at
least one daily plan on record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := initializeService()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			weekStart, weekEnd := coach.WeekBounds(time.Now())
			fmt.Printf("Reviewing week %s to %s...\n\n", weekStart, weekEnd)

			review, err := svc.GenerateWeeklyReview(ctx, weekStart, weekEnd, reflections)
			if err != nil {
				return err
			}

			fmt.Println(review.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&reflections, "reflections", "", "your own notes about the week")

	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// QUICK AND MOTIVATE COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func quickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick [question]",
		Short: "Get brief, actionable help with a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := initializeService()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			answer, err := svc.QuickTask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func motivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motivate [topic]",
		Short: "Get a short motivational boost",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := initializeService()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			boost, err := svc.Motivate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(boost)
			return nil
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// PROFILE COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your active coaching profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := initializeStore()
			if err != nil {
				return err
			}
			defer cleanup()

			profile, err := store.ActiveProfile(context.Background())
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Println("No profile yet. Run 'coach onboard' to create one.")
				return nil
			}

			printProfile(profile)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List all profiles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := initializeStore()
			if err != nil {
				return err
			}
			defer cleanup()

			profiles, err := store.AllProfiles(context.Background())
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println("No profiles yet.")
				return nil
			}

			for _, p := range profiles {
				marker := " "
				if p.IsActive {
					marker = "*"
				}
				kind := "generated"
				if p.IsDefault {
					kind = "default"
				}
				fmt.Printf("%s #%d  %s  %s  %s  (%s)\n",
					marker, p.ID, p.CreatedAt.Format("2006-01-02 15:04"),
					p.LanguageCode, p.CoachingTone, kind)
			}
			return nil
		},
	})

	return cmd
}

func printProfile(p *types.UserProfile) {
	fmt.Println("─────────────────────")
	fmt.Printf("Coaching Tone:  %s\n", p.CoachingTone)
	fmt.Printf("Focus Areas:    %s\n", strings.Join(p.KeyFocusAreas, ", "))
	fmt.Printf("Time Blocks:    %d minutes\n", p.TimeBlockSize)
	fmt.Printf("Islamic Level:  %s\n", p.IslamicLevel)
	fmt.Printf("Language:       %s\n", aiconfig.LanguageFor(p.LanguageCode).Name)
	fmt.Printf("Created:        %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	if p.IsDefault {
		fmt.Println("Kind:           default (AI generation was unavailable)")
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATS AND RESET COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := initializeStore()
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := store.Stats(context.Background())
			if err != nil {
				return err
			}

			fmt.Println("Coach Database")
			fmt.Println("─────────────────────")
			fmt.Printf("Profiles:       %d (%d active)\n", stats.TotalProfiles, stats.ActiveProfiles)
			fmt.Printf("Daily Plans:    %d\n", stats.DailyPlans)
			fmt.Printf("Weekly Reviews: %d\n", stats.WeeklyReviews)
			fmt.Printf("Size:           %.1f KB\n", float64(stats.SizeBytes)/1024)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all profiles, plans, and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("this deletes all coach data, re-run with --force to confirm")
			}

			store, cleanup, err := initializeStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.Reset(context.Background()); err != nil {
				return err
			}

			fmt.Println("✅ All data deleted. Run 'coach onboard' to start fresh.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deletion")

	return cmd
}
