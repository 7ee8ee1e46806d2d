// Command rote schedules spaced-repetition reviews for opaque items. It
// stores per-item schedule state in a local SQLite file and prints what is
// due; the content of the items themselves lives elsewhere.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/spf13/pflag"

	"github.com/example/rote/internal/config"
	"github.com/example/rote/internal/domain"
	"github.com/example/rote/internal/review"
	"github.com/example/rote/internal/storage"
)

const usage = `Usage: rote <command> [flags]

Commands:
  add      Seed an item into the review queue
  review   Record a rating for an item
  due      List the cards due right now
  list     List every card on record
  preview  Show the interval each rating would produce for an item
  history  Show the review log, for one item or all
  summary  Show card counts by mastery and category

Flags:
`

func main() {
	flags := pflag.NewFlagSet("rote", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	flags.String("db", "rote.db", "Path to the SQLite database file")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	item := flags.String("item", "", "Item identifier")
	category := flags.String("category", "", "Category tag for the item")
	difficulty := flags.String("difficulty", "", "Difficulty tag: low, medium or high")
	rating := flags.String("rating", "", "Rating: again, hard, good or easy")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	command := flags.Arg(0)
	if command == "" {
		flags.Usage()
		os.Exit(2)
	}

	if err := run(command, cfg, *item, *category, *difficulty, *rating); err != nil {
		slog.Error("Command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(command string, cfg config.Config, item, category, difficulty, rating string) error {
	kv, err := storage.OpenSQLite(cfg.DB)
	if err != nil {
		return err
	}
	defer kv.Close()

	sched, err := review.New(storage.NewCardStore(kv), storage.NewHistoryStore(kv), cfg.Scheduler.Params())
	if err != nil {
		return err
	}

	switch command {
	case "add":
		return runAdd(sched, item, category, difficulty)
	case "review":
		return runReview(sched, item, category, difficulty, rating)
	case "due":
		return runDue(sched)
	case "list":
		return runList(sched)
	case "preview":
		return runPreview(sched, item, category, difficulty)
	case "history":
		return runHistory(sched, item)
	case "summary":
		return runSummary(sched)
	}
	return fmt.Errorf("unknown command %q", command)
}

func runAdd(sched *review.Scheduler, item, category, difficulty string) error {
	if item == "" {
		return fmt.Errorf("add requires --item")
	}
	card, err := sched.AddToReviewQueue(item, category, difficulty)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s (category %q, difficulty %s), due %s.\n",
		card.ItemID, card.Category, card.Difficulty, card.DueAt.Format(time.DateTime))
	return nil
}

func runReview(sched *review.Scheduler, item, category, difficulty, rating string) error {
	if item == "" {
		return fmt.Errorf("review requires --item")
	}
	parsed, err := domain.ParseRating(rating)
	if err != nil {
		return err
	}
	card, err := sched.RecordReview(item, category, difficulty, parsed)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s for %s.\n", parsed, card.ItemID)
	fmt.Printf("  Next review: %s (%s)\n", card.DueAt.Format("2006-01-02"), pluralDays(card.IntervalDays))
	fmt.Printf("  Ease:        %.2f\n", card.EaseFactor)
	fmt.Printf("  Mastery:     %s\n", card.Mastery.Label())
	return nil
}

func runDue(sched *review.Scheduler) error {
	due, err := sched.ListDueCards(time.Now().UTC())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		fmt.Println("Nothing due. Come back later.")
		return nil
	}
	printCards(due)
	fmt.Printf("\n%d due.\n", len(due))
	return nil
}

func runList(sched *review.Scheduler) error {
	cards, err := sched.ListAllCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("No cards yet. Seed one with: rote add --item <id>")
		return nil
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ItemID < cards[j].ItemID })
	printCards(cards)
	fmt.Printf("\n%d cards.\n", len(cards))
	return nil
}

func runPreview(sched *review.Scheduler, item, category, difficulty string) error {
	if item == "" {
		return fmt.Errorf("preview requires --item")
	}
	card, err := sched.GetCard(item, category, difficulty)
	if err != nil {
		return err
	}
	fmt.Printf("Next interval for %s by rating:\n", card.ItemID)
	for _, r := range domain.Ratings() {
		days, err := sched.PreviewInterval(card, r)
		if err != nil {
			return err
		}
		fmt.Printf("  %-5s %s\n", r, pluralDays(days))
	}
	return nil
}

func runHistory(sched *review.Scheduler, item string) error {
	if item == "" {
		return runFullHistory(sched)
	}
	records, err := sched.History(item)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No reviews recorded for %s.\n", item)
		return nil
	}
	for _, record := range records {
		fmt.Printf("%s  %-5s  interval %-4d ease %.2f  %s\n",
			record.ReviewedAt.Format(time.DateTime), record.Rating,
			record.IntervalDays, record.EaseFactor, record.Mastery.Label())
	}
	fmt.Printf("\n%d reviews.\n", len(records))
	return nil
}

func runFullHistory(sched *review.Scheduler) error {
	records, err := sched.FullHistory()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No reviews recorded yet.")
		return nil
	}
	for _, record := range records {
		fmt.Printf("%s  %-28s %-5s  interval %-4d ease %.2f  %s\n",
			record.ReviewedAt.Format(time.DateTime), record.ItemID, record.Rating,
			record.IntervalDays, record.EaseFactor, record.Mastery.Label())
	}
	fmt.Printf("\n%d reviews.\n", len(records))
	return nil
}

func runSummary(sched *review.Scheduler) error {
	summary, err := sched.Summary()
	if err != nil {
		return err
	}
	fmt.Printf("Cards: %d (%d due now)\n", summary.TotalCards, summary.DueNow)

	fmt.Println("\nBy mastery:")
	levels := []domain.MasteryLevel{
		domain.MasteryNew, domain.MasteryLearning, domain.MasteryYoung,
		domain.MasteryMature, domain.MasteryMastered,
	}
	for _, level := range levels {
		if count := summary.ByMastery[level]; count > 0 {
			fmt.Printf("  %-9s %d\n", level.Label(), count)
		}
	}

	if len(summary.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			name := category
			if name == "" {
				name = "(none)"
			}
			fmt.Printf("  %-16s %d\n", name, summary.ByCategory[category])
		}
	}
	return nil
}

func printCards(cards []domain.ReviewCard) {
	fmt.Printf("%-28s %-14s %-9s %-6s %-7s %s\n", "ITEM", "CATEGORY", "MASTERY", "REPS", "LAPSES", "DUE")
	for _, card := range cards {
		fmt.Printf("%-28s %-14s %-9s %-6d %-7d %s\n",
			card.ItemID, card.Category, card.Mastery.Label(),
			card.Repetitions, card.Lapses, card.DueAt.Format("2006-01-02"))
	}
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
