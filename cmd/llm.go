package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/adapticode/adapticode/internal/llm"
	"github.com/adapticode/adapticode/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-18s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-18s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		e, err := s.EventRepo().GetLLMEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", e.ID)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if e.RequestBody != "" {
			fmt.Println(e.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if e.ResponseBody != "" {
			fmt.Println(e.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rows, err := s.EventRepo().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Model and Purpose")
		fmt.Println(strings.Repeat("─", 86))
		fmt.Printf("%-28s  %-18s  %6s  %6s  %10s  %10s\n",
			"Model", "Purpose", "Calls", "Fails", "Input", "Output")
		fmt.Println(strings.Repeat("─", 86))

		var totalCalls, totalIn, totalOut int
		for _, row := range rows {
			fmt.Printf("%-28s  %-18s  %6d  %6d  %10d  %10d\n",
				truncate(row.Model, 28), row.Purpose, row.Requests, row.Failures,
				row.InputTokens, row.OutputTokens)
			totalCalls += row.Requests
			totalIn += row.InputTokens
			totalOut += row.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 86))
		fmt.Printf("%-28s  %-18s  %6d  %6s  %10d  %10d\n",
			"TOTAL", "", totalCalls, "", totalIn, totalOut)

		// Cost by model.
		type modelTotals struct{ in, out int }
		byModel := make(map[string]*modelTotals)
		var order []string
		for _, row := range rows {
			mt, ok := byModel[row.Model]
			if !ok {
				mt = &modelTotals{}
				byModel[row.Model] = mt
				order = append(order, row.Model)
			}
			mt.in += row.InputTokens
			mt.out += row.OutputTokens
		}

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 64))

		var totalCost float64
		var unknownModels []string
		for _, model := range order {
			mt := byModel[model]
			cost := llm.LookupCost(model)
			if cost == nil {
				unknownModels = append(unknownModels, model)
				fmt.Printf("%-32s  %10d  %10d  %9s\n", truncate(model, 32), mt.in, mt.out, "?")
				continue
			}
			c := cost.Cost(mt.in, mt.out)
			totalCost += c
			fmt.Printf("%-32s  %10d  %10d  %9s\n", truncate(model, 32), mt.in, mt.out, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 64))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %10s  %10s  %9s\n", label, "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-ranking, hint)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
