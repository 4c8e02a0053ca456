package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"convo/internal/config"
	"convo/internal/persona"
	"convo/internal/provider"
	"convo/internal/pruning"
	"convo/internal/runner"
	"convo/memory"
)

// newSession builds a fresh conversation seeded with the
// personality's system prompt and wired to the shared client.
func newSession(cfg *config.Config, client *provider.Client, p persona.Personality) *runner.Session {
	hist := memory.NewHistory(p.SystemPrompt)
	mgr := pruning.NewManager(hist, client, pruning.Options{
		Budget:           cfg.TokenBudget(),
		TailSize:         cfg.PreservedTail,
		MaxRetries:       cfg.SummaryRetries,
		SummaryCharLimit: cfg.SummaryCharLimit,
	})
	return runner.New(client, mgr)
}

// choosePersonality runs the interactive #personality menu. It
// returns the selection and whether the user actually switched.
func choosePersonality(ctx context.Context, personas *persona.Manager, inputCh <-chan string) (persona.Personality, bool) {
	for i, p := range personas.List() {
		fmt.Printf("%d. %s - %s\n", i+1, p.Name, p.Description)
	}
	fmt.Printf("%d. Custom\n", personas.Len()+1)
	fmt.Print("Select number: ")

	line, ok := readLine(ctx, inputCh)
	if !ok {
		return persona.Personality{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > personas.Len()+1 {
		fmt.Println("Invalid selection.")
		return persona.Personality{}, false
	}

	if n == personas.Len()+1 {
		fmt.Print("Enter personality name: ")
		name, ok := readLine(ctx, inputCh)
		if !ok || strings.TrimSpace(name) == "" {
			fmt.Println("Invalid selection.")
			return persona.Personality{}, false
		}
		fmt.Print("Write an instructional prompt for the chatbot's personality: ")
		prompt, ok := readLine(ctx, inputCh)
		if !ok || strings.TrimSpace(prompt) == "" {
			fmt.Println("Invalid selection.")
			return persona.Personality{}, false
		}
		custom := persona.Personality{
			Name:         strings.TrimSpace(name),
			Description:  "Custom",
			SystemPrompt: strings.TrimSpace(prompt),
		}
		personas.Add(custom)
		return custom, true
	}

	p, err := personas.At(n - 1)
	if err != nil {
		fmt.Println("Invalid selection.")
		return persona.Personality{}, false
	}
	return p, true
}

// readLine pulls one line from the stdin channel, giving up on
// shutdown or closed input.
func readLine(ctx context.Context, inputCh <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-inputCh:
		return line, ok
	}
}
