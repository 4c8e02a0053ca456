package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"convo/internal/config"
	"convo/internal/persona"
	"convo/internal/provider"
	"convo/internal/pruning"
	"convo/internal/runner"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init" {
		path, err := config.WriteTemplate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s; add your API key there or export OPENAI_API_KEY.\n", path)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	client, err := provider.NewClient(provider.Settings{
		BaseURL:           cfg.BaseURL,
		APIKey:            cfg.APIKey,
		Model:             cfg.Model,
		Temperature:       cfg.Temperature,
		MaxResponseTokens: cfg.MaxResponseTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	personas := persona.NewManager()
	current := personas.Default()
	if cfg.SystemPrompt != "" {
		current.SystemPrompt = cfg.SystemPrompt
	}
	session := newSession(cfg, client, current)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Chatting as %q with %s (quit to exit, #personality to switch, #history, #reset)\n", current.Name, cfg.Model)

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mYou\u001b[0m: ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case line, ok = <-inputCh:
			if !ok {
				break outer
			}
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit":
			break outer
		case "#personality":
			p, switched := choosePersonality(ctx, personas, inputCh)
			if switched {
				current = p
				session = newSession(cfg, client, current)
				fmt.Printf("Switched to %q; conversation restarted.\n", current.Name)
			}
			continue
		case "#history":
			transcript, err := session.History().TranscriptJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Println(transcript)
			continue
		case "#reset":
			session.History().Reset()
			fmt.Println("Conversation reset.")
			continue
		}

		reply, stats, err := session.RunTurn(ctx, line)
		if err != nil {
			switch {
			case errors.Is(err, runner.ErrEmptyPrompt):
				continue
			case errors.Is(err, pruning.ErrMessageTooLarge):
				fmt.Fprintf(os.Stderr, "error: %v; shorten the prompt and try again\n", err)
			default:
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			continue
		}
		if stats.Degraded {
			fmt.Fprintln(os.Stderr, "warning: summarization unavailable; oldest messages were dropped")
		}
		if stats.BestEffort {
			fmt.Fprintln(os.Stderr, "warning: conversation still near the token budget after pruning")
		}
		fmt.Printf("\u001b[93m%s\u001b[0m: %s\n\n", current.Name, reply.Content)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
