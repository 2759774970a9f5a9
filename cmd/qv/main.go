package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vanderheijden86/quizdeck/internal/datasource"
	"github.com/vanderheijden86/quizdeck/pkg/config"
	"github.com/vanderheijden86/quizdeck/pkg/loader"
	"github.com/vanderheijden86/quizdeck/pkg/model"
	"github.com/vanderheijden86/quizdeck/pkg/ui"
	"github.com/vanderheijden86/quizdeck/pkg/version"
)

func main() {
	deckFlag := flag.String("deck", "", "Path to a deck file or directory (overrides QV_DECK and config)")
	sourcesFlag := flag.Bool("sources", false, "List detected deck sources and exit")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: qv [options]")
		fmt.Println("\nA TUI viewer for study decks: browse courses, read lessons, take quizzes.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("qv %s\n", version.Version)
		os.Exit(0)
	}

	// Load qv config for the default deck and UI preferences
	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue without config
		appCfg = config.DefaultConfig()
	}

	target := resolveTarget(*deckFlag, appCfg)

	if *sourcesFlag {
		listSources(target)
		os.Exit(0)
	}

	content, deckPath, err := loadDeck(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deck: %v\n", err)
		fmt.Fprintln(os.Stderr, "Point qv at a deck with --deck, QV_DECK, or run it in a directory containing deck.json or deck.db.")
		os.Exit(1)
	}

	if content.CourseCount() == 0 {
		fmt.Println("The deck has no courses.")
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "qv is interactive and needs a terminal.")
		os.Exit(1)
	}

	m := ui.NewModel(content, deckPath, appCfg)
	defer m.Stop()

	if err := runTUIProgram(m); err != nil {
		fmt.Printf("Error running qv: %v\n", err)
		os.Exit(1)
	}
}

// resolveTarget picks the deck location: flag, then QV_DECK, then the
// configured default deck, then the current directory.
func resolveTarget(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(loader.DeckEnvVar); env != "" {
		return env
	}
	if cfg.DefaultDeck != "" {
		return cfg.DefaultDeck
	}
	return ""
}

// loadDeck loads content from a file or directory target. Directories (and
// the empty target, meaning cwd) go through smart multi-source detection;
// explicit files load directly.
func loadDeck(target string) (*model.Content, string, error) {
	if target != "" {
		info, err := os.Stat(target)
		if err != nil {
			return nil, "", err
		}
		if !info.IsDir() {
			content, err := datasource.LoadContentFromPath(target)
			if err != nil {
				return nil, "", err
			}
			abs, _ := filepath.Abs(target)
			return content, abs, nil
		}
	}
	return datasource.LoadContent(target)
}

func listSources(target string) {
	dir := target
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			dir = filepath.Dir(dir)
		}
	}
	sources, err := datasource.DiscoverSources(datasource.DiscoveryOptions{
		Dir:                    dir,
		ValidateAfterDiscovery: true,
		IncludeInvalid:         true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering sources: %v\n", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Println("No deck sources found.")
		return
	}
	for _, s := range sources {
		fmt.Println(s.String())
	}
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set QV_TUI_AUTOCLOSE_MS.
	if v := strings.TrimSpace(os.Getenv("QV_TUI_AUTOCLOSE_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
