package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/diffselect"
	"github.com/fwojciec/diffselect/bubbletea"
	"github.com/fwojciec/diffselect/chroma"
	"github.com/fwojciec/diffselect/clipboard"
	"github.com/fwojciec/diffselect/git"
	"github.com/fwojciec/diffselect/gitdiff"
	"github.com/fwojciec/diffselect/lipgloss"
)

// ErrNoChanges is returned when the diff contains no changes to display.
var ErrNoChanges = errors.New("no changes to display")

// App encapsulates the application logic for testing.
type App struct {
	Stdin    io.Reader
	Parser   diffselect.Parser
	Git      diffselect.GitRunner
	Viewer   diffselect.Viewer
	RepoPath string
	Staged   bool
}

// Run loads a diff from the repository or stdin and displays it with an
// interactive selection.
func (a *App) Run(ctx context.Context) error {
	var input io.Reader
	if a.RepoPath != "" {
		text, err := a.Git.Diff(ctx, a.RepoPath, a.Staged)
		if err != nil {
			return err
		}
		input = strings.NewReader(text)
	} else {
		input = a.Stdin
	}

	diff, err := a.Parser.Parse(input)
	if err != nil {
		return err
	}
	if len(diff.Files) == 0 {
		return ErrNoChanges
	}
	provider := diffselect.ProviderFunc(func() *diffselect.Diff { return diff })
	return a.Viewer.View(ctx, provider)
}

func main() {
	repo := flag.String("repo", "", "read the diff from this git repository instead of stdin")
	staged := flag.Bool("staged", false, "show the staged diff instead of the working tree diff")
	light := flag.Bool("light", false, "use the light theme")
	flag.Parse()

	if *repo == "" {
		// Without a repository the diff must be piped in.
		stat, err := os.Stdin.Stat()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error checking stdin:", err)
			os.Exit(1)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: git diff | diffselect, or diffselect -repo <path>")
			os.Exit(1)
		}
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	theme := lipgloss.DefaultTheme()
	if *light {
		theme = lipgloss.LightTheme()
	}

	modelOpts := []bubbletea.ModelOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithLanguageDetector(chroma.NewDetector()),
		bubbletea.WithClipboard(clipboard.NewCommander()),
	}
	if tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette())); err == nil {
		modelOpts = append(modelOpts, bubbletea.WithTokenizer(tokenizer))
	}

	runner := git.NewRunner()
	if *repo != "" {
		modelOpts = append(modelOpts, bubbletea.WithGit(runner, *repo))
	}

	app := &App{
		Stdin:    os.Stdin,
		Parser:   gitdiff.NewParser(),
		Git:      runner,
		Viewer:   bubbletea.NewViewer(bubbletea.WithModelOptions(modelOpts...)),
		RepoPath: *repo,
		Staged:   *staged,
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
