package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/universalhex/traitquiz/internal/session"
	"github.com/universalhex/traitquiz/internal/traits"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session in plain text mode (no TUI)",
	Long: `Play a quiz session line by line on stdin/stdout.

Answers are given as 1-4 or a-d. An empty line or q ends the session early.
Useful for scripted runs together with --seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return playText(engine, cfg.AssetBase, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// playText runs the current session of engine against in/out. Rounds advance
// as soon as the feedback is printed.
func playText(engine *session.Engine, assetBase string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	sep := strings.Repeat("─", 40)

	for s := engine.Session(); !s.Complete; s = engine.Session() {
		q := s.Question
		fmt.Fprintf(out, "── Question %d/%d ──  score %d\n", s.Round(), s.Rounds(), s.Score)
		fmt.Fprintf(out, "Icon: %s\n", traits.IconPath(assetBase, q.IconID))
		for j, idx := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, traits.Label(idx))
		}

		pos, ok := readChoice(scanner, out)
		if !ok {
			fmt.Fprintln(out, "\n(session ended early)")
			return scanner.Err()
		}

		chosen := q.Options[pos]
		adv, ok := engine.Submit(chosen)
		if !ok {
			continue
		}
		if q.IsCorrect(chosen) {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Not quite. It was %q\n", traits.Label(q.CorrectIndex))
		}
		fmt.Fprintln(out)
		engine.Apply(adv)
	}

	sum := session.BuildSummary(engine.Session())
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Score:   %d / %d\n", sum.Score, sum.Total)
	fmt.Fprintf(out, "Ranking: %s\n", sum.Ranking)
	return nil
}

// readChoice prompts until it reads a valid option position. It returns
// false when input ends or the player quits.
func readChoice(scanner *bufio.Scanner, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return 0, false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch {
		case answer == "" || answer == "q":
			return 0, false
		case len(answer) == 1 && answer[0] >= '1' && answer[0] < '1'+session.OptionCount:
			return int(answer[0] - '1'), true
		case len(answer) == 1 && answer[0] >= 'a' && answer[0] < 'a'+session.OptionCount:
			return int(answer[0] - 'a'), true
		}
		fmt.Fprintf(out, "Enter 1-%d or a-%c.", session.OptionCount, 'a'+session.OptionCount-1)
	}
}
