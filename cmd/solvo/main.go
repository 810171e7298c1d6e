package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/solvo/solvo/engine"
	"github.com/solvo/solvo/words"
)

// Opening book: on the canonical corpus the full-board best guess is a
// long computation with a known result.
const (
	canonicalAnswerCount = 2309
	bookWorstCase        = 168
)

type app struct {
	lex     *engine.Lexicon
	workers int
	log     zerolog.Logger
}

func newApp(answersPath, guessesPath string, limit, workers int, verbose bool) (*app, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	answers, guesses, err := words.Load(answersPath, guessesPath)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(answers) {
		answers = answers[:limit]
	}
	lex, err := engine.NewLexicon(answers, guesses)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("answers", lex.AnswerCount()).
		Int("guesses", len(lex.GuessList())).
		Msg("corpus loaded")
	return &app{lex: lex, workers: workers, log: logger}, nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func preview(b *engine.Board) string {
	const show = 7
	ws := b.Words()
	suffix := ""
	if len(ws) > show {
		ws, suffix = ws[:show], ", ..."
	}
	return fmt.Sprintf("%d candidate answers remain: %s%s",
		b.Len(), strings.Join(engine.WordStrings(ws), ", "), suffix)
}

// bestFor asks the selector for the next guess over the unsolved boards,
// using the precomputed opening book when every board is still the full
// canonical corpus.
func (a *app) bestFor(boards []*engine.Board) (engine.Word, int, error) {
	untouched := a.lex.AnswerCount() == canonicalAnswerCount
	var live []*engine.Candidates
	for _, b := range boards {
		if b.Solved() {
			continue
		}
		if b.Len() != a.lex.AnswerCount() {
			untouched = false
		}
		live = append(live, b.Candidates())
	}
	if untouched && len(live) > 0 {
		return engine.DefaultOpening, bookWorstCase, nil
	}
	start := time.Now()
	guess, worst, err := engine.BestGuess(live, a.lex.GuessList(), a.workers)
	if err != nil {
		return engine.Word{}, 0, err
	}
	a.log.Debug().Stringer("guess", guess).Int("worst", worst).
		Dur("took", time.Since(start)).Msg("best guess")
	return guess, worst, nil
}

func printBest(guess engine.Word, worst int) {
	fmt.Printf("Best guess: '%s' with worst case %d candidates\n", guess, worst)
}

// repl drives the interactive solver for one or two boards. Malformed
// input prints a usage line and re-prompts without touching board state.
func (a *app) repl(nBoards int) error {
	boards := make([]*engine.Board, nBoards)
	for i := range boards {
		boards[i] = a.lex.NewBoard()
	}
	gUsage := func() {
		if nBoards == 1 {
			fmt.Println("Usage: g guess result")
		} else {
			fmt.Println("Usage: g guess result1 result2")
		}
		fmt.Println("       result is 0 for grey, 1 for yellow, 2 for green")
	}

	var prevBest engine.Word
	havePrev := false
	if nBoards == 1 && a.lex.IsGuessable(engine.DefaultOpening) {
		prevBest, havePrev = engine.DefaultOpening, true
		fmt.Printf("Best guess: '%s'\n", prevBest)
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		if nBoards == 1 {
			fmt.Println(preview(boards[0]))
		} else {
			fmt.Println("left:", preview(boards[0]))
			fmt.Println("right:", preview(boards[1]))
		}
		fmt.Print("> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "x":
			return nil
		case "r":
			for _, b := range boards {
				b.Reset()
			}
			if nBoards == 1 {
				prevBest, havePrev = engine.DefaultOpening, a.lex.IsGuessable(engine.DefaultOpening)
			}
		case "p":
			for _, b := range boards {
				fmt.Println(strings.Join(engine.WordStrings(b.Words()), ", "))
			}
		case "g":
			if len(fields) != 2+nBoards {
				gUsage()
				continue
			}
			guess, err := engine.ParseWord(fields[1])
			if err != nil {
				gUsage()
				continue
			}
			fbs := make([]engine.Feedback, nBoards)
			ok := true
			for i := range fbs {
				fbs[i], err = engine.ParseFeedback(fields[2+i])
				if err != nil {
					ok = false
					break
				}
			}
			if !ok {
				gUsage()
				continue
			}
			for i, b := range boards {
				b.Apply(guess, fbs[i])
			}
		case "gb":
			if nBoards != 1 || len(fields) != 2 || !havePrev {
				fmt.Println("Usage: gb result")
				fmt.Println("       result is 0 for grey, 1 for yellow, 2 for green")
				continue
			}
			fb, err := engine.ParseFeedback(fields[1])
			if err != nil {
				fmt.Println("Usage: gb result")
				fmt.Println("       result is 0 for grey, 1 for yellow, 2 for green")
				continue
			}
			boards[0].Apply(prevBest, fb)
			guess, worst, err := a.bestFor(boards)
			if err != nil {
				if errors.Is(err, engine.ErrNoMoves) {
					fmt.Println("No moves remain")
					continue
				}
				return err
			}
			prevBest, havePrev = guess, true
			printBest(guess, worst)
		case "b":
			guess, worst, err := a.bestFor(boards)
			if err != nil {
				if errors.Is(err, engine.ErrNoMoves) {
					fmt.Println("No moves remain")
					continue
				}
				return err
			}
			if nBoards == 1 {
				prevBest, havePrev = guess, true
			}
			printBest(guess, worst)
		case "fs":
			if err := a.runSim(engine.DefaultOpening, nBoards, false); err != nil {
				return err
			}
		default:
			fmt.Printf("No command '%s'\n", fields[0])
		}
	}
}

func (a *app) runSim(opening engine.Word, nBoards int, perCase bool) error {
	total := engine.CaseCount(a.lex.AnswerCount(), nBoards)
	bar := progressbar.Default(int64(total))
	start := time.Now()
	stats, err := engine.Simulate(a.lex, engine.SimConfig{
		Opening: opening,
		Boards:  nBoards,
		Workers: a.workers,
		OnCase:  func() { bar.Add(1) },
	})
	if err != nil {
		return err
	}
	a.log.Info().Int("cases", len(stats.Cases)).
		Dur("took", time.Since(start)).Msg("simulation finished")

	if perCase {
		for _, c := range stats.Cases {
			fmt.Printf("%s: %d\n", strings.Join(engine.WordStrings(c.Answers), " x "), c.Rounds)
		}
	}
	fmt.Printf("Average %.3f rounds, worst %d rounds\n", stats.Average, stats.Worst)
	for _, rounds := range stats.RoundKeys() {
		fmt.Printf("  %d rounds: %d\n", rounds, stats.Rounds[rounds])
	}
	return nil
}

func main() {
	var (
		answersPath string
		guessesPath string
		limit       int
		workers     int
		profile     bool
		verbose     bool
		firstWord   string
		nBoards     int
		perCase     bool
	)
	cmd := &cli.Command{
		Name:  "solvo",
		Usage: "minimax solver for wordle and dordle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "answers",
				Usage:       "answer corpus file, one 5-letter word per line (default: embedded list)",
				Destination: &answersPath,
			},
			&cli.StringFlag{
				Name:        "guesses",
				Usage:       "guess corpus file, one 5-letter word per line (default: embedded list)",
				Destination: &guessesPath,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Value:       0,
				Usage:       "use only the first N answers, 0 is all words",
				Destination: &limit,
			},
			&cli.IntFlag{
				Name:        "workers",
				Aliases:     []string{"w"},
				Value:       0,
				Usage:       "parallel workers per guess evaluation, 0 is GOMAXPROCS",
				Destination: &workers,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store cpu profile data to analyze",
				Destination: &profile,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Value:       false,
				Usage:       "debug logging",
				Destination: &verbose,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `interactive single-board solver
				g guess result / gb result / b / p / r / fs / x
				result digits: 0 grey, 1 yellow, 2 green`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					a, err := newApp(answersPath, guessesPath, limit, workers, verbose)
					if err != nil {
						return err
					}
					return a.repl(1)
				},
			},
			{
				Name: "dordle",
				Usage: `interactive two-board solver
				g guess result1 result2 / b / p / r / fs / x`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					a, err := newApp(answersPath, guessesPath, limit, workers, verbose)
					if err != nil {
						return err
					}
					return a.repl(2)
				},
			},
			{
				Name: "sim",
				Usage: `auto-play every answer (or answer pair) from a fixed opening
				guess and report round statistics`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "first",
						Aliases:     []string{"f"},
						Value:       engine.DefaultOpening.String(),
						Usage:       "opening guess",
						Destination: &firstWord,
					},
					&cli.IntFlag{
						Name:        "boards",
						Aliases:     []string{"b"},
						Value:       1,
						Usage:       "boards per case (1 wordle, 2 dordle)",
						Destination: &nBoards,
					},
					&cli.BoolFlag{
						Name:        "cases",
						Value:       false,
						Usage:       "print each case's round count",
						Destination: &perCase,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					a, err := newApp(answersPath, guessesPath, limit, workers, verbose)
					if err != nil {
						return err
					}
					opening, err := engine.ParseWord(firstWord)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return a.runSim(opening, nBoards, perCase)
				},
			},
			{
				Name:  "best",
				Usage: "best opening guess for the loaded corpus (may take a while)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "boards",
						Aliases:     []string{"b"},
						Value:       1,
						Usage:       "boards (1 wordle, 2 dordle)",
						Destination: &nBoards,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					a, err := newApp(answersPath, guessesPath, limit, workers, verbose)
					if err != nil {
						return err
					}
					boards := make([]*engine.Board, nBoards)
					for i := range boards {
						boards[i] = a.lex.NewBoard()
					}
					guess, worst, err := a.bestFor(boards)
					if err != nil {
						return err
					}
					printBest(guess, worst)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Fatal().Err(err).Msg("solvo")
	}
}
