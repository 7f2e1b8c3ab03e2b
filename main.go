package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/yarrl/audio"
	"github.com/lixenwraith/yarrl/config"
	"github.com/lixenwraith/yarrl/content"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/game"
	"github.com/lixenwraith/yarrl/logging"
	"github.com/lixenwraith/yarrl/save"
	"github.com/lixenwraith/yarrl/score"
	"github.com/lixenwraith/yarrl/tui"
)

func emptySidebar() game.SidebarInfo {
	return game.SidebarInfo{Wheel: -1, Bearing: -1}
}

func titleScreen(ui *tui.TUI) {
	lines := []string{
		"Welcome to YarrL, a roguelike adventure on the high seas!",
		"",
		"",
		"",
		"  I must down to the seas again,",
		"      to the lonely sea and the sky,",
		"  And all I ask is a tall ship",
		"      and a star to steer her by,",
		"  And the wheel's kick and the wind's song",
		"      and the white sail's shaking,",
		"  And a grey mist on the sea's face,",
		"      and a grey dawn breaking.",
		"",
		"                     -- Sea Fever, John Masefield",
	}
	ui.WriteLongMsg(lines, true)
}

// Nobody starts a voyage already wearing the title.
func isPuttingOnAirs(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "capt") ||
		strings.HasPrefix(lower, "capn") ||
		strings.HasPrefix(lower, "cap'n")
}

func preamble(ui *tui.TUI, logger *zap.SugaredLogger) *game.GameState {
	var playerName string
	sbi := emptySidebar()

	for {
		name, ok := ui.QueryUser("Ahoy lubber, who be ye?", 15, sbi)
		if !ok || len(name) == 0 {
			continue
		}
		if isPuttingOnAirs(name) {
			ui.WriteLongMsg([]string{
				"Don't ye be calling yerself *captain* 'afore",
				"ye've earned it!!",
			}, false)
			continue
		}
		playerName = name
		break
	}

	menu := []string{
		fmt.Sprintf("Tell us about yerself, %s:", playerName),
		"",
		"  (a) Are ye a fresh swab, full of vim and vigour. New to the",
		"      seas but ready to make a name for yerself? Ye'll be",
		"      quicker on yer toes but a tad wet behind yer ears.",
		"",
		"  (b) Or are ye an old sea dog? Ye've seen at least six of",
		"      the seven seas and yer hide is tougher for it. Yer peg",
		"      leg slows you down but experience has taught ye a few",
		"      tricks. And ye start with yer trusty flintlock.",
	}

	for {
		answer, ok := ui.MenuPicker(menu, 2, true, true)
		if !ok {
			continue
		}
		if answer[0] {
			return game.NewGameState(playerName, game.Swab, logger)
		}
		return game.NewGameState(playerName, game.Seadog, logger)
	}
}

func prologue(gs *game.GameState, ui *tui.TUI) {
	lines := []string{
		"Five days nigh you were looking for work in a seedy tavern near King's",
		"Quay when you overheard two old sailors talking about having got their",
		fmt.Sprintf("paws on a clue to the treasure of %s!", gs.PirateLord),
		"",
		"The tales -- if ye can believe 'em -- have the pirate captain lost at",
		"sea in a storm, off the Yendorian Main. Many a sea dog has gone a'",
		"treasure hunting there and those who've returned have come back with",
		"naught but talk of sharks, merfolk, the undead and still more dangers.",
		fmt.Sprintf("The stories say only one who has Captain %s's eye", gs.PirateLord),
		"patch, enchanted by a sea witch, will be able to find his hoard.",
		"",
	}

	if gs.StarterClue == 0 {
		lines = append(lines,
			"The sailors talked about searching the Obstreperous Strait and a map",
			"to one of the old pirates' caches. When they got too far into their",
			"cups, you saw your chance and pilfered the map.",
		)
	} else {
		lines = append(lines,
			"The sailors had heard from a lobster fisherman who heard it from",
			"a priest that the pirate had been sailing the Obstreperous Strait",
			fmt.Sprintf("in the %s when a sudden, fierce squall sunk them. A clue", gs.PirateLordShip),
			"may be found, if the wreck can be located.",
		)
	}

	lines = append(lines,
		"",
		fmt.Sprintf("You spent the last of your coin on a keelboat, the %s", gs.PlayerShip),
		"and set out to the Obstreperous Strait. Having arrived, it's",
		"time to find a lost treasure and earn a place in tavern tales",
		"and sea shanties!",
	)

	ui.WriteLongMsg(lines, true)
}

func endScreen(gs *game.GameState, end *game.RunEnd, ui *tui.TUI) {
	gs.WriteMsg("Game over! --More--")
	ui.WriteScreen(gs.DrainMsgs(), gs.CurrSidebarInfo())
	ui.PauseForMore()

	lines := []string{""}
	switch end.Outcome {
	case game.OutcomeVictory:
		lines = append(lines,
			"Well blow me down! Ye've found the lost treasure of",
			fmt.Sprintf("%s! Yer fame, and fortune, are assured and pirates will be", gs.PirateLord),
			"telling tales of your exploits for years to come!",
			"",
			fmt.Sprintf("Congratulations, Captain %s!", gs.Player.Name),
		)
	case game.OutcomeQuit:
		lines = append(lines,
			"Ye've quit. Abandoned your quest and the treasure. Perhaps the next",
			"pirate will have more pluck.",
		)
	default:
		lines = append(lines,
			fmt.Sprintf("Well shiver me timbers, %s, ye've died!", gs.Player.Name),
			"",
		)
		switch end.Cause {
		case "swimming":
			lines = append(lines, "Ye died from drowning! Davy Jones'll have you for sure!")
		case "venom":
			lines = append(lines, "Ye died from venom!")
		case "burn":
			lines = append(lines, "Ye burned to death!")
		case "falling":
			lines = append(lines,
				"Ye took a nasty fall! But it's like they say: it don't be the fall",
				"what gets you, it be the landing...",
			)
		default:
			lines = append(lines, fmt.Sprintf("Killed by a %s!", end.Cause))
		}
	}

	if end.Outcome != game.OutcomeVictory {
		lines = append(lines,
			"",
			fmt.Sprintf("%s's treasure remains for some other swab...", gs.PirateLord),
			"",
		)
	}
	lines = append(lines, "So long, mate!")

	ui.WriteLongMsg(lines, true)
}

func outcomeName(o game.Outcome) string {
	switch o {
	case game.OutcomeVictory:
		return "victory"
	case game.OutcomeQuit:
		return "quit"
	default:
		return "dead"
	}
}

func showScoreboard(store *score.Store, ui *tui.TUI) {
	runs, err := store.TopRuns(context.Background(), 10)
	if err != nil || len(runs) == 0 {
		return
	}

	lines := []string{"~The Tavern Wall of Fame~", ""}
	for i, r := range runs {
		outcome := r.Outcome
		if r.Cause != "" {
			outcome = fmt.Sprintf("%s (%s)", r.Outcome, r.Cause)
		}
		lines = append(lines, fmt.Sprintf("%2d. %-15s %5d pts, turn %d, %s",
			i+1, r.Player, r.Score, r.Turns, outcome))
	}
	ui.WriteLongMsg(lines, true)
}

func run() error {
	configPath := flag.String("config", "yarrl.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Seed != 0 {
		dice.Reseed(cfg.Seed)
	}

	store, err := score.Open(cfg.ScorePath())
	if err != nil {
		return err
	}
	defer store.Close()

	sounds := audio.New(cfg.Audio, logger)

	ui, err := tui.New(logger)
	if err != nil {
		return err
	}
	defer ui.Close()

	titleScreen(ui)
	sounds.Play(audio.CueBell)

	var gs *game.GameState
	restored, err := save.Read(cfg.SavePath())
	switch {
	case err == nil:
		gs = restored
		gs.SetLogger(logger)
		if err := save.Clear(cfg.SavePath()); err != nil {
			logger.Warnw("could not clear save slot", "error", err)
		}
		logger.Infow("voyage restored", "player", gs.Player.Name, "turn", gs.Turn)
	case errors.Is(err, save.ErrNoSave):
		gs = preamble(ui, logger)
		gs.ShowCharacterSheet(ui)
		content.GenerateWorld(gs)
		prologue(gs, ui)
		logger.Infow("voyage begins", "player", gs.Player.Name, "lord", gs.PirateLord)
	default:
		return err
	}

	runErr := game.Run(gs, ui)
	var end *game.RunEnd
	if !errors.As(runErr, &end) {
		return runErr
	}

	if end.Outcome == game.OutcomeSaved {
		if err := save.Write(cfg.SavePath(), gs); err != nil {
			return fmt.Errorf("save voyage: %w", err)
		}
		logger.Infow("voyage saved", "player", gs.Player.Name, "turn", gs.Turn)
		return nil
	}

	switch end.Outcome {
	case game.OutcomeVictory:
		sounds.Play(audio.CueTreasure)
	case game.OutcomeDead:
		sounds.Play(audio.CueCannon)
	}

	endScreen(gs, end, ui)

	rec := score.Run{
		Player:     gs.Player.Name,
		Outcome:    outcomeName(end.Outcome),
		Cause:      end.Cause,
		Score:      gs.Player.Score,
		Turns:      gs.Turn,
		PirateLord: gs.PirateLord,
		FinishedAt: time.Now().UTC(),
	}
	if err := store.RecordRun(context.Background(), rec); err != nil {
		logger.Warnw("could not record the run", "error", err)
	}
	showScoreboard(store, ui)

	logger.Infow("voyage over", "player", gs.Player.Name,
		"outcome", outcomeName(end.Outcome), "score", gs.Player.Score, "turn", gs.Turn)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
