package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gonhanh/internal/app"
	"gonhanh/internal/emitter"
	"gonhanh/internal/engine"
	"gonhanh/internal/types"
)

var Type = &cobra.Command{
	Use:   "type",
	Short: "Starts an interactive typing session in the terminal.",
	Long: "Reads keys straight from the terminal and shows the converted text as you type.\n\n" +
		"ESC puts back the raw keys of the current syllable, Ctrl+T toggles conversion and Ctrl+C quits.",
	Args: cobra.NoArgs,
	RunE: commandType,
}

var errNotTerminal = errors.New("type needs an interactive terminal")

func commandType(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer func() { _ = keyboard.Close() }()

	session := app.NewSession(engine.NewEngine(engineOptions()), emitter.NewTerminal(os.Stdout))
	defer session.Close()

	logger.Debug("typing session started", "method", settings.Method.String())
	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		quit, err := dispatchKey(session, ch, key)
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprint(os.Stdout, "\r\n")
			return nil
		}
	}
}

func dispatchKey(session *app.Session, ch rune, key keyboard.Key) (bool, error) {
	switch key {
	case keyboard.KeyCtrlC:
		return true, nil
	case keyboard.KeyEsc:
		return false, session.Restore()
	case keyboard.KeyCtrlT:
		eng := session.Engine()
		eng.SetEnabled(!eng.Enabled())
		logger.Debug("conversion toggled", "enabled", eng.Enabled())
		return false, nil
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return false, session.Handle(types.Backspace())
	case keyboard.KeyEnter:
		return false, session.Handle(types.Boundary('\n'))
	case keyboard.KeySpace:
		return false, session.Handle(types.Boundary(' '))
	case keyboard.KeyTab:
		return false, session.Handle(types.Boundary('\t'))
	}
	if ch == 0 {
		return false, nil
	}
	return false, session.Handle(app.KeyEventFor(ch))
}

func init() {
	Root.AddCommand(Type)
}
