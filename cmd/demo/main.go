// Command demo is a small login-screen style showcase of the toolkit:
// menus, container layout, text and input windows, tab focus, fuzzy window
// search, and the software bell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/celltui/audio"
	"github.com/lixenwraith/celltui/terminal"
	"github.com/lixenwraith/celltui/terminal/tui"
)

func main() {
	mute := flag.Bool("mute", false, "disable the software bell")
	logPath := flag.String("log", "", "write toolkit diagnostics to file")
	flag.Parse()

	if err := run(*mute, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(mute bool, logPath string) error {
	t, err := tui.New(terminal.New())
	if err != nil {
		return err
	}
	defer t.Close()

	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		t.SetLogOutput(f)
	}

	var bell *audio.Bell
	if !mute {
		// No sound is fine; the terminal stays usable.
		bell, _ = audio.Open()
		defer bell.Close()
	}

	if err := buildLogin(t, bell); err != nil {
		return err
	}
	if err := buildWelcome(t); err != nil {
		return err
	}

	t.SetMenu("login")
	t.Run()
	return nil
}

func buildLogin(t *tui.TUI, bell *audio.Bell) error {
	menu, err := t.NewMenu(tui.MenuConfig{Name: "login"})
	if err != nil {
		return err
	}

	// Center the form on screen.
	w, h := t.Size()
	form, err := menu.NewContainer(tui.ContainerConfig{
		Config: tui.Config{
			Name:   "form",
			Rect:   tui.Rect{W: 40, H: 10, X: (w - 40) / 2, Y: (h - 10) / 2},
			Fg:     tui.ColorWhite,
			Bg:     tui.ColorBlue,
			Border: &tui.Border{Fg: tui.ColorCyan},
		},
		Vertical: true,
		Pos:      tui.PosCenter,
		Align:    tui.AlignAround,
	})
	if err != nil {
		return err
	}

	if _, err := form.NewText(tui.TextConfig{
		Config: tui.Config{Name: "title", Rect: tui.Rect{H: 1}},
		Text:   "sign in",
		Pos:    tui.PosCenter,
	}); err != nil {
		return err
	}

	user, err := form.NewContainer(tui.ContainerConfig{
		Config: tui.Config{Name: "user-row", Rect: tui.Rect{H: 1}},
	})
	if err != nil {
		return err
	}
	if _, err := user.NewText(tui.TextConfig{
		Config: tui.Config{Name: "user-label", Rect: tui.Rect{W: 10, H: 1}},
		Text:   "user:",
	}); err != nil {
		return err
	}
	name, err := user.NewInput(tui.InputConfig{
		Config: tui.Config{Name: "user", Rect: tui.Rect{H: 1}, Interact: true},
	})
	if err != nil {
		return err
	}

	pass, err := form.NewContainer(tui.ContainerConfig{
		Config: tui.Config{Name: "pass-row", Rect: tui.Rect{H: 1}},
	})
	if err != nil {
		return err
	}
	if _, err := pass.NewText(tui.TextConfig{
		Config: tui.Config{Name: "pass-label", Rect: tui.Rect{W: 10, H: 1}},
		Text:   "password:",
	}); err != nil {
		return err
	}
	secret, err := pass.NewInput(tui.InputConfig{
		Config: tui.Config{Name: "pass", Rect: tui.Rect{H: 1}, Interact: true},
		Secret: true,
	})
	if err != nil {
		return err
	}

	status, err := form.NewText(tui.TextConfig{
		Config: tui.Config{Name: "status", Rect: tui.Rect{H: 1}, Fg: tui.ColorYellow},
		Text:   "tab to move, enter to sign in, esc to quit",
		Pos:    tui.PosCenter,
	})
	if err != nil {
		return err
	}

	menu.OnKey = func(m *tui.Menu, key terminal.Key) {
		switch key {
		case terminal.KeyEnter:
			if name.Length() == 0 || secret.Length() == 0 {
				status.SetText("both fields are required")
				bell.Ring()
				return
			}
			welcome := t.Menu("welcome")
			if box, ok := welcome.Window("box").(*tui.Container); ok {
				if greet, ok := box.Window("greeting").(*tui.Text); ok {
					greet.SetText("hello, " + name.Value())
				}
			}
			t.SetMenu("welcome")
		case terminal.KeyCtrlF:
			// Jump focus to the best fuzzy match for what was typed.
			if hits := t.SearchWindows(name.Value()); len(hits) > 0 {
				t.Focus(hits[0])
			}
		}
	}
	return nil
}

func buildWelcome(t *tui.TUI) error {
	menu, err := t.NewMenu(tui.MenuConfig{Name: "welcome"})
	if err != nil {
		return err
	}
	box, err := menu.NewContainer(tui.ContainerConfig{
		Config: tui.Config{
			Name:   "box",
			Fg:     tui.ColorBlack,
			Bg:     tui.ColorGreen,
			Border: &tui.Border{Fg: tui.ColorWhite},
		},
		Vertical: true,
		Align:    tui.AlignCenter,
		Pos:      tui.PosCenter,
	})
	if err != nil {
		return err
	}
	if _, err := box.NewText(tui.TextConfig{
		Config: tui.Config{Name: "greeting", Rect: tui.Rect{H: 1}},
		Text:   "hello",
		Pos:    tui.PosCenter,
	}); err != nil {
		return err
	}
	_, err = box.NewText(tui.TextConfig{
		Config: tui.Config{Name: "hint", Rect: tui.Rect{H: 1}},
		Text:   "esc to quit",
		Pos:    tui.PosCenter,
	})
	return err
}
