// Package term prints to the terminal with pterm, filtered by level.
package term

import "github.com/pterm/pterm"

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var lvl = LevelInfo

func SetLevel(level Level) {
	lvl = level
}

func GetLevel() Level {
	return lvl
}

// Enabled reports whether messages of this level are displayed
func Enabled(level Level) bool {
	return level >= lvl
}

func Debug(a ...interface{}) {
	if !Enabled(LevelDebug) {
		return
	}
	pterm.FgLightCyan.Println(a...)
}

func Debugf(format string, a ...interface{}) {
	if !Enabled(LevelDebug) {
		return
	}
	pterm.FgLightCyan.Printfln(format, a...)
}

func Info(a ...interface{}) {
	if !Enabled(LevelInfo) {
		return
	}
	pterm.FgLightGreen.Println(a...)
}

func Infof(format string, a ...interface{}) {
	if !Enabled(LevelInfo) {
		return
	}
	pterm.FgLightGreen.Printfln(format, a...)
}

func Warn(a ...interface{}) {
	if !Enabled(LevelWarn) {
		return
	}
	pterm.FgYellow.Println(a...)
}

func Warnf(format string, a ...interface{}) {
	if !Enabled(LevelWarn) {
		return
	}
	pterm.FgYellow.Printfln(format, a...)
}

func Error(a ...interface{}) {
	pterm.FgLightRed.Println(a...)
}

func Errorf(format string, a ...interface{}) {
	pterm.FgLightRed.Printfln(format, a...)
}

// Table renders the data with the first row as header.
// Results are always displayed, whatever the level.
func Table(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// BoxedTable is Table with a border around it
func BoxedTable(data pterm.TableData) error {
	return pterm.DefaultTable.WithBoxed(true).WithHasHeader().WithData(data).Render()
}

// Progressbar starts a progress bar, or returns nil in quiet mode
func Progressbar(title string, total int) *pterm.ProgressbarPrinter {
	if !Enabled(LevelInfo) {
		return nil
	}
	pbar, err := pterm.DefaultProgressbar.WithTotal(total).WithTitle(title).Start()
	if err != nil {
		return nil
	}
	return pbar
}
