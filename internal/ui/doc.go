// Package ui contains the Bubble Tea program behind the --tui theme browser.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse wheel, window size, loader results).
//   - Navigation helpers (navigation.go) manage the stack of levels and cursor
//     movement. Filter helpers (input.go) keep text entry isolated from the
//     event loop.
//
// State ownership:
//   - Level state lives in internal/ui/state.Level, which tracks items,
//     filtering and viewport calculations.
//   - Levels are produced by the loaders registered in menu.Registry. Opening a
//     theme goes through the command bus in internal/ui/command, and the
//     command.Result handler pushes the new level onto the stack.
package ui
