package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "?", Command: "help", Context: "global"},
		{Key: "j", Command: "cursor-down", Context: "global"},
		{Key: "down", Command: "cursor-down", Context: "global"},
		{Key: "k", Command: "cursor-up", Context: "global"},
		{Key: "up", Command: "cursor-up", Context: "global"},
		{Key: "enter", Command: "select", Context: "global"},
		{Key: "esc", Command: "back", Context: "global"},

		// Quick module launch, available from any screen
		{Key: "ctrl+s", Command: "launch-stampt", Context: "global"},
		{Key: "ctrl+b", Command: "launch-blipt", Context: "global"},
		{Key: "ctrl+t", Command: "launch-smallt", Context: "global"},
		{Key: "ctrl+o", Command: "launch-templet", Context: "global"},
		{Key: "ctrl+g", Command: "launch-gitnot", Context: "global"},
		{Key: "ctrl+l", Command: "launch-ql", Context: "global"},

		// Explorer context
		{Key: "q", Command: "quit", Context: "explorer"},
		{Key: "n", Command: "new-note", Context: "explorer"},
		{Key: "N", Command: "new-untitled", Context: "explorer"},
		{Key: "/", Command: "search", Context: "explorer"},
		{Key: "backspace", Command: "parent", Context: "explorer"},
		{Key: "left", Command: "parent", Context: "explorer"},
		{Key: "h", Command: "parent", Context: "explorer"},
		{Key: "right", Command: "select", Context: "explorer"},
		{Key: "l", Command: "select", Context: "explorer"},
		{Key: ".", Command: "toggle-hidden", Context: "explorer"},
		{Key: "r", Command: "refresh", Context: "explorer"},
		{Key: "d", Command: "delete", Context: "explorer"},
		{Key: "p", Command: "preview", Context: "explorer"},
		{Key: "m", Command: "modules", Context: "explorer"},

		// Editor context. ctrl+c copies here, shadowing the global quit,
		// so a reflexive copy never kills the app with unsaved work.
		{Key: "ctrl+s", Command: "save", Context: "editor"},
		{Key: "ctrl+x", Command: "close", Context: "editor"},
		{Key: "esc", Command: "close", Context: "editor"},
		{Key: "ctrl+c", Command: "copy", Context: "editor"},

		// Preview context
		{Key: "e", Command: "edit", Context: "preview"},
		{Key: "q", Command: "back", Context: "preview"},
		{Key: "backspace", Command: "back", Context: "preview"},

		// Modules menu context
		{Key: "s", Command: "launch-stampt", Context: "modules"},
		{Key: "b", Command: "launch-blipt", Context: "modules"},
		{Key: "t", Command: "launch-smallt", Context: "modules"},
		{Key: "o", Command: "launch-templet", Context: "modules"},
		{Key: "g", Command: "launch-gitnot", Context: "modules"},
		{Key: "l", Command: "launch-ql", Context: "modules"},
		{Key: "q", Command: "back", Context: "modules"},

		// Help context
		{Key: "q", Command: "back", Context: "help"},
	}
}
