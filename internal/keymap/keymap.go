// Package keymap maps key presses to named commands, scoped by UI
// context so the same key can mean different things on different
// screens. User overrides from config are applied on top of defaults.
package keymap

// Contexts in lookup order: the active screen's context is consulted
// first, then "global".
const (
	ContextGlobal   = "global"
	ContextExplorer = "explorer"
	ContextEditor   = "editor"
	ContextPreview  = "preview"
	ContextModules  = "modules"
	ContextHelp     = "help"
)

// Binding ties a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Lookups check the given context
// before falling through to global bindings.
type Registry struct {
	bindings map[string]map[string]string // context -> key -> command
	keys     map[string]string            // "context.command" -> key, for help text
}

// NewRegistry builds a registry from the default bindings.
func NewRegistry() *Registry {
	r := &Registry{
		bindings: make(map[string]map[string]string),
		keys:     make(map[string]string),
	}
	for _, b := range DefaultBindings() {
		r.bind(b)
	}
	return r
}

// ApplyOverrides rebinds commands per the config keymap section, keyed
// "context.command" -> key. Unknown commands are ignored.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	for target, key := range overrides {
		ctx, cmd, ok := splitTarget(target)
		if !ok {
			continue
		}
		if _, bound := r.keys[target]; !bound {
			continue
		}
		// Drop the command's old key before rebinding.
		for k, c := range r.bindings[ctx] {
			if c == cmd {
				delete(r.bindings[ctx], k)
			}
		}
		r.bind(Binding{Key: key, Command: cmd, Context: ctx})
	}
}

// Lookup returns the command bound to key in context, consulting the
// context's own bindings before the global ones.
func (r *Registry) Lookup(context, key string) (string, bool) {
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd, true
	}
	cmd, ok := r.bindings[ContextGlobal][key]
	return cmd, ok
}

// LookupExact returns the command bound to key in context alone, with
// no global fallthrough. Text-entry screens use it so printable keys
// reach the input instead of matching global shortcuts.
func (r *Registry) LookupExact(context, key string) (string, bool) {
	cmd, ok := r.bindings[context][key]
	return cmd, ok
}

// KeyFor returns the key bound to a command in a context, falling back
// to global. Used for help and footer hints.
func (r *Registry) KeyFor(context, command string) string {
	if key, ok := r.keys[context+"."+command]; ok {
		return key
	}
	return r.keys[ContextGlobal+"."+command]
}

func (r *Registry) bind(b Binding) {
	if r.bindings[b.Context] == nil {
		r.bindings[b.Context] = make(map[string]string)
	}
	r.bindings[b.Context][b.Key] = b.Command
	r.keys[b.Context+"."+b.Command] = b.Key
}

func splitTarget(target string) (context, command string, ok bool) {
	for i := 0; i < len(target); i++ {
		if target[i] == '.' {
			return target[:i], target[i+1:], true
		}
	}
	return "", "", false
}
