//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		contexts        []string
		expectMinLength int
	}{
		{"global context", []string{ContextGlobal}, 4},
		{"navigator context", []string{ContextNavigator}, 5},
		{"playlist context", []string{ContextPlaylist}, 10},
		{"columns context", []string{ContextColumns}, 5},
		{"error context", []string{ContextError}, 2},
		{"several contexts", []string{ContextGlobal, ContextError}, 6},
		{"unknown context returns empty", []string{"unknown"}, 0},
		{"no context returns empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.contexts...)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%v) returned %d items, expected empty", tt.contexts, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%v) returned %d items, expected at least %d",
					tt.contexts, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				found := false
				for _, c := range tt.contexts {
					if binding.Context == c {
						found = true
					}
				}
				if !found {
					t.Errorf("binding context = %q, want one of %v", binding.Context, tt.contexts)
				}
			}
		})
	}
}

func TestByContextPreservesOrder(t *testing.T) {
	result := ByContext(ContextError, ContextGlobal)
	if len(result) == 0 || result[0].Context != ContextGlobal {
		t.Fatalf("expected table order with global bindings first, got %v", result)
	}
}

func TestEssentialBindings(t *testing.T) {
	tests := []struct {
		context string
		actions []Action
	}{
		{ContextGlobal, []Action{ActionQuit, ActionSwitchFocus, ActionHelp, ActionConfigureColumns}},
		{ContextNavigator, []Action{ActionAddAtCursor, ActionAppend, ActionMoveLeft, ActionMoveRight}},
		{ContextPlaylist, []Action{
			ActionPlay, ActionToggleSelect, ActionMoveItemUp, ActionMoveItemDown,
			ActionMark, ActionPutBefore, ActionPutAfter, ActionDelete,
		}},
		{ContextColumns, []Action{ActionAddColumn, ActionDeleteColumn, ActionResetColumns, ActionSave}},
		{ContextError, []Action{ActionToggleDetails, ActionDismiss}},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			bindings := ByContext(tt.context)
			for _, action := range tt.actions {
				found := false
				for _, b := range bindings {
					if b.Action == action {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected action %q in %s bindings", action, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range Contexts {
		valid[c] = true
	}

	for i, b := range Bindings {
		if !valid[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestNoKeyConflictsWithinContext(t *testing.T) {
	for _, c := range Contexts {
		seen := make(map[string]Action)
		for _, b := range ByContext(c) {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok && prev != b.Action {
					t.Errorf("%s: key %q bound to both %q and %q", c, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
}
