package lab

import "strings"

// CommandInfo describes a console menu entry.
type CommandInfo struct {
	ID          string   // Internal identifier, also accepted as typed input
	Key         string   // Menu number
	Name        string   // Display name
	Description string   // What the command does
	Aliases     []string // Extra accepted spellings
}

// CommandRegistry holds the console menu.
// This centralizes command naming so the menu and the input matcher stay in sync.
type CommandRegistry struct {
	commands []CommandInfo
	byWord   map[string]CommandInfo
}

// NewCommandRegistry creates a registry with all menu commands.
func NewCommandRegistry() *CommandRegistry {
	reg := &CommandRegistry{
		byWord: make(map[string]CommandInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all menu commands in display order.
func (r *CommandRegistry) registerDefaults() {
	r.Register(CommandInfo{ID: "create", Key: "1", Name: "Create Cell from Template", Description: "Draw a new cell from a template", Aliases: []string{"new", "spawn"}})
	r.Register(CommandInfo{ID: "divide", Key: "2", Name: "Make Cell Divide", Description: "Split a cell into parent and child", Aliases: []string{"split", "clone"}})
	r.Register(CommandInfo{ID: "grow", Key: "3", Name: "Help Cell Grow", Description: "Give a cell energy", Aliases: []string{"feed"}})
	r.Register(CommandInfo{ID: "view", Key: "4", Name: "View All Cells", Description: "List cells by kind with statistics", Aliases: []string{"list", "show", "cells"}})
	r.Register(CommandInfo{ID: "teach", Key: "5", Name: "Teach Brain Cell", Description: "Add a fact to a brain cell", Aliases: []string{"learn"}})
	r.Register(CommandInfo{ID: "oxygen", Key: "6", Name: "Give Oxygen to Blood Cell", Description: "Raise a blood cell's oxygen level", Aliases: []string{"o2", "breathe"}})
	r.Register(CommandInfo{ID: "templates", Key: "7", Name: "Manage Templates", Description: "Add or inspect templates", Aliases: []string{"template", "prototypes"}})
	r.Register(CommandInfo{ID: "exit", Key: "8", Name: "Exit Lab", Description: "End the session", Aliases: []string{"quit", "q"}})
}

// Register adds a command to the registry.
func (r *CommandRegistry) Register(info CommandInfo) {
	r.commands = append(r.commands, info)
	for _, w := range append([]string{info.Key, info.ID}, info.Aliases...) {
		r.byWord[strings.ToLower(w)] = info
	}
}

// All returns all commands in menu order.
func (r *CommandRegistry) All() []CommandInfo {
	return r.commands
}

// Match resolves typed input to a command: menu number, id or alias first,
// then the closest id or alias within typo distance.
func (r *CommandRegistry) Match(input string) (CommandInfo, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if info, ok := r.byWord[in]; ok {
		return info, true
	}

	words := make([]string, 0, len(r.byWord))
	for w := range r.byWord {
		words = append(words, w)
	}
	if w, ok := closest(in, sortedWords(words)); ok {
		return r.byWord[w], true
	}
	return CommandInfo{}, false
}
