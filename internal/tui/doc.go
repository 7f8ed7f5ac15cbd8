// Package tui renders the two terminal applications on bubbletea: the
// workshop appointment scheduler and the dish catalog browser.
//
// Both follow the same shape: a list screen whose column count follows
// the terminal geometry, and a second screen (form or detail) reached
// through a nav.Stack. The workshop list is driven by store change
// notifications, so edits made elsewhere in the process show up without
// polling.
package tui
