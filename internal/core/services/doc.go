// Package services implements the driving port interfaces.
// It contains the relevance engine's core logic: the field scorer, the
// entity adapter table, the query planner, the debounce coordinator, the
// history tracker and the highlighter, composed behind SearchService.
//
// Services are pure Go with no external dependencies.
package services
