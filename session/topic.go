package session

import "github.com/hupe1980/convokit/core"

// inferTopic counts entity types across the message window and returns the
// most frequent one. Ties resolve to the type whose maximal count was seen
// first. The boolean is false when the window holds no entities at all, in
// which case callers keep the previous topic (sticky by design).
func inferTopic(window []core.Message) (string, bool) {
	counts := map[core.EntityType]int{}
	var order []core.EntityType
	for _, msg := range window {
		for _, entity := range msg.Entities {
			if counts[entity.Type] == 0 {
				order = append(order, entity.Type)
			}
			counts[entity.Type]++
		}
	}
	if len(order) == 0 {
		return "", false
	}
	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return string(best), true
}
