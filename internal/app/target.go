package app

import "rawtails/internal/model"

// URL collection segments map to the stored target types. Unknown
// segments are rejected before any service call.
var collectionTargets = map[string]string{
	"posts":    model.TargetTypePost,
	"recipes":  model.TargetTypeRecipe,
	"comments": model.TargetTypeComment,
}

func targetFromCollection(segment string) (string, bool) {
	t, ok := collectionTargets[segment]
	return t, ok
}
