// Package ladder finds word ladders: every shortest sequence of words that
// turns one word into another by changing a single letter at a time, where
// each intermediate word belongs to a lexicon.
//
//	lexicon := map[string]struct{}{"hit": {}, "hot": {}, "dot": {}, "dog": {}, "cog": {}, "lot": {}, "log": {}}
//	paths, err := ladder.Generate(ctx, "hit", "cog", lexicon)
//	// [[hit hot dot dog cog] [hit hot lot log cog]]
//
// Generate grows a *core.Graph[string, int] of one-letter neighbours outward
// from the start word one layer at a time, computing each layer's neighbours
// in parallel with an errgroup. Expansion stops at the layer that reaches the
// target. Hop distances to the target come from bfs.BFS; the ladders are then
// enumerated depth-first along strictly decreasing distance, visiting
// neighbours in ascending order, so the result is sorted lexicographically.
//
// Letters are substituted from 'a' to 'z' byte by byte; lexicons are
// expected to be lowercase ASCII.
package ladder
