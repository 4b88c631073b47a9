package xhtmlpage

import "github.com/beevik/etree"

// generationCache memoizes the last generated tree. The tree is served only
// while the cache is clean; every generation-affecting mutation goes through
// invalidate.
type generationCache struct {
	dirty bool
	tree  *etree.Document
}

func newGenerationCache() generationCache {
	return generationCache{dirty: true}
}

func (c *generationCache) invalidate() {
	c.dirty = true
}

// load returns the cached tree if it is present and clean.
func (c *generationCache) load() (*etree.Document, bool) {
	if c.dirty || c.tree == nil {
		return nil, false
	}
	return c.tree, true
}

func (c *generationCache) store(tree *etree.Document) {
	c.tree = tree
	c.dirty = false
}

// drop forgets the cached tree after a failed generation.
func (c *generationCache) drop() {
	c.tree = nil
	c.dirty = true
}
