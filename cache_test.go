package xhtmlpage

import (
	"testing"

	"github.com/beevik/etree"
)

func TestGenerationCache(t *testing.T) {
	t.Parallel()

	c := newGenerationCache()
	if _, ok := c.load(); ok {
		t.Fatal("new cache should be empty")
	}

	tree := etree.NewDocument()
	c.store(tree)
	if got, ok := c.load(); !ok || got != tree {
		t.Fatalf("load() = %v, %v, want stored tree", got, ok)
	}

	c.invalidate()
	if _, ok := c.load(); ok {
		t.Error("invalidated cache should not serve the tree")
	}

	c.store(tree)
	c.drop()
	if _, ok := c.load(); ok {
		t.Error("dropped cache should not serve the tree")
	}
	if c.tree != nil {
		t.Error("drop should release the tree")
	}
}
