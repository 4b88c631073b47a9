// Package markup is the element library used to assemble XHTML content
// documents.
//
// It knows the dialects an EPUB content document can target (XHTML 1.1,
// XHTML 1.0 Strict/Transitional, HTML5 and XHTML5), builds elements for
// them on top of github.com/beevik/etree, and checks the structural
// well-formedness of a finished tree:
//
//	doc, root, err := markup.NewDocument(markup.XHTML5)
//	head, _ := markup.Head(markup.XHTML5)
//	body, _ := markup.Body(markup.XHTML5)
//	root.AddChild(head)
//	root.AddChild(body)
//	err = markup.Validate(root, markup.XHTML5)
//
// Validation is structural only: root shape, head content model, required
// attributes of link/style/meta, dialect element sets, obsolete elements,
// namespaced attributes and id uniqueness. It is not a grammar validator.
package markup
