// Package xhtmlpage builds the XHTML content pages of an EPUB package.
//
// # Quick Start
//
// Create a page, attach stylesheets and write it:
//
//	page := xhtmlpage.New(xhtmlpage.XHTML5)
//	page.SetFileName("chapter1.xhtml")
//	page.SetPageTitle("Chapter 1")
//	page.AddStyle(xhtmlpage.NewStylesheet("OEBPS/Styles/main.css", css))
//
//	if err := page.Write(f); err != nil {
//	    log.Fatal(err)
//	}
//
// Write never closes the destination. The output is UTF-8 XML with an XML
// declaration, the DOCTYPE of the compatibility mode and indented block
// structure.
//
// # Generation
//
// Generate always rebuilds the tree:
//
//  1. the head and body builders produce a fresh <head> and <body class="epub">
//  2. each stylesheet becomes a <link> or, with SetEmbedStyles(true), an
//     inline <style>, in the order the styles were added
//  3. head and body are attached to an <html> root; HTML5 and XHTML5 pages
//     declare the epub namespace
//  4. the tree is checked for structural validity (ErrStructuralValidation)
//  5. the <title> is appended and the tree is cached
//
// Write reuses the cached tree until a setting that affects generation
// changes (title, embedding, styles, location, flat layout) or Invalidate is
// called.
//
// A stylesheet that cannot be read while embedding does not fail the page:
// its <style> element is left empty and the failure is reported by
// Document.Warnings and logged at warn level.
//
// # Custom Pages
//
// Head and body construction are pluggable:
//
//	page := xhtmlpage.New(xhtmlpage.XHTML5,
//	    xhtmlpage.WithHeadBuilder(xhtmlpage.MetaHead{}),
//	    xhtmlpage.WithBodyBuilder(xhtmlpage.NewMarkdownBody(markdown)),
//	)
//
// Builders that implement Membership answer Document.PartOfDocument.
//
// # Paths
//
// Every page and stylesheet has a location inside the package. Link hrefs
// are relative to the page directory; with SetFlatLayout(true) all files are
// assumed to live in one directory and hrefs are bare file names.
package xhtmlpage
