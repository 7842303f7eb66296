// ABOUTME: Overlay compositor: wraps content with a fixed-position spinner layer when loading
// ABOUTME: Compose never touches the caller's tree; Replace swaps a result into a document

package overlay

import "golang.org/x/net/html"

// Compose returns content unchanged when isLoading is false. Otherwise it
// returns a new container div whose children are the overlay layer covering g
// and then content. Content that is already attached to a parent is copied
// into the container, so the caller's tree is never modified; use Replace to
// put the result into the document.
func Compose(isLoading bool, opts Options, g Geometry, content *html.Node) *html.Node {
	if !isLoading {
		return content
	}

	container := element("div")
	container.AppendChild(Layer(opts, g))
	if content != nil {
		if content.Parent != nil {
			content = cloneTree(content)
		}
		container.AppendChild(content)
	}
	return container
}

// Replace puts n where old sits in its parent and detaches old. It does
// nothing when old is detached or n is old itself. n must be detached.
func Replace(old, n *html.Node) {
	if old == nil || n == nil || old == n || old.Parent == nil {
		return
	}
	old.Parent.InsertBefore(n, old)
	old.Parent.RemoveChild(old)
}

// cloneTree deep-copies n and its descendants into a detached tree.
func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneTree(child))
	}
	return c
}
