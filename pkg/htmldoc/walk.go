package htmldoc

import "golang.org/x/net/html"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *html.Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback is called for every node kind, including text and comments.
// If the callback returns a non-nil error, the walk stops immediately and
// returns that error.
func Walk(root *html.Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkElements walks only element nodes, in document (pre-order) order.
func WalkElements(root *html.Node, fn WalkFunc) error {
	return Walk(root, func(n *html.Node) error {
		if n.Type == html.ElementNode {
			return fn(n)
		}
		return nil
	})
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after. Either callback
// may be nil.
func WalkWithContext(root *html.Node, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}
